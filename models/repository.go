package models

type Repository struct {
	Owner         string
	Name          string
	FullName      string
	DefaultBranch string
	Archived      bool
}

// Target selects what a run audits: every repository of Org, or exactly the
// repository named by FullName.
type Target struct {
	Org      string
	FullName string
}

func (t Target) SingleRepo() bool {
	return t.FullName != ""
}
