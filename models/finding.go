package models

type FindingKind string

const (
	FindingMissingCodeowners FindingKind = "missing_codeowners"
	FindingNoWriteAccess     FindingKind = "no_write_access"
)

type Finding struct {
	Kind       FindingKind
	Repository Repository
	Path       string // rule pattern, empty for FindingMissingCodeowners
	Owner      Owner
	Access     AccessResult
}
