package models

import "strings"

type OwnerKind int

const (
	OwnerUser OwnerKind = iota
	OwnerTeam
)

func (k OwnerKind) String() string {
	switch k {
	case OwnerTeam:
		return "team"
	default:
		return "user"
	}
}

// Owner is a decoded CODEOWNERS owner token. Users carry Login, teams carry
// Org and Slug. Raw is the token exactly as written in the file.
type Owner struct {
	Kind  OwnerKind
	Raw   string
	Login string
	Org   string
	Slug  string
}

func (o Owner) IsTeam() bool {
	return o.Kind == OwnerTeam
}

func (o Owner) String() string {
	return o.Raw
}

// Rule is one ownership line: a path pattern and its owners in file order.
type Rule struct {
	Pattern string
	Owners  []Owner
	Line    int
}

func (r Rule) OwnerNames() []string {
	names := make([]string, 0, len(r.Owners))
	for _, o := range r.Owners {
		names = append(names, o.Raw)
	}
	return names
}

func (r Rule) String() string {
	return r.Pattern + " " + strings.Join(r.OwnerNames(), " ")
}

type CodeownersFile struct {
	Path    string
	Content string
}
