package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule_String(t *testing.T) {
	rule := Rule{
		Pattern: "/src/",
		Owners: []Owner{
			{Kind: OwnerUser, Raw: "@alice", Login: "alice"},
			{Kind: OwnerTeam, Raw: "@org/infra", Org: "org", Slug: "infra"},
		},
	}

	assert.Equal(t, "/src/ @alice @org/infra", rule.String())
	assert.Equal(t, []string{"@alice", "@org/infra"}, rule.OwnerNames())
}

func TestAccessResult_HasWrite(t *testing.T) {
	assert.True(t, AccessResult{Status: AccessGranted}.HasWrite())
	assert.False(t, AccessResult{Status: AccessDenied}.HasWrite())
	assert.False(t, AccessResult{Status: AccessUnresolved, Err: errors.New("boom")}.HasWrite())
}

func TestTarget_SingleRepo(t *testing.T) {
	assert.True(t, Target{FullName: "org/repo"}.SingleRepo())
	assert.False(t, Target{Org: "org"}.SingleRepo())
}
