package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatements_CountAndOrder(t *testing.T) {
	stmts := Statements()
	require.Len(t, stmts, 9)

	// Fixed order: each table's RLS enable and policies follow its CREATE
	// TABLE, and wellness_checkins follows user_profiles.
	wantNames := []string{
		"create user_profiles table",
		"enable RLS on user_profiles",
		"policy: users can read own profile",
		"policy: users can update own profile",
		"create wellness_checkins table",
		"enable RLS on wellness_checkins",
		"policy: users can read own checkins",
		"policy: users can insert own checkins",
		"index wellness_checkins by user",
	}
	for i, stmt := range stmts {
		assert.Equal(t, wantNames[i], stmt.Name, "statement %d", i+1)
		assert.NotEmpty(t, stmt.SQL)
	}
}

func TestStatements_DependentsFollowPrerequisites(t *testing.T) {
	stmts := Statements()

	idx := func(substr string) int {
		for i, s := range stmts {
			if strings.Contains(s.SQL, substr) {
				return i
			}
		}
		t.Fatalf("no statement containing %q", substr)
		return -1
	}

	createProfiles := idx("CREATE TABLE IF NOT EXISTS public.user_profiles")
	createCheckins := idx("CREATE TABLE IF NOT EXISTS public.wellness_checkins")
	assert.Less(t, createProfiles, createCheckins,
		"wellness_checkins references user_profiles")

	enableProfiles := idx("ALTER TABLE public.user_profiles ENABLE")
	enableCheckins := idx("ALTER TABLE public.wellness_checkins ENABLE")
	assert.Less(t, createProfiles, enableProfiles)
	assert.Less(t, createCheckins, enableCheckins)

	for i, s := range stmts {
		if strings.HasPrefix(s.SQL, "CREATE POLICY") {
			if strings.Contains(s.SQL, "user_profiles") {
				assert.Less(t, enableProfiles, i)
			} else {
				assert.Less(t, enableCheckins, i)
			}
		}
	}
}

func TestStatements_DomainConstraints(t *testing.T) {
	stmts := Statements()

	var checkins string
	for _, s := range stmts {
		if strings.Contains(s.SQL, "CREATE TABLE IF NOT EXISTS public.wellness_checkins") {
			checkins = s.SQL
		}
	}
	require.NotEmpty(t, checkins)

	assert.Contains(t, checkins, "mood >= 1 AND mood <= 10")
	assert.Contains(t, checkins, "'Low', 'Moderate', 'High', 'Very High'")
}

func TestStatements_FreshSliceEachCall(t *testing.T) {
	a := Statements()
	a[0].SQL = "mutated"
	b := Statements()
	assert.NotEqual(t, "mutated", b[0].SQL)
}

func TestExpectedPolicies_MatchStatementSet(t *testing.T) {
	stmts := Statements()

	for table, policies := range ExpectedPolicies {
		for _, policy := range policies {
			found := false
			for _, s := range stmts {
				if strings.Contains(s.SQL, `"`+policy+`"`) && strings.Contains(s.SQL, table) {
					found = true
					break
				}
			}
			assert.True(t, found, "policy %q on %s has no statement", policy, table)
		}
	}
}
