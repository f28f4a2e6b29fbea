// Package schema defines the fixed set of SQL statements that provision the
// Wellness Tracker database: two tables, row-level security, and the
// per-user policies that restrict each authenticated user to their own rows.
//
// The statements are verbatim SQL literals, never parameterized and never
// parsed locally. Order matters: wellness_checkins references user_profiles,
// and each policy follows the ALTER TABLE that enables RLS on its table.
package schema

// Table and policy identifiers, used by status and doctor checks against
// pg_catalog. They must stay in sync with the statement SQL below.
const (
	ProfilesTable = "user_profiles"
	CheckinsTable = "wellness_checkins"
)

// ExpectedPolicies maps each table to the policy names the statement set
// creates on it.
var ExpectedPolicies = map[string][]string{
	ProfilesTable: {
		"Users can read own profile",
		"Users can update own profile",
	},
	CheckinsTable: {
		"Users can read own checkins",
		"Users can insert own checkins",
	},
}

// Statement is a single provisioning step: a short name for reporting and
// the SQL to execute.
type Statement struct {
	Name string
	SQL  string
}

// Statements returns the full provisioning sequence. The slice is freshly
// allocated on each call so callers can't mutate the canonical set.
func Statements() []Statement {
	return []Statement{
		{
			Name: "create user_profiles table",
			SQL: `CREATE TABLE IF NOT EXISTS public.user_profiles (
  id UUID PRIMARY KEY REFERENCES auth.users(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`,
		},
		{
			Name: "enable RLS on user_profiles",
			SQL:  `ALTER TABLE public.user_profiles ENABLE ROW LEVEL SECURITY;`,
		},
		{
			Name: "policy: users can read own profile",
			SQL: `CREATE POLICY "Users can read own profile"
  ON public.user_profiles
  FOR SELECT
  USING (auth.uid() = id);`,
		},
		{
			Name: "policy: users can update own profile",
			SQL: `CREATE POLICY "Users can update own profile"
  ON public.user_profiles
  FOR UPDATE
  USING (auth.uid() = id);`,
		},
		{
			Name: "create wellness_checkins table",
			SQL: `CREATE TABLE IF NOT EXISTS public.wellness_checkins (
  id BIGSERIAL PRIMARY KEY,
  user_id UUID NOT NULL REFERENCES public.user_profiles(id) ON DELETE CASCADE,
  mood INTEGER CHECK (mood >= 1 AND mood <= 10),
  stress_level TEXT CHECK (stress_level IN ('Low', 'Moderate', 'High', 'Very High')),
  sleep_hours DECIMAL(4,2),
  journal_notes TEXT,
  activities TEXT[],
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`,
		},
		{
			Name: "enable RLS on wellness_checkins",
			SQL:  `ALTER TABLE public.wellness_checkins ENABLE ROW LEVEL SECURITY;`,
		},
		{
			Name: "policy: users can read own checkins",
			SQL: `CREATE POLICY "Users can read own checkins"
  ON public.wellness_checkins
  FOR SELECT
  USING (auth.uid() = user_id);`,
		},
		{
			Name: "policy: users can insert own checkins",
			SQL: `CREATE POLICY "Users can insert own checkins"
  ON public.wellness_checkins
  FOR INSERT
  WITH CHECK (auth.uid() = user_id);`,
		},
		{
			Name: "index wellness_checkins by user",
			SQL:  `CREATE INDEX IF NOT EXISTS wellness_checkins_user_id_idx ON public.wellness_checkins (user_id);`,
		},
	}
}
