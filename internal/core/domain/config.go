package domain

// Config is the validated runtime configuration for a grind run. Fields are
// populated by the config loader from the project's .grind.yaml, an optional
// .env file, and process environment overrides.
type Config struct {
	// IsolatePath is the path to the archiving tool binary.
	IsolatePath string
	// ClientPath is the path to the distributed-execution client.
	ClientPath string
	// GrindRoot is the installation root holding helper scripts.
	GrindRoot string

	// IsolateServer is the archive upload endpoint.
	IsolateServer string
	// DistTestMaster is the remote scheduler endpoint.
	DistTestMaster string
	// User and Password authenticate against the scheduler. Process
	// environment values take precedence over file values.
	User     string
	Password string
}

// ChildEnv returns the credential and endpoint variables injected into every
// external tool invocation, in "KEY=VALUE" form.
func (c *Config) ChildEnv() []string {
	return []string{
		"ISOLATE_SERVER=" + c.IsolateServer,
		"DIST_TEST_MASTER=" + c.DistTestMaster,
		"DIST_TEST_USER=" + c.User,
		"DIST_TEST_PASSWORD=" + c.Password,
	}
}
