package config

import (
	"fmt"
	"net/url"

	"github.com/xiao-chen/dist-test/internal/core/domain"
	"go.trai.ch/zerr"
)

// ConfigError reports a single invalid or missing configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %q: %s", e.Field, e.Reason)
}

// Field declares one configuration key: where it comes from, how it is
// validated, and where it lands on the typed config.
type Field struct {
	// Name is the key in .grind.yaml.
	Name string
	// Env names a process environment variable that overrides the file
	// value. Empty means no override.
	Env string
	// Default applies when neither file nor environment provide a value.
	Default string
	// Required rejects an empty resolved value.
	Required bool
	// Validate checks a non-empty resolved value.
	Validate func(value string) error
	// Assign writes the resolved value onto the config.
	Assign func(cfg *domain.Config, value string)
}

// Schema is the full declarative description of .grind.yaml. Adding a
// setting means adding a row here, nothing else.
func Schema() []Field {
	return []Field{
		{
			Name:     "isolate_path",
			Required: true,
			Assign:   func(c *domain.Config, v string) { c.IsolatePath = v },
		},
		{
			Name:     "client_path",
			Required: true,
			Assign:   func(c *domain.Config, v string) { c.ClientPath = v },
		},
		{
			Name:     "grind_root",
			Required: true,
			Assign:   func(c *domain.Config, v string) { c.GrindRoot = v },
		},
		{
			Name:     "isolate_server",
			Required: true,
			Validate: validURL,
			Assign:   func(c *domain.Config, v string) { c.IsolateServer = v },
		},
		{
			Name:     "dist_test_master",
			Required: true,
			Validate: validURL,
			Assign:   func(c *domain.Config, v string) { c.DistTestMaster = v },
		},
		{
			Name:   "user",
			Env:    "DIST_TEST_USER",
			Assign: func(c *domain.Config, v string) { c.User = v },
		},
		{
			Name:   "password",
			Env:    "DIST_TEST_PASSWORD",
			Assign: func(c *domain.Config, v string) { c.Password = v },
		},
	}
}

func validURL(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return zerr.Wrap(err, "not a valid URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return zerr.New("must be an absolute URL")
	}
	return nil
}
