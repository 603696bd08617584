package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEBUG dumps adapter traffic (channel and DM calls) to the test log
	Debug bool `envconfig:"E2E_DEBUG" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_KEY_TAG is the product tag stamped on generated key codes
	KeyTag string `envconfig:"E2E_KEY_TAG" default:"SLOT"`
	// E2E_PRIMARY_ADMIN is the user ID treated as the primary admin
	PrimaryAdmin string `envconfig:"E2E_PRIMARY_ADMIN" default:"admin-primary"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
