// Copyright (c) 2021 NETWAYS GmbH
package config

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

// Version of the check plugin
const Version = "0.1.0"

const (
	// DefaultMaxAge is the capacity-usage freshness threshold in minutes
	DefaultMaxAge = 5

	// EnvAPIUser is the environment fallback for --username
	EnvAPIUser = "CHECK_VMWARE_NSXT_API_USER"
	// EnvAPIPassword is the environment fallback for --password
	EnvAPIPassword = "CHECK_VMWARE_NSXT_API_PASSWORD"
)

// Modes supported by the check
var Modes = []string{"cluster-status", "alarms", "capacity-usage"}

// Config - Define a config type to hold our check configuration.
type Config struct {
	API      string
	Username string `env:"CHECK_VMWARE_NSXT_API_USER"`
	Password string `env:"CHECK_VMWARE_NSXT_API_PASSWORD"`
	Mode     string
	Excludes []string
	MaxAge   int
	Insecure bool
	Version  bool
}

var message = "Using %s from environment"

// LoadEnvironment fills credentials from the environment when the flags
// were not given. Flags take precedence over the environment.
func (c *Config) LoadEnvironment() {
	setDefault(&c.Username, EnvAPIUser)
	setDefault(&c.Password, EnvAPIPassword)
}

// Validate checks that all required settings are present
func (c *Config) Validate() error {
	if c.API == "" {
		return fmt.Errorf("--api is required")
	}
	if c.Username == "" {
		return fmt.Errorf("--username is required, or set %s", EnvAPIUser)
	}
	if c.Password == "" {
		return fmt.Errorf("--password is required, or set %s", EnvAPIPassword)
	}
	if c.Mode == "" {
		return fmt.Errorf("--mode is required")
	}
	return nil
}

func setDefault(field *string, env string) {
	if *field != "" {
		return
	}
	if val := os.Getenv(env); val != "" {
		glog.V(2).Infof(message, env)
		*field = val
	}
}
