// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file and from the process environment
// (a local .env file is loaded first when present), validated, and handed to the
// composition root in cmd/bella-api.
package config
