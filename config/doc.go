// Package config loads the songstatus YAML configuration. Missing keys
// keep the values from Default, and a missing file yields the defaults.
package config
