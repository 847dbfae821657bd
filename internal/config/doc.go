// Package config manages the per-user configuration file.
package config
