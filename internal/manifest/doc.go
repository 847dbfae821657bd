// Package manifest parses and validates the asset bundle manifest.
package manifest
