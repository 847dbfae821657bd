// Package platforms holds the static registry of supported AI coding
// assistants and their on-disk install conventions.
package platforms
