// Package render materializes the per-platform instruction files from the
// embedded template bodies.
package render
