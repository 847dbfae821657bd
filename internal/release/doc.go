// Package release talks to the GitHub release feed that publishes
// versioned knowledge base bundles.
package release
