// Package cli wires the cobra command tree.
package cli
