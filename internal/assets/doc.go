// Package assets resolves knowledge base content (templates aside) from
// either the bundled copy baked into the binary or a downloaded release
// archive.
package assets
