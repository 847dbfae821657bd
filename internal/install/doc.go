// Package install plans and executes the placement of knowledge base
// files into platform-specific directory layouts.
package install
