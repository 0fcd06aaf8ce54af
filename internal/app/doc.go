// Package app wires the layer resolution pipeline together: it loads the
// service model and plugin configuration, resolves each layer's entry files,
// extracts and filters their external dependencies, and emits the results.
package app
