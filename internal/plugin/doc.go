// Package plugin is the extension point for bundler behavior.
//
// Callers extend or override the build request through named factories held
// in a Registry. Factories can be compiled in or loaded from a Go plugin
// file at runtime; a load that fails for any reason degrades to an empty
// override set instead of failing the extraction.
package plugin
