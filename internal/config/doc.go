// Package config defines the merged plugin configuration consumed by the
// layer resolution pipeline.
//
// A Config is assembled once per invocation: fixed defaults, overlaid with
// the `custom.esbuild-layers` block from the service file, overlaid with an
// optional HCL override file. It is never mutated afterwards.
package config
