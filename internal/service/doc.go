// Package service models the slice of the deployment framework's service
// file this tool consumes: function declarations, layer declarations, and
// the custom plugin configuration block. The model is read-only input; the
// pipeline never writes back to it.
package service
