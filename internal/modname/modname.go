// Package modname canonicalizes raw import specifiers into installable npm
// package names.
package modname

import "strings"

// Normalize reduces a raw import specifier, possibly a deep sub-path, to the
// name of the package that provides it. Scoped specifiers keep their first
// two path segments, everything else keeps only the first.
//
//	Normalize("uuid/v4")         == "uuid"
//	Normalize("@scope/pkg/deep") == "@scope/pkg"
//
// Any input yields a deterministic output; there are no error cases.
func Normalize(specifier string) string {
	parts := strings.Split(specifier, "/")
	if strings.HasPrefix(specifier, "@") && len(parts) >= 2 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}
