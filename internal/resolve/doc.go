// Package resolve maps declarative handler specifiers to concrete source
// files on disk.
//
// Resolution happens in two stages. Entries expands individual specifiers by
// glob matching, tolerating absent or mismatched extensions. LayerEntries
// walks the declared functions of a service, selects the ones assigned to a
// layer, and falls back to a directory-listing heuristic when glob matching
// comes up empty.
package resolve
