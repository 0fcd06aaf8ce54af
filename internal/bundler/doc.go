// Package bundler turns a set of resolved entry files into the raw list of
// external module specifiers they transitively reference.
//
// esbuild is invoked once per extraction, in bundling mode with metafile
// output enabled. The output artifacts land in a scratch directory and are
// not meaningful downstream; only the in-memory build graph matters. An
// externals-marking plugin is always injected so package imports are
// recorded in the graph instead of being bundled in.
package bundler
