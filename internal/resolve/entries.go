package resolve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// sourceExts are the accepted source extensions, in match order.
var sourceExts = []string{".js", ".ts"}

func isSourceExt(ext string) bool {
	for _, s := range sourceExts {
		if ext == s {
			return true
		}
	}
	return false
}

// Entries expands handler specifiers into existing source file paths.
//
// The boundary is deliberately permissive, mirroring the dynamically typed
// callers this input originates from: anything that is not a string or a
// []string yields an empty result, not an error (garbage in, empty out). A
// single string is treated as a one-element list.
//
// Per specifier, a trailing extension that is not already a source extension
// is rewritten into a pattern matching either source extension, with or
// without the original qualifier in between: "dir/file.default" matches
// dir/file.js, dir/file.ts, dir/file.default.js and dir/file.default.ts.
// Matches are globbed relative to the specifier's directory portion and
// joined back onto it.
//
// Specifiers resolve concurrently; results are reassembled in input order
// with per-specifier match order preserved. Duplicates across specifiers
// are not collapsed here.
func Entries(ctx context.Context, specs any) ([]string, error) {
	var list []string
	switch v := specs.(type) {
	case string:
		list = []string{v}
	case []string:
		list = v
	default:
		return []string{}, nil
	}
	if len(list) == 0 {
		return []string{}, nil
	}

	perSpec := make([][]string, len(list))
	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range list {
		i, spec := i, spec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches, err := globSpecifier(spec)
			if err != nil {
				return err
			}
			perSpec[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resolved := []string{}
	for _, matches := range perSpec {
		resolved = append(resolved, matches...)
	}
	return resolved, nil
}

// globSpecifier matches one specifier against the filesystem.
func globSpecifier(spec string) ([]string, error) {
	root := filepath.Dir(spec)
	name := filepath.Base(spec)

	pattern := name
	if ext := filepath.Ext(name); ext != "" && !isSourceExt(ext) {
		pattern = fmt.Sprintf("%s{,%s}.{js,ts}", name[:len(name)-len(ext)], ext)
	}

	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to match %s under %s: %w", pattern, root, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		// filepath.Join cleans a "." root away, leaving bare names for
		// specifiers without a directory component.
		paths = append(paths, filepath.Join(root, m))
	}
	return paths, nil
}
