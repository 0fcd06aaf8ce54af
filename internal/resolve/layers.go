package resolve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/ctxlog"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/service"
)

// handlerPattern splits a handler specifier into its directory portion, file
// name and optional qualifier after the first dot. Directory segments
// containing dots do not match; such handlers are skipped by the fallback.
var handlerPattern = regexp.MustCompile(`^((?:[^./]*/)*)([^./]*)(?:\.([^/]*))?$`)

// LayerEntries determines the set of entry files for one layer.
//
// Functions are visited in a stable order. A function contributes entries
// when it is handler-based, participates in layering, and references layerID.
// Its handler's file portion is resolved with Entries first; when that yields
// nothing, a directory-listing fallback matches files by base-name prefix,
// disambiguating multiple candidates with backupFileType.
//
// The result is deduplicated by absolute path across functions and returned
// sorted, so repeated runs over the same tree produce identical output.
func LayerEntries(ctx context.Context, model *service.Model, layerID, backupFileType string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	set := map[string]struct{}{}

	for _, name := range model.FunctionNames() {
		fn := model.Functions[name]

		if fn.Handler == "" {
			logger.Warn("Function has no handler and cannot be layered; image-based functions are unsupported.", "function", name)
			continue
		}
		if !fn.Layered() {
			continue
		}
		if !fn.ReferencesLayer(layerID) {
			continue
		}

		matches, err := Entries(ctx, filePortion(fn.Handler))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve handler for function %s: %w", name, err)
		}

		if len(matches) == 0 {
			matches, err = fallbackEntry(fn.Handler, backupFileType)
			if err != nil {
				return nil, fmt.Errorf("fallback resolution failed for function %s: %w", name, err)
			}
		}

		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, fmt.Errorf("failed to absolutize %s: %w", m, err)
			}
			set[abs] = struct{}{}
		}
	}

	entries := make([]string, 0, len(set))
	for path := range set {
		entries = append(entries, path)
	}
	sort.Strings(entries)
	return entries, nil
}

// filePortion strips the trailing ".<exportName>" from a handler specifier.
func filePortion(handler string) string {
	if i := strings.LastIndex(handler, "."); i >= 0 {
		return handler[:i]
	}
	return handler
}

// fallbackEntry lists the handler's directory and picks the file whose name
// starts with the handler's base name. Several candidates sharing the prefix
// are disambiguated by appending the backup qualifier instead of guessing
// between them. A handler that does not fit the expected shape yields
// nothing, silently.
func fallbackEntry(handler, backupFileType string) ([]string, error) {
	m := handlerPattern.FindStringSubmatch(handler)
	if m == nil {
		return nil, nil
	}
	folderPath, fileName := m[1], m[2]

	dir := folderPath
	if dir == "" {
		dir = "."
	}
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var candidates []string
	for _, de := range dirEntries {
		if !de.IsDir() && strings.HasPrefix(de.Name(), fileName) {
			candidates = append(candidates, de.Name())
		}
	}

	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return []string{filepath.Join(folderPath, candidates[0])}, nil
	default:
		return []string{filepath.Join(folderPath, fileName+"."+backupFileType)}, nil
	}
}
