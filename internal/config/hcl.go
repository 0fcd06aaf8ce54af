package config

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/ctxlog"
)

// OverrideFile is the well-known name of the optional HCL override file,
// looked up relative to the service root.
const OverrideFile = "esbuild-layers.hcl"

// overrideRoot mirrors the attributes accepted in an override file. The
// loader attribute is kept as a raw expression and evaluated by hand so a
// map of arbitrary extensions can be expressed.
type overrideRoot struct {
	ForceInclude   []string       `hcl:"force_include,optional"`
	ForceExclude   []string       `hcl:"force_exclude,optional"`
	BackupFileType string         `hcl:"backup_file_type,optional"`
	PluginPath     string         `hcl:"plugin,optional"`
	OutDir         string         `hcl:"out_dir,optional"`
	Target         string         `hcl:"target,optional"`
	Loader         hcl.Expression `hcl:"loader,optional"`
}

// LoadOverrides reads the HCL override file at path, returning a user
// partial suitable for Merge. A missing file is not an error and yields nil;
// a present but malformed file is a hard error.
func LoadOverrides(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No override file found.", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat override file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse override file %s: %w", path, diags)
	}

	var root overrideRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode override file %s: %w", path, diags)
	}

	loader, err := decodeLoaderMap(root.Loader)
	if err != nil {
		return nil, fmt.Errorf("invalid loader attribute in %s: %w", path, err)
	}

	logger.Debug("Override file loaded.", "path", path)
	return &Config{
		ForceInclude:   root.ForceInclude,
		ForceExclude:   root.ForceExclude,
		BackupFileType: root.BackupFileType,
		PluginPath:     root.PluginPath,
		OutDir:         root.OutDir,
		Target:         root.Target,
		Loader:         loader,
	}, nil
}

// decodeLoaderMap evaluates the loader expression into a string-to-string
// map. Absent or null expressions yield nil.
func decodeLoaderMap(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("loader must be a map of extension to loader name")
	}

	loader := make(map[string]string)
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		if k.Type() != cty.String || v.Type() != cty.String {
			return nil, fmt.Errorf("loader keys and values must be strings")
		}
		loader[k.AsString()] = v.AsString()
	}
	if len(loader) == 0 {
		return nil, nil
	}
	return loader, nil
}
