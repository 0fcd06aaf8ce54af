package config

// Config holds every knob the layer resolution pipeline honors.
type Config struct {
	// ForceInclude lists package names appended to every layer's dependency
	// list regardless of what the build graph references.
	ForceInclude []string `yaml:"forceInclude"`

	// ForceExclude lists package names removed from the dependency list.
	// A name present in both lists is still included: explicit inclusion wins.
	ForceExclude []string `yaml:"forceExclude"`

	// BackupFileType disambiguates handler files when several share the
	// handler's base name, e.g. hello.js vs hello.spec.js.
	BackupFileType string `yaml:"backupFileType"`

	// Loader maps file extensions (".graphql") to esbuild loader names.
	Loader map[string]string `yaml:"loader"`

	// PluginPath optionally points at a Go plugin (.so) contributing extra
	// bundler plugins. Load failures are logged and ignored.
	PluginPath string `yaml:"plugin"`

	// OutDir is the scratch directory for bundler output artifacts. Only the
	// in-memory build graph matters downstream.
	OutDir string `yaml:"outDir"`

	// Target is the esbuild target passed to the bundler.
	Target string `yaml:"target"`
}

// Defaults returns the fixed default configuration.
func Defaults() *Config {
	return &Config{
		BackupFileType: "default",
		OutDir:         ".esbuild-layers",
		Target:         "node18",
	}
}

// Merge overlays user partials onto the defaults, field by field and in
// argument order, later partials winning. Nil partials are skipped. The
// result is a fresh value; no input is mutated.
func Merge(users ...*Config) *Config {
	cfg := Defaults()
	for _, user := range users {
		cfg.apply(user)
	}
	return cfg
}

func (cfg *Config) apply(user *Config) {
	if user == nil {
		return
	}
	if len(user.ForceInclude) > 0 {
		cfg.ForceInclude = append([]string(nil), user.ForceInclude...)
	}
	if len(user.ForceExclude) > 0 {
		cfg.ForceExclude = append([]string(nil), user.ForceExclude...)
	}
	if user.BackupFileType != "" {
		cfg.BackupFileType = user.BackupFileType
	}
	if len(user.Loader) > 0 {
		cfg.Loader = make(map[string]string, len(user.Loader))
		for ext, loader := range user.Loader {
			cfg.Loader[ext] = loader
		}
	}
	if user.PluginPath != "" {
		cfg.PluginPath = user.PluginPath
	}
	if user.OutDir != "" {
		cfg.OutDir = user.OutDir
	}
	if user.Target != "" {
		cfg.Target = user.Target
	}
}
