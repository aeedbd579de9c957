package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/paths"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "NXJ_"

// Options selects the optional layers of Load
type Options struct {
	// ConfigFile replaces the project file lookup; it must exist
	ConfigFile string

	// Overrides are applied last, keyed by dotted path ("link.main_class")
	Overrides map[string]interface{}
}

// Load merges all configuration layers for the project at p and returns the
// decoded, validated configuration. Relative paths in the result are
// resolved against the project directory.
func Load(p paths.Paths, opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config if it exists
	if userPath := p.UserConfigPath(); fileExists(userPath) {
		if err := loadFile(k, userPath); err != nil {
			return nil, err
		}
		sources = append(sources, userPath)
	}

	// 3. Project config: explicit file, or nxj.toml/nxj.yaml if present
	projectPath := opts.ConfigFile
	if projectPath != "" {
		projectPath = p.Resolve(projectPath)
		if !fileExists(projectPath) {
			return nil, errors.Newf(errors.ErrConfigLoad, "config file %s does not exist", projectPath).
				WithDetail("path", projectPath)
		}
	} else if candidate := p.ProjectConfigPath(); fileExists(candidate) {
		projectPath = candidate
	}
	if projectPath != "" {
		if err := loadFile(k, projectPath); err != nil {
			return nil, err
		}
		sources = append(sources, projectPath)
	}

	// 4. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources
	resolvePaths(cfg, p)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", sources).
		Str("repository", cfg.Repository).
		Int("dependencies", len(cfg.Dependencies)).
		Msg("Configuration loaded")
	return cfg, nil
}

// envKey maps NXJ_LINK__MAIN_CLASS to link.main_class
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// envValue skips empty variables and the ones that locate the project rather
// than configure it, so neither masks a value from a file.
func envValue(name, value string) (string, interface{}) {
	switch name {
	case paths.EnvProject, paths.EnvConfigDir:
		return "", nil
	}
	if value == "" {
		return "", nil
	}
	return envKey(name), value
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// loadFile reads and parses path separately so that unreadable and malformed
// files get different codes.
func loadFile(k *koanf.Koanf, path string) error {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}
	parser := parserFor(path)
	if _, err := parser.Unmarshal(data); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to merge config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

func resolvePaths(cfg *Config, p paths.Paths) {
	if cfg.Repository == "" {
		cfg.Repository = paths.DefaultRepositoryRoot()
	} else {
		cfg.Repository = p.Resolve(cfg.Repository)
	}
	cfg.Pom = p.Resolve(cfg.Pom)
	cfg.Link.ClassesDir = p.Resolve(cfg.Link.ClassesDir)
	cfg.Link.OutputDir = p.Resolve(cfg.Link.OutputDir)
	cfg.Link.BootClasspath = resolveList(cfg.Link.BootClasspath, p)
	cfg.Upload.Executable = p.Resolve(cfg.Upload.Executable)
}

// resolveList resolves each entry of a path list
func resolveList(list string, p paths.Paths) string {
	if list == "" {
		return ""
	}
	entries := filepath.SplitList(list)
	for i, entry := range entries {
		entries[i] = p.Resolve(entry)
	}
	return strings.Join(entries, string(os.PathListSeparator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
