package design

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigError reports an invalid or incomplete configuration file. It is
// fatal: no design is processed when the configuration cannot be resolved.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Config is a fully resolved configuration file: catalog-level settings and
// the designs in file order, each with its effective settings and paths.
type Config struct {
	Path     string
	Settings Settings
	Designs  []Design
}

// Load reads and resolves a configuration file. The design directory is
// taken relative to the configuration file. Designs keep the order they
// appear in the file; a repeated design name keeps its first position but
// takes the last definition, the way a YAML mapping would resolve.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: "read", Err: err}
	}

	var raw struct {
		Settings Overrides `yaml:"settings"`
		Designs  yaml.Node `yaml:"designs"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Path: path, Reason: "parse", Err: err}
	}

	base := DefaultSettings().Apply(raw.Settings)
	if err := base.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Reason: "settings", Err: err}
	}

	root := base.DesignDir
	if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(path), root)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("not a directory: %s", root), Err: err}
	}

	if raw.Designs.Kind == 0 {
		return nil, &ConfigError{Path: path, Reason: "no designs defined"}
	}
	if raw.Designs.Kind != yaml.MappingNode {
		return nil, &ConfigError{Path: path, Reason: "designs must be a mapping of name to settings"}
	}

	cfg := &Config{Path: path, Settings: base}
	index := make(map[string]int)
	for i := 0; i+1 < len(raw.Designs.Content); i += 2 {
		name := raw.Designs.Content[i].Value
		value := raw.Designs.Content[i+1]

		var o Overrides
		if value.Tag != "!!null" {
			if err := value.Decode(&o); err != nil {
				return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("design %s", name), Err: err}
			}
		}

		effective := base.Apply(o)
		if err := effective.Validate(); err != nil {
			return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("design %s", name), Err: err}
		}
		width := 0.0
		if o.Width != nil {
			if *o.Width <= 0 {
				return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("design %s: width must be positive, got %g", name, *o.Width)}
			}
			width = *o.Width
		}

		d := Design{
			Name:        name,
			Settings:    effective,
			WidthInches: width,
			Paths:       PathsFor(filepath.Join(root, name), name, o),
		}
		if at, ok := index[name]; ok {
			cfg.Designs[at] = d
		} else {
			index[name] = len(cfg.Designs)
			cfg.Designs = append(cfg.Designs, d)
		}
	}
	if len(cfg.Designs) == 0 {
		return nil, &ConfigError{Path: path, Reason: "no designs defined"}
	}
	return cfg, nil
}
