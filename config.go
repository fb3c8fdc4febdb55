package jsuniquify

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mjarrett/jsuniquify/internal/ast"
)

// LanguageMode selects which syntactic forms the scope builder should
// expect to see, mirroring spec.md's languageMode knob. The builder
// itself does not reject newer syntax it doesn't recognize; this exists
// so callers (and the CLI) can record and report the language level a
// tree was produced under.
type LanguageMode string

const (
	ES5        LanguageMode = "ES5"
	ES2015     LanguageMode = "ES2015"
	ES2017Plus LanguageMode = "ES2017+"
)

// Config holds configuration options for a renaming or inversion Pass.
type Config struct {
	// UseDefaultRenamer selects the Contextual renamer (true) over the
	// Inline renamer (false). Ignored when Invert is true.
	UseDefaultRenamer bool `yaml:"useDefaultRenamer"`

	// Invert runs the Inverter instead of a forward renamer.
	Invert bool `yaml:"invert"`

	// RemoveConst makes the Inline renamer leave names that follow the
	// all-caps constant convention unrenamed. It does not change any
	// declaration's const-ness in the tree. Has no effect on the
	// Contextual renamer or the Inverter.
	RemoveConst bool `yaml:"removeConst"`

	// LocalNamePrefix is inserted between "$jscomp$" and the numeric id
	// minted by the Inline renamer (default "", commonly "unique_").
	LocalNamePrefix string `yaml:"localNamePrefix"`

	// LanguageMode informs which syntactic forms are legal in the tree
	// being processed. Defaults to ES2017Plus.
	LanguageMode LanguageMode `yaml:"languageMode"`

	// ChangeRootSet, when non-empty, restricts scope construction to
	// the given SCRIPT nodes; other top-level scripts under the same
	// root are left untouched. A nil or empty set processes every
	// script. Not loadable from a config file: a SCRIPT node only
	// exists once a tree has already been parsed, so callers set this
	// in code after loading the rest of Config from YAML.
	ChangeRootSet []*ast.Node `yaml:"-"`
}

// LoadConfig reads a YAML file at path into a new Config. ChangeRootSet
// is always empty on the result; set it afterward in code.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.LanguageMode == "" {
		c.LanguageMode = ES2017Plus
	}
}

func (c *Config) changeRootSet() map[*ast.Node]bool {
	if len(c.ChangeRootSet) == 0 {
		return nil
	}
	set := make(map[*ast.Node]bool, len(c.ChangeRootSet))
	for _, n := range c.ChangeRootSet {
		set[n] = true
	}
	return set
}
