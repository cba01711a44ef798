package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the YAML shape for tuning the phrase tables without a code
// change. Regex-backed tables (objection triggers, step coverage) are not
// overridable; only the plain phrase lists are.
type Overrides struct {
	Fillers   []string `yaml:"fillers"`
	Apologies []string `yaml:"apologies"`
	Ack       []string `yaml:"ack"`
	Clarify   []string `yaml:"clarify"`
	Address   []string `yaml:"address"`
	Confirm   []string `yaml:"confirm"`
}

// Load builds the active lexicon. When LEXICON_CONFIG_PATH is unset the
// built-in tables are used; when set, the file must parse and any non-empty
// list in it replaces the corresponding default.
func Load() (*Lexicon, error) {
	lex := Default()

	path := os.Getenv("LEXICON_CONFIG_PATH")
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon config %s: %w", path, err)
	}

	var overrides Overrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon config %s: %w", path, err)
	}

	apply(lex, overrides)
	return lex, nil
}

func apply(lex *Lexicon, o Overrides) {
	if len(o.Fillers) > 0 {
		lex.Fillers = o.Fillers
	}
	if len(o.Apologies) > 0 {
		lex.Apologies = o.Apologies
	}
	if len(o.Ack) > 0 {
		lex.Ack = o.Ack
	}
	if len(o.Clarify) > 0 {
		lex.Clarify = o.Clarify
	}
	if len(o.Address) > 0 {
		lex.Address = o.Address
	}
	if len(o.Confirm) > 0 {
		lex.Confirm = o.Confirm
	}
}
