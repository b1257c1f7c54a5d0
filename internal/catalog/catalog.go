package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chemfetch/sds-parser/constants"
	"github.com/chemfetch/sds-parser/internal/common"
)

// Catalog maps a field key to its ordered list of compiled rules.
// Order is significant: rules are tried in sequence, first success wins.
// A catalog is loaded once at startup and treated as immutable.
type Catalog map[constants.FieldKey][]*regexp.Regexp

// ruleSpec is one entry under a field key in the YAML source. A rule may be
// given as a bare pattern string (case-insensitive by default) or as a mapping
// with an explicit pattern and flags.
type ruleSpec struct {
	Pattern string
	Flags   string
}

func (r *ruleSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		r.Pattern = node.Value
		r.Flags = "I"
		return nil
	}
	var structured struct {
		Regex   string `yaml:"regex"`
		Pattern string `yaml:"pattern"`
		Flags   string `yaml:"flags"`
	}
	if err := node.Decode(&structured); err != nil {
		return err
	}
	r.Pattern = structured.Regex
	if r.Pattern == "" {
		r.Pattern = structured.Pattern
	}
	r.Flags = structured.Flags
	if r.Flags == "" {
		r.Flags = "I"
	}
	return nil
}

// compile builds the Go regexp for a rule spec. Flag names map onto regexp
// inline flags; unrecognized names are ignored, not fatal.
func (r *ruleSpec) compile() (*regexp.Regexp, error) {
	if r.Pattern == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	var inline string
	for _, part := range strings.Split(r.Flags, "|") {
		switch strings.ToUpper(strings.TrimSpace(part)) {
		case "I", "IGNORECASE":
			inline += "i"
		case "M", "MULTILINE":
			inline += "m"
		case "S", "DOTALL":
			inline += "s"
		}
	}
	pattern := r.Pattern
	if inline != "" {
		pattern = "(?" + inline + ")" + pattern
	}
	return regexp.Compile(pattern)
}

// Load reads and compiles a pattern catalog from a YAML file. A missing or
// malformed source is a configuration error; a well-formed but empty source
// yields a catalog that matches nothing.
func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, common.ConfigurationError(fmt.Sprintf("read pattern catalog %s", path), err)
	}
	return Parse(raw)
}

// Parse compiles a catalog from raw YAML bytes.
func Parse(raw []byte) (Catalog, error) {
	var doc map[string][]ruleSpec
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, common.ConfigurationError("parse pattern catalog", err)
	}
	compiled := make(Catalog, len(doc))
	for key, specs := range doc {
		rules := make([]*regexp.Regexp, 0, len(specs))
		for i, spec := range specs {
			re, err := spec.compile()
			if err != nil {
				return nil, common.ConfigurationError(
					fmt.Sprintf("field %q rule %d", key, i), err)
			}
			rules = append(rules, re)
		}
		compiled[constants.FieldKey(key)] = rules
	}
	return compiled, nil
}

// Rules returns the ordered rule list for a field key, nil if undeclared.
func (c Catalog) Rules(key constants.FieldKey) []*regexp.Regexp {
	return c[key]
}
