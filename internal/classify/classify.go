// Package classify maps statement titles to spending categories by
// walking an ordered list of pattern rules. The rule list is data: a
// YAML document, embedded with a built-in default and overridable from
// a file, so adding a merchant never touches code.
package classify

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/saldo-dev/saldo/internal/model"
	"github.com/saldo-dev/saldo/internal/normalize"
)

//go:embed rules.yaml
var embeddedRules []byte

// Rule pairs a compiled pattern with the category it assigns.
type Rule struct {
	pattern  *regexp.Regexp
	category model.Category
}

// Classifier holds an immutable ordered rule list. Match order is
// document order: the first rule whose pattern matches anywhere in the
// normalized title wins.
type Classifier struct {
	rules []Rule
}

type ruleFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Pattern  string `yaml:"pattern"`
	Category string `yaml:"category"`
}

// Load parses a YAML rule list into a Classifier.
func Load(r io.Reader) (*Classifier, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	rules := make([]Rule, 0, len(f.Rules))
	for i, spec := range f.Rules {
		if strings.TrimSpace(spec.Pattern) == "" {
			return nil, fmt.Errorf("rule %d: empty pattern", i+1)
		}
		if strings.TrimSpace(spec.Category) == "" {
			return nil, fmt.Errorf("rule %d: empty category", i+1)
		}
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: compiling pattern %q: %w", i+1, spec.Pattern, err)
		}
		rules = append(rules, Rule{pattern: re, category: model.Category(spec.Category)})
	}
	return &Classifier{rules: rules}, nil
}

// LoadFile parses a YAML rule list from disk.
func LoadFile(path string) (*Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rules file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var (
	defaultOnce sync.Once
	defaultCls  *Classifier
)

// Default returns the classifier built from the embedded rule set,
// constructed once per process.
func Default() *Classifier {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(embeddedRules))
		if err != nil {
			panic("classify: embedded rules.yaml: " + err.Error())
		}
		defaultCls = c
	})
	return defaultCls
}

// Len reports the number of loaded rules.
func (c *Classifier) Len() int { return len(c.rules) }

// Classify normalizes rawTitle and returns the category of the first
// matching rule, or CategoryUnknown when nothing matches.
func (c *Classifier) Classify(rawTitle string) model.Category {
	title := normalize.Title(rawTitle)
	if title == "" {
		return model.CategoryUnknown
	}
	for _, r := range c.rules {
		if r.pattern.MatchString(title) {
			return r.category
		}
	}
	return model.CategoryUnknown
}
