package keywords

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed dictionary.yaml
var defaultDictionaryYAML []byte

// Role maps a category name (languages, frameworks, tools...) to its keywords.
type Role map[string][]string

// Dictionary is the static role/keyword catalog plus the phrase list.
// It is read-only after construction and safe for concurrent use.
type Dictionary struct {
	Version int
	Phrases []string
	Roles   map[string]Role

	union map[string]struct{}
	names []string
}

type dictionaryFile struct {
	Version int             `yaml:"version"`
	Phrases []string        `yaml:"phrases"`
	Roles   map[string]Role `yaml:"roles"`
}

var (
	defaultDictOnce sync.Once
	defaultDict     *Dictionary
)

// DefaultDictionary returns the embedded dictionary. The embedded data is
// covered by tests, so a decode failure here is a build defect.
func DefaultDictionary() *Dictionary {
	defaultDictOnce.Do(func() {
		d, err := LoadDictionary(defaultDictionaryYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded dictionary: %v", err))
		}
		defaultDict = d
	})
	return defaultDict
}

// LoadDictionaryFile reads a YAML dictionary from path.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return LoadDictionary(data)
}

// LoadDictionary decodes and validates a YAML dictionary. Keywords and
// phrases are folded to lower case.
func LoadDictionary(data []byte) (*Dictionary, error) {
	var f dictionaryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	if len(f.Roles) == 0 {
		return nil, errors.New("dictionary: no roles defined")
	}

	d := &Dictionary{
		Version: f.Version,
		Roles:   make(map[string]Role, len(f.Roles)),
		union:   make(map[string]struct{}),
	}
	for _, p := range f.Phrases {
		p = Fold(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !strings.ContainsFunc(p, func(r rune) bool { return !isTokenRune(r) }) {
			return nil, fmt.Errorf("dictionary: phrase %q is a single token", p)
		}
		d.Phrases = append(d.Phrases, p)
	}

	for name, cats := range f.Roles {
		name = strings.TrimSpace(name)
		role := make(Role, len(cats))
		total := 0
		for cat, kws := range cats {
			folded := make([]string, 0, len(kws))
			for _, kw := range kws {
				kw = Fold(strings.TrimSpace(kw))
				if kw == "" {
					continue
				}
				folded = append(folded, kw)
				d.union[kw] = struct{}{}
			}
			role[cat] = folded
			total += len(folded)
		}
		if total == 0 {
			return nil, fmt.Errorf("dictionary: role %q has no keywords", name)
		}
		d.Roles[name] = role
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)
	return d, nil
}

// RoleNames returns the role names in alphabetical order.
func (d *Dictionary) RoleNames() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// HasRole reports whether name is a known role.
func (d *Dictionary) HasRole(name string) bool {
	_, ok := d.Roles[name]
	return ok
}

// Keywords returns the flattened keyword list of a role, categories in
// alphabetical order.
func (d *Dictionary) Keywords(role string) ([]string, error) {
	r, ok := d.Roles[role]
	if !ok {
		return nil, &InvalidRoleError{Role: role, Known: d.RoleNames()}
	}
	cats := make([]string, 0, len(r))
	for c := range r {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	var out []string
	for _, c := range cats {
		out = append(out, r[c]...)
	}
	return out, nil
}

// Contains reports whether keyword appears in any role or category.
func (d *Dictionary) Contains(keyword string) bool {
	_, ok := d.union[Fold(keyword)]
	return ok
}

// Index builds a frequency table using this dictionary's phrase list.
func (d *Dictionary) Index(corpus string) FrequencyTable {
	return Index(corpus, d.Phrases)
}
