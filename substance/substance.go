package substance

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// 标准大气压, mmHg
const StandardPressure = 760.0

//go:embed substances.yaml
var builtin []byte

var ErrNotFound = errors.New("substance not found")

// Substance carries the Antoine constants of one pure component, in mmHg and °C.
type Substance struct {
	Name string  `yaml:"name" json:"name"`
	A    float64 `yaml:"a" json:"a"`
	B    float64 `yaml:"b" json:"b"`
	C    float64 `yaml:"c" json:"c"`
	MinT float64 `yaml:"min_t" json:"min_t"` // 常数适用温度下限
	MaxT float64 `yaml:"max_t" json:"max_t"` // 常数适用温度上限
}

// BoilingPoint inverts the Antoine equation at the given pressure.
func (s Substance) BoilingPoint(pressure float64) (float64, error) {
	if pressure <= 0 {
		return 0, fmt.Errorf("pressure must be > 0, got %v", pressure)
	}
	d := s.A - math.Log10(pressure)
	if d == 0 {
		return 0, fmt.Errorf("%s: no boiling point at %v mmHg", s.Name, pressure)
	}
	return s.B/d - s.C, nil
}

// NormalBoilingPoint is the boiling point at one atmosphere.
func (s Substance) NormalBoilingPoint() (float64, error) {
	return s.BoilingPoint(StandardPressure)
}

func (s Substance) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("substance name is empty")
	}
	if s.B <= 0 {
		return fmt.Errorf("%s: B must be > 0", s.Name)
	}
	if s.MinT != 0 || s.MaxT != 0 {
		if s.MinT >= s.MaxT {
			return fmt.Errorf("%s: min_t must be below max_t", s.Name)
		}
		// 适用温度范围内 T + C 不能为 0
		if s.MinT+s.C <= 0 {
			return fmt.Errorf("%s: T + C vanishes inside [%v, %v]", s.Name, s.MinT, s.MaxT)
		}
	}
	return nil
}

// Catalog is an immutable lookup table of substances. It is safe for
// concurrent use.
type Catalog struct {
	names []string
	items map[string]Substance
}

type document struct {
	Substances []Substance `yaml:"substances"`
}

// Parse builds a catalog from a YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse substance catalog: %w", err)
	}
	return newCatalog(doc.Substances)
}

// Load reads a catalog file and merges it over the built-in substances.
// Entries in the file replace built-in ones with the same name.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read substance catalog: %w", err)
	}
	extra, err := Parse(data)
	if err != nil {
		return nil, err
	}
	merged := Default().List()
	for _, s := range extra.List() {
		replaced := false
		for i := range merged {
			if strings.EqualFold(merged[i].Name, s.Name) {
				merged[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, s)
		}
	}
	return newCatalog(merged)
}

func newCatalog(list []Substance) (*Catalog, error) {
	c := &Catalog{
		names: make([]string, 0, len(list)),
		items: make(map[string]Substance, len(list)),
	}
	for _, s := range list {
		if err := s.validate(); err != nil {
			return nil, err
		}
		key := strings.ToLower(s.Name)
		if _, ok := c.items[key]; ok {
			return nil, fmt.Errorf("duplicate substance %q", s.Name)
		}
		c.items[key] = s
		c.names = append(c.names, s.Name)
	}
	return c, nil
}

// Lookup finds a substance by name, ignoring case.
func (c *Catalog) Lookup(name string) (Substance, error) {
	s, ok := c.items[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Substance{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s, nil
}

// Names returns the substance names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) List() []Substance {
	out := make([]Substance, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.items[strings.ToLower(name)])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.names)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog, parsed on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(builtin)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
