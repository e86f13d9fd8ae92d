// Package config loads line sets and output settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"exactgeo/src/math/geometry"
	"exactgeo/src/math/rational"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrNoLines = errors.New("config: no lines defined")

// Config is a validated line set plus output settings.
type Config struct {
	Output Output
	Lines  []NamedLine
}

type Output struct {
	Format string
	Color  string
}

// NamedLine is a line with the label used in reports.
type NamedLine struct {
	Name string
	Line geometry.Line
}

type yamlFile struct {
	Output yamlOutput `yaml:"output"`
	Lines  []yamlLine `yaml:"lines"`
}

type yamlOutput struct {
	Format string `yaml:"format"`
	Color  string `yaml:"color"`
}

type yamlLine struct {
	Name string      `yaml:"name"`
	A    coefficient `yaml:"a"`
	B    coefficient `yaml:"b"`
	C    coefficient `yaml:"c"`
}

// coefficient accepts integer ("3") and fraction ("-7/4") scalars.
type coefficient struct {
	value rational.Fraction
	set   bool
}

func (c *coefficient) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: coefficient must be a scalar", node.Line)
	}
	f, err := rational.Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	c.value, c.set = f, true
	return nil
}

// Default returns the built-in demo set:
//
//	l1: x - y - 3 = 0
//	l2: 2x - 2y + 1 = 0
//	l3: x - y + 4 = 0
//	l4: x + 2y - 5 = 0
func Default() *Config {
	coefs := [][3]int64{
		{1, -1, -3},
		{2, -2, 1},
		{1, -1, 4},
		{1, 2, -5},
	}
	cfg := &Config{Output: Output{Format: FormatText, Color: ColorAuto}}
	for i, c := range coefs {
		cfg.Lines = append(cfg.Lines, NamedLine{
			Name: defaultName(i),
			Line: geometry.NewLine(rational.MustNew(c[0], 1), rational.MustNew(c[1], 1), rational.MustNew(c[2], 1)),
		})
	}
	return cfg
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML config document. Missing output
// settings fall back to Default's.
func Parse(data []byte) (*Config, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := &Config{Output: Output{Format: file.Output.Format, Color: file.Output.Color}}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = ColorAuto
	}
	if err := cfg.Output.Validate(); err != nil {
		return nil, err
	}

	if len(file.Lines) == 0 {
		return nil, ErrNoLines
	}
	seen := make(map[string]bool, len(file.Lines))
	for i, yl := range file.Lines {
		name := yl.Name
		if name == "" {
			name = defaultName(i)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate line name %q", name)
		}
		seen[name] = true

		for _, c := range []struct {
			label string
			coef  coefficient
		}{{"a", yl.A}, {"b", yl.B}, {"c", yl.C}} {
			if !c.coef.set {
				return nil, fmt.Errorf("line %q: missing coefficient %s", name, c.label)
			}
		}
		cfg.Lines = append(cfg.Lines, NamedLine{
			Name: name,
			Line: geometry.NewLine(yl.A.value, yl.B.value, yl.C.value),
		})
	}
	return cfg, nil
}

// Validate checks the format and color values.
func (o Output) Validate() error {
	switch o.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", o.Format)
	}
	switch o.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", o.Color)
	}
	return nil
}

// GeometryLines returns the bare lines in config order.
func (c *Config) GeometryLines() []geometry.Line {
	lines := make([]geometry.Line, len(c.Lines))
	for i, nl := range c.Lines {
		lines[i] = nl.Line
	}
	return lines
}

func defaultName(i int) string {
	return fmt.Sprintf("l%d", i+1)
}
