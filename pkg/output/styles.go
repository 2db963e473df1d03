package output

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef is an adaptive color in styles.yaml
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a named style in styles.yaml. Foreground and Background name
// an entry of the colors table or are literal colors.
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// StylesConfig is the parsed styles.yaml
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var defaultStyles = mustLoadStyles(stylesYAML)

// LoadStyles parses a styles document
func LoadStyles(data []byte) (*StylesConfig, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	for name, def := range cfg.Styles {
		for _, ref := range []string{def.Foreground, def.Background} {
			if ref == "" || ref[0] == '#' {
				continue
			}
			if _, ok := cfg.Colors[ref]; !ok {
				return nil, fmt.Errorf("style %s uses undefined color %s", name, ref)
			}
		}
	}
	return &cfg, nil
}

func mustLoadStyles(data []byte) *StylesConfig {
	cfg, err := LoadStyles(data)
	if err != nil {
		panic(err)
	}
	return cfg
}

// StyleNames lists the defined styles
func StyleNames() []string {
	names := make([]string, 0, len(defaultStyles.Styles))
	for name := range defaultStyles.Styles {
		names = append(names, name)
	}
	return names
}

// build creates the named style for renderer r. Unknown names render
// unstyled.
func (c *StylesConfig) build(r *lipgloss.Renderer, name string) lipgloss.Style {
	style := r.NewStyle()
	def, ok := c.Styles[name]
	if !ok {
		return style
	}
	if def.Foreground != "" {
		style = style.Foreground(c.color(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(c.color(def.Background))
	}
	return style.Bold(def.Bold).Italic(def.Italic).Underline(def.Underline)
}

func (c *StylesConfig) color(ref string) lipgloss.TerminalColor {
	if def, ok := c.Colors[ref]; ok {
		return lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	return lipgloss.Color(ref)
}
