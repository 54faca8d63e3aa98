// Package themefile loads theme documents from YAML and turns them into
// per-kind lookup schemes. A theme document is the project's "asset catalog":
// flat maps of dot-separated token names to concrete colors, glyphs,
// typography specs, and strings.
package themefile

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/scheme"
	"github.com/swatchkit/swatch/internal/style"
	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// File is the YAML shape of a theme document.
type File struct {
	Name        string                   `yaml:"name" validate:"required,token"`
	Description string                   `yaml:"description,omitempty"`
	Appearance  string                   `yaml:"appearance,omitempty" validate:"omitempty,oneof=light dark"`
	Colors      map[string]string        `yaml:"colors,omitempty" validate:"dive,keys,token,endkeys,hexcolor"`
	Glyphs      map[string]GlyphSpec     `yaml:"glyphs,omitempty" validate:"dive,keys,token,endkeys"`
	TextStyles  map[string]TextStyleSpec `yaml:"text_styles,omitempty" validate:"dive,keys,token,endkeys"`
	Strings     map[string]string        `yaml:"strings,omitempty" validate:"dive,keys,token,endkeys"`
}

// GlyphSpec declares the forms of one glyph token. At least one form must be
// present.
type GlyphSpec struct {
	Unicode string `yaml:"unicode,omitempty"`
	ASCII   string `yaml:"ascii,omitempty"`
}

// TextStyleSpec declares one typography token. Foreground and Background
// accept either a "#rrggbb" literal or a color token defined in (or
// ancestor-reachable from) the same document.
type TextStyleSpec struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
}

// Theme is a built theme: one ancestor-fallback table per item kind.
type Theme struct {
	Name        string
	Description string
	Appearance  string

	Colors     *scheme.Table[style.Color]
	Glyphs     *scheme.Table[style.Glyph]
	TextStyles *scheme.Table[lipgloss.Style]
	Strings    *scheme.Table[string]
}

// Apply installs all four of the theme's schemes as the defaults in cfg.
// Each store broadcasts its own change.
func (t *Theme) Apply(cfg *config.Config) {
	cfg.Colors.Set(t.Colors)
	cfg.Glyphs.Set(t.Glyphs)
	cfg.TextStyles.Set(t.TextStyles)
	cfg.Texts.Set(t.Strings)
}

// Load reads, validates, and builds a theme document from disk.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swatcherrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse validates and builds a theme document. path is used only for error
// reporting.
func Parse(data []byte, path string) (*Theme, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, swatcherrors.NewParseError(path, extractLine(err), err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file.Build()
}

// Validate checks the document against the schema rules.
func (f *File) Validate() error {
	if err := validatorInstance().Struct(f); err != nil {
		return translateValidation(err)
	}
	for name, g := range f.Glyphs {
		if g.Unicode == "" && g.ASCII == "" {
			return swatcherrors.NewValidationError(
				fmt.Sprintf("glyphs[%s]", name), "needs a unicode or ascii form", nil)
		}
	}
	for name, ts := range f.TextStyles {
		for _, ref := range []string{ts.Foreground, ts.Background} {
			if ref == "" {
				continue
			}
			if strings.HasPrefix(ref, "#") {
				if _, err := style.FromHex(ref); err != nil {
					return swatcherrors.NewValidationError(
						fmt.Sprintf("text_styles[%s]", name), err.Error(), err)
				}
				continue
			}
			if !f.colorReachable(ref) {
				return swatcherrors.NewValidationError(
					fmt.Sprintf("text_styles[%s]", name),
					fmt.Sprintf("references unknown color token %q", ref), nil)
			}
		}
	}
	return nil
}

// Build turns the validated document into per-kind schemes.
func (f *File) Build() (*Theme, error) {
	colors := make(map[string]style.Color, len(f.Colors))
	for name, hex := range f.Colors {
		c, err := style.FromHex(hex)
		if err != nil {
			return nil, swatcherrors.NewValidationError(
				fmt.Sprintf("colors[%s]", name), err.Error(), err)
		}
		colors[name] = c
	}
	colorTable := scheme.NewTable(colors)

	glyphs := make(map[string]style.Glyph, len(f.Glyphs))
	for name, g := range f.Glyphs {
		glyphs[name] = style.Glyph{Unicode: g.Unicode, ASCII: g.ASCII}
	}

	styles := make(map[string]lipgloss.Style, len(f.TextStyles))
	for name, spec := range f.TextStyles {
		s := lipgloss.NewStyle().
			Bold(spec.Bold).
			Italic(spec.Italic).
			Underline(spec.Underline).
			Faint(spec.Faint)
		if c, ok := f.resolveColorRef(spec.Foreground, colorTable); ok {
			s = s.Foreground(c.Lipgloss())
		}
		if c, ok := f.resolveColorRef(spec.Background, colorTable); ok {
			s = s.Background(c.Lipgloss())
		}
		styles[name] = s
	}

	strs := make(map[string]string, len(f.Strings))
	for name, v := range f.Strings {
		strs[name] = v
	}

	return &Theme{
		Name:        f.Name,
		Description: f.Description,
		Appearance:  f.Appearance,
		Colors:      colorTable,
		Glyphs:      scheme.NewTable(glyphs),
		TextStyles:  scheme.NewTable(styles),
		Strings:     scheme.NewTable(strs),
	}, nil
}

func (f *File) colorReachable(token string) bool {
	for {
		if _, ok := f.Colors[token]; ok {
			return true
		}
		idx := strings.LastIndexByte(token, '.')
		if idx < 0 {
			return false
		}
		token = token[:idx]
	}
}

func (f *File) resolveColorRef(ref string, colors *scheme.Table[style.Color]) (style.Color, bool) {
	if ref == "" {
		return style.Color{}, false
	}
	if strings.HasPrefix(ref, "#") {
		c, err := style.FromHex(ref)
		if err != nil {
			return style.Color{}, false
		}
		return c, true
	}
	return colors.Lookup(ref)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
