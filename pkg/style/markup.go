package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles.
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
	plain    bool
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   map[string]lipgloss.Style{},
		patterns: map[string]*regexp.Regexp{},
	}
	for tag, s := range map[string]lipgloss.Style{
		"title":    TitleStyle,
		"subtitle": SubtitleStyle,
		"success":  SuccessStyle,
		"error":    ErrorStyle,
		"warning":  WarningStyle,
		"info":     InfoStyle,
		"code":     CodeStyle,
		"path":     PathStyle,
		"muted":    MutedStyle,
		"bold":     lipgloss.NewStyle().Bold(true),
		"italic":   lipgloss.NewStyle().Italic(true),

		"kind":   KindStyle,
		"tag":    TagStyle,
		"amount": AmountStyle,
		"owner":  OwnerStyle,
		"name":   NameStyle,
	} {
		p.AddStyle(tag, s)
	}
	return p
}

// NewPlainParser returns a parser that strips markup without styling.
func NewPlainParser() *MarkupParser {
	p := NewMarkupParser()
	p.plain = true
	return p
}

// AddStyle allows adding custom styles
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`)
}

// Render processes markup text and returns styled output. Nested tags are
// resolved innermost first.
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for tag, pattern := range p.patterns {
			style := p.styles[tag]
			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				content := pattern.FindStringSubmatch(match)[1]
				if p.plain {
					return content
				}
				return style.Render(content)
			})
		}
		if result == before {
			return result
		}
	}
}

// RenderTemplate substitutes {{key}} placeholders, then renders markup.
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Render(result)
}

var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// RenderTemplate is a convenience function using the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}
