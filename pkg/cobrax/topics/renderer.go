package topics

import "strings"

// Renderer turns the raw content of a topic file into what the help command
// prints. format is the file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics untouched apart from trailing blank lines,
// which are collapsed into a single newline.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
