package style

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// SlotStatus is one line of an inventory listing.
type SlotStatus struct {
	Index    int
	Resource *types.Resource
	Status   Status
	// Removed is how many items left the slot, for StatusTaken.
	Removed int
}

// Renderer defines the interface for rendering command output
type Renderer interface {
	RenderResource(r *types.Resource) string
	RenderSlots(title string, slots []SlotStatus) string
	RenderError(err error) string
}

// NewRenderer returns the renderer for a resolved format.
func NewRenderer(f Format) Renderer {
	if f == FormatTerminal {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// ResourceMarkup describes a resource in markup, leaving out attributes
// its kind does not carry.
func ResourceMarkup(r *types.Resource) string {
	if r.IsEmpty() {
		return "[muted]empty[/muted]"
	}

	parts := []string{
		fmt.Sprintf("[kind]%s[/kind] x[amount]%d[/amount]", r.Kind, r.Amount),
	}
	if r.HasDisplayName() {
		parts = append(parts, fmt.Sprintf("[name]%q[/name]", r.DisplayName))
	}
	if r.Kind.IsDurable() && r.Durability != 0 {
		parts = append(parts, fmt.Sprintf("durability %d", r.Durability))
	}
	if r.Unbreakable {
		parts = append(parts, "unbreakable")
	}
	if tags := tagMarkup(r.Tags); tags != "" {
		parts = append(parts, tags)
	}
	if tags := tagMarkup(r.StoredTagsView()); tags != "" {
		parts = append(parts, "stores "+tags)
	}
	if r.OwnerOrNil() != uuid.Nil {
		parts = append(parts, fmt.Sprintf("owner [owner]%s[/owner]", r.Owner))
	}
	if r.Kind.HasLocation() && r.Location != "" {
		parts = append(parts, "at "+r.Location)
	}
	if r.Kind.HasBodyColor() && r.BodyColor != "" {
		parts = append(parts, strings.ToLower(string(r.BodyColor)))
	}
	for _, line := range r.Lore {
		parts = append(parts, fmt.Sprintf("[muted]%q[/muted]", line))
	}
	return strings.Join(parts, " ")
}

func tagMarkup(tags types.Tags) string {
	entries := tags.Entries()
	if len(entries) == 0 {
		return ""
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fmt.Sprintf("[tag]%s %d[/tag]", e.Kind, e.Level)
	}
	return "{" + strings.Join(out, ", ") + "}"
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct {
	markup *MarkupParser
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{markup: NewMarkupParser()}
}

func (r *TerminalRenderer) RenderResource(res *types.Resource) string {
	return r.markup.Render(ResourceMarkup(res))
}

func (r *TerminalRenderer) RenderSlots(title string, slots []SlotStatus) string {
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render(title) + "\n")
	for _, s := range slots {
		label := StatusStyle(s.Status).Sprintf("%-5s", s.Status)
		line := fmt.Sprintf("%s %3d %s %s", StatusIndicator(s.Status), s.Index, label, r.RenderResource(s.Resource))
		if s.Status == StatusTaken {
			line += " " + AmountStyle.Render(fmt.Sprintf("-%d", s.Removed))
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		return fmt.Sprintf("%s %s", ErrorIndicator, ErrorStyle.Render(err.Error()))
	}
	return fmt.Sprintf("%s Error [%s]: %s", ErrorIndicator, ErrorStyle.Render(string(code)), err.Error())
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct {
	markup *MarkupParser
}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{markup: NewPlainParser()}
}

func (r *PlainRenderer) RenderResource(res *types.Resource) string {
	return r.markup.Render(ResourceMarkup(res))
}

func (r *PlainRenderer) RenderSlots(title string, slots []SlotStatus) string {
	var b strings.Builder
	b.WriteString(title + ":\n")
	for _, s := range slots {
		line := fmt.Sprintf("%3d %-5s %s", s.Index, s.Status, r.RenderResource(s.Resource))
		if s.Status == StatusTaken {
			line += fmt.Sprintf(" -%d", s.Removed)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		return "Error: " + err.Error()
	}
	return fmt.Sprintf("Error [%s]: %s", code, err.Error())
}
