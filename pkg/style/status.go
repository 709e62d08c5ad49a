package style

import (
	"github.com/pterm/pterm"
)

// Status is the outcome for one slot of an inventory listing.
type Status string

const (
	StatusMatch Status = "match" // Slot satisfies the expression
	StatusMiss  Status = "miss"  // Slot holds something else
	StatusTaken Status = "taken" // Items were removed from the slot
	StatusEmpty Status = "empty" // Nothing in the slot
)

// StatusStyle returns the pterm style used for a status label
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusMatch:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusTaken:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusMiss:
		return pterm.NewStyle(pterm.FgGray)
	default:
		return pterm.NewStyle(pterm.FgGray, pterm.Italic)
	}
}

// StatusIndicator returns the one-glyph marker for a status.
func StatusIndicator(status Status) string {
	switch status {
	case StatusMatch:
		return SuccessIndicator
	case StatusTaken:
		return WarningIndicator
	case StatusMiss:
		return InfoIndicator
	default:
		return EmptyIndicator
	}
}
