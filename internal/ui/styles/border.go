// Package styles contains Lip Gloss style definitions.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rounded frame pieces for the abacus and settings panels.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
	borderMiddleLeft  = "├"
	borderMiddleRight = "┤"
)

// RenderWithTitleBorder frames panel content with titles woven into the
// top edge, e.g. `╭─ Settings ──── Soroban ─╮`. Either title may be ""
// to omit it; the abacus frame passes both empty. titleColor styles the
// title text; the frame uses focusedBorderColor when focused is true
// and BorderDefaultColor otherwise, which is how the app marks the
// panel that owns the keyboard.
func RenderWithTitleBorder(content, leftTitle, rightTitle string, width, height int, focused bool, titleColor, focusedBorderColor lipgloss.TerminalColor) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = focusedBorderColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	// Interior width, i.e. width minus the two vertical edges.
	innerWidth := max(width-2, 1)

	topBorder := buildDualTitleTopBorder(leftTitle, rightTitle, innerWidth, borderStyle, titleStyle)
	bottomBorder := borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight)

	contentHeight := max(height-2, 1)

	// Lipgloss handles wrapping and truncation when constraining the
	// content block.
	contentStyle := lipgloss.NewStyle().Width(innerWidth).Height(contentHeight)
	constrainedContent := contentStyle.Render(content)

	contentLines := strings.Split(constrainedContent, "\n")
	paddedLines := make([]string, contentHeight)

	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}

		// Pad to innerWidth so the right edge stays a straight line.
		lineWidth := lipgloss.Width(line)
		if lineWidth < innerWidth {
			line = line + strings.Repeat(" ", innerWidth-lineWidth)
		}

		paddedLines[i] = borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical)
	}

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")
	result.WriteString(strings.Join(paddedLines, "\n"))
	result.WriteString("\n")
	result.WriteString(bottomBorder)

	return result.String()
}

// buildTopBorder draws a top edge with a single left title, shaped
// `╭─ Settings ──────╮`. Titles that cannot fit are truncated with an
// ellipsis, and a frame too narrow for any title renders plain.
func buildTopBorder(title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if innerWidth < 1 {
		return borderStyle.Render(borderTopLeft + borderTopRight)
	}

	if title == "" {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	// The title needs "─ " before and " ─" after, so anything narrower
	// than 4 interior cells renders plain.
	titlePartMinWidth := 4

	if innerWidth < titlePartMinWidth {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	availableForTitle := innerWidth - 4

	displayTitle := title
	if lipgloss.Width(displayTitle) > availableForTitle {
		displayTitle = TruncateString(displayTitle, availableForTitle)
	}

	// Interior layout: "─ " (2) + title + " " (1) + trailing dashes.
	titleTextWidth := lipgloss.Width(displayTitle)
	remainingWidth := max(innerWidth-3-titleTextWidth, 0)

	return borderStyle.Render(borderTopLeft+borderHorizontal+" ") +
		titleStyle.Render(displayTitle) +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, remainingWidth)+borderTopRight)
}

// buildDualTitleTopBorder draws a top edge with titles at both ends,
// shaped `╭─ Settings ───────── Soroban ─╮`. When the frame is too
// narrow for both it keeps the left title and drops the right.
func buildDualTitleTopBorder(leftTitle, rightTitle string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if innerWidth < 1 {
		return borderStyle.Render(borderTopLeft + borderTopRight)
	}

	if leftTitle == "" && rightTitle == "" {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	leftTitleWidth := lipgloss.Width(leftTitle)
	rightTitleWidth := lipgloss.Width(rightTitle)

	// Tightest interior with both titles:
	// "─ " + left + " " + one middle dash + " " + right + " ─".
	minRequired := 2 + leftTitleWidth + 1 + 1 + 1 + rightTitleWidth + 2
	if rightTitle == "" {
		minRequired = 2 + leftTitleWidth + 1 + 1
	}
	if leftTitle == "" {
		minRequired = 1 + 1 + rightTitleWidth + 2
	}

	if innerWidth < minRequired {
		if leftTitle != "" {
			return buildTopBorder(leftTitle, innerWidth, borderStyle, titleStyle)
		}
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	// Whatever the titles and their spacers leave over becomes the run
	// of dashes between them.
	var middleDashes int
	if leftTitle != "" && rightTitle != "" {
		middleDashes = innerWidth - leftTitleWidth - rightTitleWidth - 6
	} else if leftTitle != "" {
		middleDashes = innerWidth - leftTitleWidth - 3
	} else {
		middleDashes = innerWidth - rightTitleWidth - 3
	}
	middleDashes = max(middleDashes, 1)

	var result strings.Builder
	result.WriteString(borderStyle.Render(borderTopLeft))

	if leftTitle != "" {
		result.WriteString(borderStyle.Render(borderHorizontal + " "))
		result.WriteString(titleStyle.Render(leftTitle))
		result.WriteString(borderStyle.Render(" "))
	}

	result.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, middleDashes)))

	if rightTitle != "" {
		result.WriteString(borderStyle.Render(" "))
		result.WriteString(titleStyle.Render(rightTitle))
		result.WriteString(borderStyle.Render(" " + borderHorizontal))
	}

	result.WriteString(borderStyle.Render(borderTopRight))

	return result.String()
}

// TruncateString shortens s to at most maxWidth display cells, ending
// in "..." when anything was cut. Preset names are the usual caller;
// they are user supplied and can be arbitrarily long.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	// Walk runes so wide glyphs in preset names count by display width.
	result := ""
	for _, r := range s {
		test := result + string(r)
		if lipgloss.Width(test) > maxWidth-3 {
			break
		}
		result = test
	}

	return result + "..."
}
