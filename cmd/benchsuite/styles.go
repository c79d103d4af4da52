// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by every styled CLI surface. The benchmark report
// itself is never styled so its output stays byte-comparable across runs.
const (
	// ColorPrimary is purple - used for titles and table headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles, borders and placeholders.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for values and success marks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for keys and benchmark kinds.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for config keys and benchmark kinds.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// tableCellStyle pads every cell of the `list` table.
	tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	// tableHeaderStyle is the header row of the `list` table.
	tableHeaderStyle = TitleStyle.Padding(0, 1)
)
