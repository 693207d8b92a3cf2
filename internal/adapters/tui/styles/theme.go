package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Card status colors
	StatusPending  = lipgloss.Color("#60A5FA") // Blue
	StatusReviewed = Secondary
	StatusDeck     = lipgloss.Color("#EC4899") // Pink

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Card list styles
	CardPending = lipgloss.NewStyle().
			Foreground(StatusPending)

	CardReviewed = lipgloss.NewStyle().
			Foreground(Muted)

	CardSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	CardText = lipgloss.NewStyle()

	CardSource = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Review deck styles
	DeckCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(StatusDeck).
			Padding(1, 2)

	DeckProgress = lipgloss.NewStyle().
			Foreground(StatusDeck).
			Bold(true)

	// Directory styles
	DirName = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	DirRoot = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// StatusColor returns the color for a card's review status
func StatusColor(reviewed bool) lipgloss.Color {
	if reviewed {
		return StatusReviewed
	}
	return StatusPending
}
