package views

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cardbox/internal/adapters/tui/styles"
	"cardbox/internal/application/commands"
	"cardbox/internal/ports"
)

// CaptureKeyMap defines key bindings for the capture view
type CaptureKeyMap struct {
	Submit key.Binding
	Paste  key.Binding
	Tab    key.Binding
	Cancel key.Binding
}

var CaptureKeys = CaptureKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "create card"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "paste clipboard"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// CaptureModel is the form for capturing a new card by hand or from the
// system clipboard.
type CaptureModel struct {
	ViewState
	store        ports.CardStore
	textInput    textarea.Model
	sourceInput  textinput.Model
	focusedField int
}

// NewCaptureModel creates a new capture view model
func NewCaptureModel(store ports.CardStore) *CaptureModel {
	text := textarea.New()
	text.Placeholder = "Card text"
	text.SetHeight(6)

	source := textinput.New()
	source.Placeholder = "notes/go/slices.md (optional)"
	source.CharLimit = 200

	return &CaptureModel{
		store:       store,
		textInput:   text,
		sourceInput: source,
	}
}

// Reset clears the form for a fresh capture
func (m *CaptureModel) Reset() {
	m.textInput.SetValue("")
	m.sourceInput.SetValue("")
	m.focusedField = 0
	m.textInput.Focus()
	m.sourceInput.Blur()
	m.ClearMessage()
}

// Init initializes the capture view
func (m *CaptureModel) Init() tea.Cmd {
	return textarea.Blink
}

// CaptureDoneMsg reports a successful capture back to the app
type CaptureDoneMsg struct {
	Message string
}

// Update handles messages for the capture view
func (m *CaptureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if msg.Width > 8 {
			m.textInput.SetWidth(msg.Width - 8)
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, CaptureKeys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, CaptureKeys.Submit):
			return m, m.submit

		case key.Matches(msg, CaptureKeys.Paste):
			content, err := clipboard.ReadAll()
			if err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			m.textInput.SetValue(content)
			return m, nil

		case key.Matches(msg, CaptureKeys.Tab):
			m.toggleFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focusedField == 0 {
		m.textInput, cmd = m.textInput.Update(msg)
	} else {
		m.sourceInput, cmd = m.sourceInput.Update(msg)
	}
	return m, cmd
}

func (m *CaptureModel) toggleFocus() {
	if m.focusedField == 0 {
		m.focusedField = 1
		m.textInput.Blur()
		m.sourceInput.Focus()
	} else {
		m.focusedField = 0
		m.sourceInput.Blur()
		m.textInput.Focus()
	}
}

func (m *CaptureModel) submit() tea.Msg {
	cmd := commands.NewCreateCardCommand(m.store, m.textInput.Value(), m.sourceInput.Value())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return CaptureDoneMsg{Message: result.Message}
}

// View renders the capture form
func (m *CaptureModel) View() string {
	v := NewViewBuilder()
	v.Title("Capture")

	v.Line(styles.InputLabel.Render("Text"))
	v.Line(m.fieldStyle(0).Render(m.textInput.View()))
	v.BlankLine()
	v.Line(styles.InputLabel.Render("Source"))
	v.Line(m.fieldStyle(1).Render(m.sourceInput.View()))
	v.BlankLine()

	v.Message(m.Message, m.MessageErr)
	v.Help(CaptureKeys.Submit, CaptureKeys.Paste, CaptureKeys.Tab, CaptureKeys.Cancel)
	return v.String()
}

func (m *CaptureModel) fieldStyle(field int) lipgloss.Style {
	if m.focusedField == field {
		return styles.InputFocused
	}
	return styles.InputField
}
