package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cardbox/internal/adapters/tui/styles"
	"cardbox/internal/domain"
	"cardbox/internal/ports"
)

// SettingsKeyMap defines key bindings for the settings view
type SettingsKeyMap struct {
	AutoSave  key.Binding
	Random    key.Binding
	FullWidth key.Binding
	Bigger    key.Binding
	Smaller   key.Binding
	Back      key.Binding
}

var SettingsKeys = SettingsKeyMap{
	AutoSave: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle auto-save"),
	),
	Random: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "toggle random order"),
	),
	FullWidth: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "toggle full width"),
	),
	Bigger: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "batch size up"),
	),
	Smaller: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "batch size down"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// SettingsModel edits the stored settings in place; every change persists
// immediately through the store.
type SettingsModel struct {
	ViewState
	store ports.CardStore
}

// NewSettingsModel creates a new settings view model
func NewSettingsModel(store ports.CardStore) *SettingsModel {
	return &SettingsModel{store: store}
}

// Init initializes the settings view
func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings view
func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SettingsKeys.Back):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, SettingsKeys.AutoSave):
			return m, m.apply(func(s *domain.Settings) { s.AutoSave = !s.AutoSave })
		case key.Matches(msg, SettingsKeys.Random):
			return m, m.apply(func(s *domain.Settings) { s.RandomMode = !s.RandomMode })
		case key.Matches(msg, SettingsKeys.FullWidth):
			return m, m.apply(func(s *domain.Settings) { s.MobileFullWidth = !s.MobileFullWidth })
		case key.Matches(msg, SettingsKeys.Bigger):
			return m, m.apply(func(s *domain.Settings) { s.ReviewBatchSize++ })
		case key.Matches(msg, SettingsKeys.Smaller):
			return m, m.apply(func(s *domain.Settings) { s.ReviewBatchSize-- })
		}
	}

	return m, nil
}

func (m *SettingsModel) apply(change func(*domain.Settings)) tea.Cmd {
	return func() tea.Msg {
		settings := m.store.Settings()
		change(&settings)
		if err := m.store.UpdateSettings(settings); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// View renders the settings view
func (m *SettingsModel) View() string {
	s := m.store.Settings()

	v := NewViewBuilder()
	v.Title("Settings")
	v.Line(settingLine("a", "Auto-save review decisions", onOff(s.AutoSave)))
	v.Line(settingLine("r", "Random review order", onOff(s.RandomMode)))
	v.Line(settingLine("w", "Full-width review card", onOff(s.MobileFullWidth)))
	v.Line(settingLine("+/-", "Review batch size", fmt.Sprintf("%d", s.ReviewBatchSize)))
	v.BlankLine()
	v.Muted(fmt.Sprintf("Batch size is clamped to %d..%d.", domain.MinReviewBatchSize, domain.MaxReviewBatchSize))
	v.BlankLine()
	v.Message(m.Message, m.MessageErr)
	v.Help(SettingsKeys.Back)
	return v.String()
}

func settingLine(keyLabel, name, value string) string {
	return fmt.Sprintf("  %s %s %s",
		styles.HelpKey.Render(fmt.Sprintf("%-4s", keyLabel)),
		fmt.Sprintf("%-32s", name),
		styles.Success.Render(value),
	)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
