package views

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cardbox/internal/adapters/tui/styles"
	"cardbox/internal/domain"
	"cardbox/internal/ports"
)

// BrowserKeyMap defines key bindings for the card browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Review   key.Binding
	Capture  key.Binding
	Dirs     key.Binding
	Settings key.Binding
	Delete   key.Binding
	Reset    key.Binding
	Yank     key.Binding
	Edit     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next page"),
	),
	Review: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "review"),
	),
	Capture: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new card"),
	),
	Dirs: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "directories"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Reset: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset reviews"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy text"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "open source"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel lists every captured card with stats and paging.
type BrowserModel struct {
	ViewState
	store     ports.CardStore
	cards     []domain.Card
	paginator *Paginator
	confirm   ConfirmationModel
	// pendingReset distinguishes the reset prompt from the delete prompt
	pendingReset bool
}

// NewBrowserModel creates a new card browser model
func NewBrowserModel(store ports.CardStore) *BrowserModel {
	return &BrowserModel{
		store:     store,
		paginator: NewPaginator(20),
		confirm:   NewConfirmationModel(),
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.Reload
}

// Reload refetches the card list from the store
func (m *BrowserModel) Reload() tea.Msg {
	return cardsLoadedMsg{cards: m.store.All()}
}

type cardsLoadedMsg struct {
	cards []domain.Card
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case cardsLoadedMsg:
		m.cards = msg.cards
		m.paginator.SetTotal(len(msg.cards))
		return m, nil

	case StoreChangedMsg:
		return m, m.Reload

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.confirm.HandleKeyMsg(msg, m.confirmAction, m.cancelAction); handled {
		return m, cmd
	}

	switch {
	case key.Matches(msg, BrowserKeys.Up):
		m.paginator.CursorUp()
	case key.Matches(msg, BrowserKeys.Down):
		m.paginator.CursorDown()
	case key.Matches(msg, BrowserKeys.PrevPage):
		m.paginator.PrevPage()
	case key.Matches(msg, BrowserKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(msg, BrowserKeys.Review):
		return m, func() tea.Msg { return SwitchToReviewMsg{} }
	case key.Matches(msg, BrowserKeys.Capture):
		return m, func() tea.Msg { return SwitchToCaptureMsg{} }
	case key.Matches(msg, BrowserKeys.Dirs):
		return m, func() tea.Msg { return SwitchToDirectoriesMsg{} }
	case key.Matches(msg, BrowserKeys.Settings):
		return m, func() tea.Msg { return SwitchToSettingsMsg{} }
	case key.Matches(msg, BrowserKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, BrowserKeys.Delete):
		if card, ok := m.selected(); ok {
			m.pendingReset = false
			m.confirm.Ask(fmt.Sprintf("Delete card %s?", card.ID))
		}
	case key.Matches(msg, BrowserKeys.Reset):
		m.pendingReset = true
		m.confirm.Ask("Reset all kept cards to unreviewed?")

	case key.Matches(msg, BrowserKeys.Yank):
		if card, ok := m.selected(); ok {
			if err := clipboard.WriteAll(card.Text); err != nil {
				m.SetMessage(err.Error(), true)
			} else {
				m.SetMessage("Card text copied", false)
			}
		}

	case key.Matches(msg, BrowserKeys.Edit):
		if card, ok := m.selected(); ok {
			if card.Source == domain.UnknownSource {
				m.SetMessage("This card has no source note", true)
			} else {
				source := card.Source
				return m, func() tea.Msg { return OpenEditorMsg{Path: source} }
			}
		}

	case key.Matches(msg, BrowserKeys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *BrowserModel) confirmAction() tea.Msg {
	if m.pendingReset {
		if err := m.store.ResetReviewedKept(); err != nil {
			return errMsg{err}
		}
		return successMsg{message: "All kept cards returned to review"}
	}

	card, ok := m.selected()
	if !ok {
		return nil
	}
	if err := m.store.DeleteCard(card.ID); err != nil {
		return errMsg{err}
	}
	m.paginator.RemoveAtCursor()
	return successMsg{message: fmt.Sprintf("Deleted card %s", card.ID)}
}

func (m *BrowserModel) cancelAction() tea.Msg {
	return nil
}

func (m *BrowserModel) selected() (domain.Card, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.cards) {
		return domain.Card{}, false
	}
	return m.cards[i], true
}

// View renders the browser
func (m *BrowserModel) View() string {
	v := NewViewBuilder()
	v.Title("Cardbox")

	total, reviewed, pending := m.store.Stats()
	v.Muted(fmt.Sprintf("%d cards · %d reviewed · %d pending", total, reviewed, pending))
	v.BlankLine()

	if len(m.cards) == 0 {
		v.Muted("No cards yet. Press n to capture one.")
	} else {
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			c := m.cards[i]
			line := CardLine(c.Text, c.Source, c.Reviewed, m.Width-8)
			if i == m.paginator.Cursor() {
				line = styles.CardSelected.Render("> ") + line
			} else {
				line = "  " + line
			}
			v.Line(line)
		}
		v.BlankLine()
		v.Muted(fmt.Sprintf("Page %d of %d", m.paginator.CurrentPage(), m.paginator.TotalPages()))
	}

	v.BlankLine()
	if m.confirm.Active() {
		v.Line(RenderConfirmPrompt(m.confirm.Question))
	} else {
		v.Message(m.Message, m.MessageErr)
		v.Help(BrowserKeys.Review, BrowserKeys.Capture, BrowserKeys.Dirs,
			BrowserKeys.Delete, BrowserKeys.Settings, BrowserKeys.Help, BrowserKeys.Quit)
	}

	return v.String()
}
