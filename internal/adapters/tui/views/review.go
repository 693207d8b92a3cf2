package views

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cardbox/internal/adapters/tui/styles"
	"cardbox/internal/application"
	"cardbox/internal/domain"
	"cardbox/internal/ports"
)

// ReviewKeyMap defines key bindings for the review session view
type ReviewKeyMap struct {
	Keep    key.Binding
	Discard key.Binding
	Clear   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var ReviewKeys = ReviewKeyMap{
	Keep: key.NewBinding(
		key.WithKeys("y", "enter", "right", " "),
		key.WithHelp("y/→/space", "keep"),
	),
	Discard: key.NewBinding(
		key.WithKeys("d", "x", "left"),
		key.WithHelp("d/←", "discard"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "end session"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ReviewModel drives a deck session: one card at a time, keep or discard.
// Leaving the view keeps the deck so the pass can resume later.
type ReviewModel struct {
	ViewState
	store ports.CardStore
	deck  *domain.Deck

	// session counters, reset when a fresh deck starts
	kept      int
	discarded int

	selectionSource string
}

// NewReviewModel creates a new review session model
func NewReviewModel(store ports.CardStore) *ReviewModel {
	return &ReviewModel{store: store}
}

// SetSelection narrows the next fresh deck to cards from one source.
// An empty source reviews the whole unreviewed pool.
func (m *ReviewModel) SetSelection(source string) {
	m.selectionSource = source
}

// Init starts or resumes the session
func (m *ReviewModel) Init() tea.Cmd {
	return m.start
}

func (m *ReviewModel) start() tea.Msg {
	var selection []domain.Card
	if m.selectionSource != "" {
		pool := m.store.CardsFromSource(m.selectionSource)
		for _, c := range pool {
			if !c.Reviewed {
				selection = append(selection, c)
			}
		}
	}

	deck, err := m.store.StartReview(selection)
	if err != nil {
		return errMsg{err}
	}
	return deckStartedMsg{deck: deck}
}

type deckStartedMsg struct {
	deck *domain.Deck
}

type decisionRecordedMsg struct {
	keep bool
}

// Update handles messages for the review session
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case deckStartedMsg:
		m.deck = msg.deck
		if msg.deck.Position() == 0 {
			m.kept = 0
			m.discarded = 0
		}
		m.ClearMessage()
		return m, nil

	case decisionRecordedMsg:
		if msg.keep {
			m.kept++
		} else {
			m.discarded++
		}
		m.deck = m.store.Deck()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *ReviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ReviewKeys.Keep):
		return m, m.decide(true)
	case key.Matches(msg, ReviewKeys.Discard):
		return m, m.decide(false)

	case key.Matches(msg, ReviewKeys.Clear):
		return m, func() tea.Msg {
			if err := m.store.ClearDeck(); err != nil {
				return errMsg{err}
			}
			return SwitchToBrowserMsg{}
		}

	case key.Matches(msg, ReviewKeys.Back):
		// Deck stays active; next review resumes where it left off.
		return m, func() tea.Msg { return SwitchToBrowserMsg{} }

	case key.Matches(msg, ReviewKeys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *ReviewModel) decide(keep bool) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.store.RecordDecision(keep); err != nil {
			if errors.Is(err, application.ErrNoDeck) {
				return nil
			}
			return errMsg{err}
		}
		return decisionRecordedMsg{keep: keep}
	}
}

// View renders the review session
func (m *ReviewModel) View() string {
	v := NewViewBuilder()
	v.Title("Review")

	switch {
	case m.deck == nil || m.deck.Len() == 0:
		v.Muted("Nothing to review.")
		v.BlankLine()
		v.Help(ReviewKeys.Back)

	case m.deck.Exhausted():
		v.Line(styles.Success.Render("Deck complete."))
		v.BlankLine()
		v.Line(fmt.Sprintf("Kept %d, discarded %d of %d cards.", m.kept, m.discarded, m.deck.Len()))
		v.BlankLine()
		v.Help(ReviewKeys.Clear, ReviewKeys.Back)

	default:
		card, _ := m.deck.Current()
		v.Line(styles.DeckProgress.Render(
			fmt.Sprintf("Card %d of %d", m.deck.Position()+1, m.deck.Len())))
		v.BlankLine()

		box := styles.DeckCard
		if m.store.Settings().MobileFullWidth && m.Width > 4 {
			box = box.Width(m.Width - 4)
		}
		v.Line(box.Render(card.Text))
		v.Muted(fmt.Sprintf("from %s", card.Source))
		v.BlankLine()
		v.Message(m.Message, m.MessageErr)
		v.Help(ReviewKeys.Keep, ReviewKeys.Discard, ReviewKeys.Clear, ReviewKeys.Back)
	}

	return v.String()
}
