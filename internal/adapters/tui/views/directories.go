package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cardbox/internal/adapters/tui/styles"
	"cardbox/internal/application/commands"
	"cardbox/internal/domain"
	"cardbox/internal/ports"
)

// DirectoriesKeyMap defines key bindings for the directory browser
type DirectoriesKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Back   key.Binding
	New    key.Binding
	Delete key.Binding
	Move   key.Binding
	Review key.Binding
	Quit   key.Binding
}

var DirectoriesKeys = DirectoriesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "h"),
		key.WithHelp("esc", "back"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new directory"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete directory"),
	),
	Move: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "move source"),
	),
	Review: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "review source"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// dirLevel tracks how deep the drill-down is
type dirLevel int

const (
	levelDirectories dirLevel = iota
	levelSources
	levelCards
)

// inputMode tracks what the inline text input is collecting
type inputMode int

const (
	inputNone inputMode = iota
	inputNewDirectory
	inputMoveTarget
)

// DirectoriesModel browses directory labels, the sources grouped under
// them, and the cards per source.
type DirectoriesModel struct {
	ViewState
	store ports.CardStore

	level     dirLevel
	dirs      []string
	sources   []string
	cards     []domain.Card
	cursor    int
	directory string // selected at levelDirectories
	source    string // selected at levelSources

	confirm ConfirmationModel
	input   textinput.Model
	mode    inputMode
}

// NewDirectoriesModel creates a new directory browser model
func NewDirectoriesModel(store ports.CardStore) *DirectoriesModel {
	input := textinput.New()
	input.CharLimit = 100

	return &DirectoriesModel{
		store:   store,
		confirm: NewConfirmationModel(),
		input:   input,
	}
}

// Init initializes the directory browser
func (m *DirectoriesModel) Init() tea.Cmd {
	m.level = levelDirectories
	m.cursor = 0
	return m.Reload
}

// Reload refetches the current level's rows from the store
func (m *DirectoriesModel) Reload() tea.Msg {
	switch m.level {
	case levelSources:
		return dirDataMsg{sources: m.store.SourcesInDirectory(m.directory)}
	case levelCards:
		return dirDataMsg{cards: m.store.CardsFromSource(m.source), atCards: true}
	default:
		return dirDataMsg{dirs: m.store.Directories(), atDirs: true}
	}
}

type dirDataMsg struct {
	dirs    []string
	sources []string
	cards   []domain.Card
	atDirs  bool
	atCards bool
}

// Update handles messages for the directory browser
func (m *DirectoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case dirDataMsg:
		switch {
		case msg.atDirs:
			m.dirs = msg.dirs
		case msg.atCards:
			m.cards = msg.cards
		default:
			m.sources = msg.sources
		}
		if m.cursor >= m.rowCount() && m.cursor > 0 {
			m.cursor = m.rowCount() - 1
		}
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

func (m *DirectoriesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != inputNone {
		return m.handleInputKey(msg)
	}
	if handled, cmd := m.confirm.HandleKeyMsg(msg, m.deleteSelectedDirectory, func() tea.Msg { return nil }); handled {
		return m, cmd
	}

	switch {
	case key.Matches(msg, DirectoriesKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, DirectoriesKeys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, DirectoriesKeys.Enter):
		return m, m.descend()

	case key.Matches(msg, DirectoriesKeys.Back):
		return m, m.ascend()

	case key.Matches(msg, DirectoriesKeys.New):
		if m.level == levelDirectories {
			m.mode = inputNewDirectory
			m.input.Placeholder = "directory name"
			m.input.SetValue("")
			m.input.Focus()
		}

	case key.Matches(msg, DirectoriesKeys.Delete):
		if m.level == levelDirectories {
			if dir, ok := m.selectedDir(); ok {
				if dir == domain.RootDirectory {
					m.SetMessage("The inbox directory cannot be deleted", true)
				} else {
					m.confirm.Ask(fmt.Sprintf("Delete directory %q? Its cards move to %s.", dir, domain.RootDirectory))
				}
			}
		}

	case key.Matches(msg, DirectoriesKeys.Move):
		if m.level == levelSources {
			if _, ok := m.selectedSource(); ok {
				m.mode = inputMoveTarget
				m.input.Placeholder = "destination directory"
				m.input.SetValue("")
				m.input.Focus()
			}
		}

	case key.Matches(msg, DirectoriesKeys.Review):
		if m.level == levelSources {
			if src, ok := m.selectedSource(); ok {
				return m, func() tea.Msg { return SwitchToReviewMsg{SelectionSource: src} }
			}
		}

	case key.Matches(msg, DirectoriesKeys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *DirectoriesModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.input.Blur()
		return m, nil
	case "enter":
		mode := m.mode
		value := m.input.Value()
		m.mode = inputNone
		m.input.Blur()
		if mode == inputNewDirectory {
			return m, m.createDirectory(value)
		}
		return m, m.moveSelectedSource(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *DirectoriesModel) descend() tea.Cmd {
	switch m.level {
	case levelDirectories:
		dir, ok := m.selectedDir()
		if !ok {
			return nil
		}
		m.directory = dir
		m.level = levelSources
		m.cursor = 0
	case levelSources:
		src, ok := m.selectedSource()
		if !ok {
			return nil
		}
		m.source = src
		m.level = levelCards
		m.cursor = 0
	default:
		return nil
	}
	return m.Reload
}

func (m *DirectoriesModel) ascend() tea.Cmd {
	switch m.level {
	case levelCards:
		m.level = levelSources
		m.cursor = 0
		return m.Reload
	case levelSources:
		m.level = levelDirectories
		m.cursor = 0
		return m.Reload
	default:
		return func() tea.Msg { return SwitchToBrowserMsg{} }
	}
}

func (m *DirectoriesModel) createDirectory(name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.CreateDirectory(name); err != nil {
			return errMsg{err}
		}
		return successMsg{message: fmt.Sprintf("Created directory %q", name)}
	}
}

func (m *DirectoriesModel) deleteSelectedDirectory() tea.Msg {
	dir, ok := m.selectedDir()
	if !ok {
		return nil
	}
	if err := m.store.DeleteDirectory(dir); err != nil {
		return errMsg{err}
	}
	return successMsg{message: fmt.Sprintf("Deleted directory %q", dir)}
}

func (m *DirectoriesModel) moveSelectedSource(directory string) tea.Cmd {
	src, ok := m.selectedSource()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		cmd := commands.NewMoveSourceCommand(m.store, src, directory)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{message: result.Message}
	}
}

func (m *DirectoriesModel) rowCount() int {
	switch m.level {
	case levelSources:
		return len(m.sources)
	case levelCards:
		return len(m.cards)
	default:
		return len(m.dirs)
	}
}

func (m *DirectoriesModel) selectedDir() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.dirs) {
		return "", false
	}
	return m.dirs[m.cursor], true
}

func (m *DirectoriesModel) selectedSource() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.sources) {
		return "", false
	}
	return m.sources[m.cursor], true
}

// View renders the directory browser
func (m *DirectoriesModel) View() string {
	v := NewViewBuilder()

	switch m.level {
	case levelSources:
		v.Title("Directory: " + m.directory)
		m.renderSources(v)
	case levelCards:
		v.Title("Source: " + m.source)
		m.renderCards(v)
	default:
		v.Title("Directories")
		m.renderDirs(v)
	}

	v.BlankLine()
	switch {
	case m.mode != inputNone:
		v.Line(styles.InputFocused.Render(m.input.View()))
	case m.confirm.Active():
		v.Line(RenderConfirmPrompt(m.confirm.Question))
	default:
		v.Message(m.Message, m.MessageErr)
		switch m.level {
		case levelSources:
			v.Help(DirectoriesKeys.Enter, DirectoriesKeys.Move, DirectoriesKeys.Review, DirectoriesKeys.Back)
		case levelCards:
			v.Help(DirectoriesKeys.Back)
		default:
			v.Help(DirectoriesKeys.Enter, DirectoriesKeys.New, DirectoriesKeys.Delete, DirectoriesKeys.Back)
		}
	}

	return v.String()
}

func (m *DirectoriesModel) renderDirs(v *ViewBuilder) {
	if len(m.dirs) == 0 {
		v.Muted("No directories.")
		return
	}
	for i, dir := range m.dirs {
		style := styles.DirName
		if dir == domain.RootDirectory {
			style = styles.DirRoot
		}
		count := len(m.store.CardsInDirectory(dir))
		line := fmt.Sprintf("%s %s", style.Render(dir), styles.MutedText.Render(fmt.Sprintf("(%d cards)", count)))
		v.Line(m.cursorPrefix(i) + line)
	}
}

func (m *DirectoriesModel) renderSources(v *ViewBuilder) {
	if len(m.sources) == 0 {
		v.Muted("No sources in this directory.")
		return
	}
	for i, src := range m.sources {
		count := len(m.store.CardsFromSource(src))
		line := fmt.Sprintf("%s %s", src, styles.MutedText.Render(fmt.Sprintf("(%d cards)", count)))
		v.Line(m.cursorPrefix(i) + line)
	}
}

func (m *DirectoriesModel) renderCards(v *ViewBuilder) {
	if len(m.cards) == 0 {
		v.Muted("No cards from this source.")
		return
	}
	for i, c := range m.cards {
		v.Line(m.cursorPrefix(i) + CardLine(c.Text, c.Source, c.Reviewed, m.Width-8))
	}
}

func (m *DirectoriesModel) cursorPrefix(i int) string {
	if i == m.cursor {
		return styles.CardSelected.Render("> ")
	}
	return "  "
}
