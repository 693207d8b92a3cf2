package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"cardbox/internal/adapters/editor"
	"cardbox/internal/adapters/tui/views"
	"cardbox/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewReview
	ViewCapture
	ViewDirectories
	ViewSettings
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store  ports.CardStore
	editor *editor.Opener

	state       ViewState
	browser     *views.BrowserModel
	review      *views.ReviewModel
	capture     *views.CaptureModel
	directories *views.DirectoriesModel
	settings    *views.SettingsModel
	help        *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.CardStore, ed *editor.Opener) *App {
	return &App{
		store:       store,
		editor:      ed,
		state:       ViewBrowser,
		browser:     views.NewBrowserModel(store),
		review:      views.NewReviewModel(store),
		capture:     views.NewCaptureModel(store),
		directories: views.NewDirectoriesModel(store),
		settings:    views.NewSettingsModel(store),
		help:        views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.review.SetSize(msg.Width, msg.Height)
		a.directories.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		_, cmd := a.capture.Update(msg)
		return a, cmd

	// View switching messages
	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload

	case views.SwitchToReviewMsg:
		a.state = ViewReview
		a.review.SetSelection(msg.SelectionSource)
		return a, a.review.Init()

	case views.SwitchToCaptureMsg:
		a.state = ViewCapture
		a.capture.Reset()
		return a, a.capture.Init()

	case views.SwitchToDirectoriesMsg:
		a.state = ViewDirectories
		return a, a.directories.Init()

	case views.SwitchToSettingsMsg:
		a.state = ViewSettings
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.CaptureDoneMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	// Store notifications fan out to whichever view is active.
	case views.StoreChangedMsg:
		var cmd tea.Cmd
		switch a.state {
		case ViewBrowser:
			_, cmd = a.browser.Update(msg)
		case ViewDirectories:
			_, cmd = a.directories.Update(msg)
		}
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewReview:
		_, cmd = a.review.Update(msg)
	case ViewCapture:
		_, cmd = a.capture.Update(msg)
	case ViewDirectories:
		_, cmd = a.directories.Update(msg)
	case ViewSettings:
		_, cmd = a.settings.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewReview:
		return a.review.View()
	case ViewCapture:
		return a.capture.View()
	case ViewDirectories:
		return a.directories.View()
	case ViewSettings:
		return a.settings.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
