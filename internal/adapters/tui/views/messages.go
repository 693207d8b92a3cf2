package views

import "cardbox/internal/ports"

// SwitchToBrowserMsg switches to the card browser view
type SwitchToBrowserMsg struct{}

// SwitchToReviewMsg starts or resumes a review session. Selection narrows
// the deck to a subset; nil reviews the whole unreviewed pool.
type SwitchToReviewMsg struct {
	SelectionSource string // review only cards from this source when set
}

// SwitchToCaptureMsg switches to the capture view
type SwitchToCaptureMsg struct{}

// SwitchToDirectoriesMsg switches to the directory browser
type SwitchToDirectoriesMsg struct{}

// SwitchToSettingsMsg switches to the settings view
type SwitchToSettingsMsg struct{}

// SwitchToHelpMsg switches to the help view
type SwitchToHelpMsg struct{}

// OpenEditorMsg asks the app to open a source note in the external editor
type OpenEditorMsg struct {
	Path string
}

// StoreChangedMsg is delivered when the card store notifies a change, so
// the active view reloads its data.
type StoreChangedMsg struct {
	Event ports.Event
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}
