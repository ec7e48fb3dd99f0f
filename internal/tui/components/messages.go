package components

// DocumentationLoadedMsg carries the result of the documentation lookup.
type DocumentationLoadedMsg struct {
	Text string
}

// HelpClosedMsg is emitted when the help overlay asks to be dismissed.
type HelpClosedMsg struct{}
