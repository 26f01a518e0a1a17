package nav

// Shortcut keys, named the way Bubble Tea names key presses.
const (
	KeyToggleSidebar = "ctrl+s"
	KeyClose         = "esc"
)
