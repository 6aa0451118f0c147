package presenter

// Dialogs shows blocking modal messages and file pickers.
type Dialogs interface {
	Error(title, msg string)
	Warning(title, msg string)
	Info(title, msg string)
	// OpenImage asks for a PNG/JPEG file; ok is false when cancelled.
	OpenImage() (path string, ok bool)
}

// StatusSink receives short status lines for the status bar.
type StatusSink interface {
	SetStatus(string)
}
