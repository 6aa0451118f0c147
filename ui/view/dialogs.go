package view

import (
	"log/slog"
	"strings"

	"github.com/soocke/emotion-lens/domain/still"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dialogs shows Tk message boxes and the image file picker. Calls block the
// event loop until dismissed.
type Dialogs struct {
	logger *slog.Logger
}

func NewDialogs(logger *slog.Logger) *Dialogs { return &Dialogs{logger: logger} }

func (d *Dialogs) Error(title, msg string)   { d.show("error", title, msg) }
func (d *Dialogs) Warning(title, msg string) { d.show("warning", title, msg) }
func (d *Dialogs) Info(title, msg string)    { d.show("info", title, msg) }

func (d *Dialogs) show(icon, title, msg string) {
	if d.logger != nil {
		d.logger.Debug("dialog", "icon", icon, "title", title)
	}
	MessageBox(Icon(icon), Title(title), Msg(msg))
}

// OpenImage asks for a PNG or JPEG file.
func (d *Dialogs) OpenImage() (string, bool) {
	files := GetOpenFile(
		Title("Select an image"),
		Filetypes([]FileType{
			{TypeName: "Image files", Extensions: still.Extensions},
			{TypeName: "All files", Extensions: []string{"*"}},
		}),
	)
	if len(files) == 0 {
		return "", false
	}
	path := strings.TrimSpace(strings.Join(files, " "))
	return path, path != ""
}
