package view

import (
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/soocke/emotion-lens/config"
	"github.com/soocke/emotion-lens/ui/presenter"
	"github.com/soocke/emotion-lens/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the main window: face, voice and text sections on the
// left, preview and statistics on the right, configuration below.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	Session     SessionStats
	ConfigPanel ConfigPanel
	CapturePrev CapturePreview
	Selection   RegionPicker

	StatusLabel *TLabelWidget
	input       *TextWidget
	analyzeBtn  *TButtonWidget
}

var (
	_ presenter.CaptureView  = (*RootView)(nil)
	_ presenter.FrameView    = (*RootView)(nil)
	_ presenter.SessionView  = (*RootView)(nil)
	_ presenter.StatusSink   = (*RootView)(nil)
	_ presenter.TextSource   = (*RootView)(nil)
	_ presenter.TextBusyView = (*RootView)(nil)
)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// button describes one action button of a section.
type button struct {
	label  string
	action presenter.Action
	style  string
}

// Build constructs the layout. cmd maps an action to a widget command.
func (rv *RootView) Build(cmd func(presenter.Action) func()) {
	if rv == nil || cmd == nil {
		return
	}
	title := TLabel(Txt("Emotion Lens"), Style(theme.StyleSectionLabel))
	Grid(title, Row(0), Column(0), Columnspan(2), Sticky("w"), Padx("1m"), Pady("1m"))

	controls := Frame()
	Grid(controls, Row(1), Column(0), Sticky("nw"), Padx("1m"))
	right := Frame()
	Grid(right, Row(1), Column(1), Sticky("nw"), Padx("1m"))

	row := 0
	row = rv.section(controls, row, "Face Emotion Detection", cmd, []button{
		{"Start Camera", presenter.ActionStartCamera, theme.StylePrimaryButton},
		{"Stop Camera", presenter.ActionStopCamera, theme.StyleDangerButton},
		{"Upload Image", presenter.ActionUploadImage, ""},
		{"Screen Region", presenter.ActionSelection, ""},
	})
	row = rv.section(controls, row, "Voice Emotion Detection", cmd, []button{
		{"Record Voice", presenter.ActionRecordVoice, ""},
		{"Stop Recording", presenter.ActionStopRecording, ""},
		{"Analyze Voice", presenter.ActionAnalyzeVoice, ""},
	})

	head := TLabel(Txt("Text Emotion Detection"), Style(theme.StyleSectionLabel))
	Grid(head, In(controls), Row(row), Column(0), Columnspan(2), Sticky("w"), Pady("0.6m"))
	row++
	rv.input = Text(Height(4), Width(36), Wrap("word"))
	Grid(rv.input, In(controls), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"))
	row++
	rv.analyzeBtn = TButton(Txt("Analyze Text"), Command(cmd(presenter.ActionAnalyzeText)), Style(theme.StylePrimaryButton))
	Grid(rv.analyzeBtn, In(controls), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	row++

	misc := Frame()
	Grid(misc, In(controls), Row(row), Column(0), Columnspan(2), Sticky("we"), Pady("0.6m"))
	Grid(TButton(Txt("Toggle Theme"), Command(cmd(presenter.ActionToggleTheme))), In(misc), Row(0), Column(0), Sticky("we"), Padx("0.2m"))
	Grid(TButton(Txt("Exit"), Command(cmd(presenter.ActionExit)), Style(theme.StyleDangerButton)), In(misc), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	row++

	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	rv.ConfigPanel.Build(controls, row)

	rv.Session = NewSessionStats(right, 0, 0)
	rv.StatusLabel = TLabel(Txt("Ready"), Style(theme.StyleStatusLabel), Width(60))
	Grid(rv.StatusLabel, In(right), Row(1), Column(0), Columnspan(4), Sticky("we"), Pady("0.3m"))
	rv.CapturePrev = NewCapturePreview(right, 2)
	rv.Selection = NewRegionPicker(rv.cfg, rv.cfgPath, rv.logger)
}

func (rv *RootView) section(parent *FrameWidget, row int, title string, cmd func(presenter.Action) func(), buttons []button) int {
	head := TLabel(Txt(title), Style(theme.StyleSectionLabel))
	Grid(head, In(parent), Row(row), Column(0), Columnspan(2), Sticky("w"), Pady("0.6m"))
	row++
	for i, b := range buttons {
		opts := []Opt{Txt(b.label), Command(cmd(b.action))}
		if b.style != "" {
			opts = append(opts, Style(b.style))
		}
		Grid(TButton(opts...), In(parent), Row(row+i/2), Column(i%2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	}
	return row + (len(buttons)+1)/2
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv == nil || rv.StatusLabel == nil {
		return
	}
	if text == "" {
		text = "Ready"
	}
	rv.StatusLabel.Configure(Txt(text))
}

// Text returns the content of the text input.
func (rv *RootView) Text() string {
	if rv == nil || rv.input == nil {
		return ""
	}
	return strings.Join(rv.input.Get("1.0", END), "")
}

// SetAnalyzing disables the analyze button while a request is in flight.
func (rv *RootView) SetAnalyzing(busy bool) {
	if rv == nil || rv.analyzeBtn == nil {
		return
	}
	if busy {
		rv.analyzeBtn.Configure(Txt("Analyzing…"), State("disabled"))
		return
	}
	rv.analyzeBtn.Configure(Txt("Analyze Text"), State("normal"))
}

func (rv *RootView) UpdateCapture(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateCapture(img)
	}
}

func (rv *RootView) UpdateDetection(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateDetection(img)
	}
}

func (rv *RootView) ClearDetection() {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.ClearDetection()
	}
}

func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}

func (rv *RootView) SetCounts(frames, faces uint64) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetCounts(frames, faces)
	}
}

// PreviewReset clears the preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.Reset()
	}
}

// ConfigEditable locks the config panel while the camera runs.
func (rv *RootView) ConfigEditable(b bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(b)
	}
}

// SelectionRect returns the screen region chosen by the user, or nil.
func (rv *RootView) SelectionRect() *image.Rectangle {
	if rv == nil || rv.Selection == nil {
		return nil
	}
	return rv.Selection.ActiveRect()
}
