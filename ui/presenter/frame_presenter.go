package presenter

import (
	"image"

	"github.com/soocke/emotion-lens/domain/capture"
	"github.com/soocke/emotion-lens/ui/images"
	"github.com/soocke/emotion-lens/ui/model"
)

// FrameView describes the preview surface.
type FrameView interface {
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
	ClearDetection()
}

// FramePresenter is the display surface for capture sessions and still images.
// It shows the annotated frame and a crop of the largest face.
type FramePresenter struct {
	view  FrameView
	faces *model.FaceModel
	pad   int

	showingFace bool
}

var _ capture.Surface = (*FramePresenter)(nil)

func NewFramePresenter(view FrameView, faces *model.FaceModel) *FramePresenter {
	return &FramePresenter{view: view, faces: faces, pad: 8}
}

// Publish displays one snapshot.
func (p *FramePresenter) Publish(snap capture.FrameSnapshot) {
	if p == nil || p.view == nil || snap.Image == nil {
		return
	}
	p.view.UpdateCapture(snap.Image)
	if p.faces == nil {
		return
	}
	p.faces.Set(snap.Sequence, snap.Image.Bounds(), snap.Boxes)
	box, ok := p.faces.Largest()
	if !ok || snap.Source == nil {
		p.clearFace()
		return
	}
	crop, _, err := images.CropBox(snap.Source, box.Rect(), p.pad)
	if err != nil {
		p.clearFace()
		return
	}
	p.view.UpdateDetection(crop)
	p.showingFace = true
}

// clearFace drops a stale crop once; repeated faceless frames cost nothing.
func (p *FramePresenter) clearFace() {
	if !p.showingFace {
		return
	}
	p.showingFace = false
	p.view.ClearDetection()
}

// Reset clears detection state.
func (p *FramePresenter) Reset() {
	if p == nil {
		return
	}
	p.faces.Clear()
	p.showingFace = false
}
