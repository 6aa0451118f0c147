package presenter

import (
	"image"
	"testing"

	"github.com/soocke/emotion-lens/domain/capture"
	"github.com/soocke/emotion-lens/domain/face"
	"github.com/soocke/emotion-lens/ui/model"
)

type frameViewSpy struct {
	capture, detection image.Image
	cleared            int
}

func (f *frameViewSpy) UpdateCapture(img image.Image)   { f.capture = img }
func (f *frameViewSpy) UpdateDetection(img image.Image) { f.detection = img }
func (f *frameViewSpy) ClearDetection()                 { f.detection = nil; f.cleared++ }

func TestFramePresenter_ShowsLargestFaceCrop(t *testing.T) {
	view := &frameViewSpy{}
	faces := model.NewFaceModel()
	p := NewFramePresenter(view, faces)
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	p.Publish(capture.FrameSnapshot{
		Image:    src,
		Source:   src,
		Boxes:    []face.BoundingBox{{X: 5, Y: 5, W: 10, H: 10}, {X: 40, Y: 40, W: 30, H: 30}},
		Sequence: 4,
	})
	if view.capture == nil || view.detection == nil {
		t.Fatalf("expected capture and detection updates")
	}
	// 30px box padded by 8 on each side.
	if b := view.detection.Bounds(); b.Dx() != 46 || b.Dy() != 46 {
		t.Fatalf("unexpected crop size %v", b)
	}
	if faces.Count() != 2 || faces.Sequence() != 4 {
		t.Fatalf("face model not updated")
	}
	p.Reset()
	if faces.Count() != 0 {
		t.Fatalf("reset did not clear faces")
	}
}

func TestFramePresenter_NoFacesNoCrop(t *testing.T) {
	view := &frameViewSpy{}
	p := NewFramePresenter(view, model.NewFaceModel())
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p.Publish(capture.FrameSnapshot{Image: img, Source: img})
	if view.capture == nil || view.detection != nil {
		t.Fatalf("expected capture only")
	}
}

func TestFramePresenter_FacelessFrameClearsCropOnce(t *testing.T) {
	view := &frameViewSpy{}
	p := NewFramePresenter(view, model.NewFaceModel())
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	p.Publish(capture.FrameSnapshot{Image: img, Source: img, Boxes: []face.BoundingBox{{X: 10, Y: 10, W: 20, H: 20}}})
	if view.detection == nil {
		t.Fatalf("expected face crop")
	}
	p.Publish(capture.FrameSnapshot{Image: img, Source: img})
	p.Publish(capture.FrameSnapshot{Image: img, Source: img})
	if view.detection != nil || view.cleared != 1 {
		t.Fatalf("stale crop kept: detection=%v cleared=%d", view.detection != nil, view.cleared)
	}
}
