package presenter

import (
	"errors"
	"image"
	"testing"

	"github.com/soocke/emotion-lens/domain/capture"
	"github.com/soocke/emotion-lens/domain/face"
)

type recordSurface struct{ snaps []capture.FrameSnapshot }

func (r *recordSurface) Publish(s capture.FrameSnapshot) { r.snaps = append(r.snaps, s) }

type statusRecorder struct{ last string }

func (s *statusRecorder) SetStatus(v string) { s.last = v }

func twoFaces() (face.Locator, error) {
	return face.LocatorFunc(func(*image.RGBA) ([]face.BoundingBox, error) {
		return []face.BoundingBox{{X: 1, Y: 1, W: 5, H: 5}, {X: 10, Y: 10, W: 4, H: 4}}, nil
	}), nil
}

func newUpload(capturing bool, d *mockDialogs, surf *recordSurface, st *statusRecorder) *UploadPresenter {
	p := NewUploadPresenter(func() bool { return capturing }, d, twoFaces, face.DefaultStyle(), surf, st, nil)
	p.Load = func(string) (*image.RGBA, error) { return image.NewRGBA(image.Rect(0, 0, 32, 32)), nil }
	return p
}

func TestUploadPresenter_PublishesAnnotatedImage(t *testing.T) {
	d := &mockDialogs{openPath: "/tmp/people.png", openOK: true}
	surf := &recordSurface{}
	st := &statusRecorder{}
	newUpload(false, d, surf, st).Upload()
	if len(surf.snaps) != 1 {
		t.Fatalf("expected one publish, got %d", len(surf.snaps))
	}
	snap := surf.snaps[0]
	if len(snap.Boxes) != 2 || snap.Image == snap.Source {
		t.Fatalf("unexpected snapshot: boxes=%d", len(snap.Boxes))
	}
	if st.last != "people.png: 2 face(s)" {
		t.Fatalf("unexpected status %q", st.last)
	}
}

func TestUploadPresenter_RefusedWhileCapturing(t *testing.T) {
	d := &mockDialogs{openPath: "/tmp/a.png", openOK: true}
	surf := &recordSurface{}
	newUpload(true, d, surf, nil).Upload()
	if len(surf.snaps) != 0 || d.last().kind != "warning" {
		t.Fatalf("upload should be refused while capturing")
	}
}

func TestUploadPresenter_Cancelled(t *testing.T) {
	d := &mockDialogs{}
	surf := &recordSurface{}
	newUpload(false, d, surf, nil).Upload()
	if len(surf.snaps) != 0 || len(d.calls) != 0 {
		t.Fatalf("cancelled picker should do nothing")
	}
}

func TestUploadPresenter_LoadError(t *testing.T) {
	d := &mockDialogs{openPath: "/tmp/a.gif", openOK: true}
	surf := &recordSurface{}
	p := newUpload(false, d, surf, nil)
	p.Load = func(string) (*image.RGBA, error) { return nil, errors.New("unsupported") }
	p.Upload()
	if len(surf.snaps) != 0 || d.last().title != "Cannot open image" {
		t.Fatalf("expected load error dialog, got %+v", d.last())
	}
}
