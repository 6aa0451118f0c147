package view

import (
	"image"

	"github.com/soocke/emotion-lens/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CapturePreview shows the annotated frame and a crop of the largest detected face.
type CapturePreview interface {
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
	ClearDetection()
	Reset()
}

type capturePreview struct {
	frameLabel *LabelWidget
	faceLabel  *LabelWidget
	framePhoto *Img // last Tk photo for the frame
	facePhoto  *Img // last Tk photo for the face crop
}

const (
	maxPreviewW = 480
	maxPreviewH = 360
	maxFaceW    = 160
	maxFaceH    = 160
)

// NewCapturePreview creates the preview labels inside parent.
// The frame label spans columns 0-2; the face crop sits in column 3.
func NewCapturePreview(parent *FrameWidget, row int) CapturePreview {
	v := &capturePreview{}
	v.framePhoto = placeholderPhoto(maxPreviewW/2, maxPreviewH/2)
	v.facePhoto = placeholderPhoto(maxFaceW/2, maxFaceH/2)
	v.frameLabel = Label(Image(v.framePhoto), Borderwidth(1), Relief("sunken"))
	v.faceLabel = Label(Image(v.facePhoto), Borderwidth(1), Relief("sunken"))
	Grid(v.frameLabel, In(parent), Row(row), Column(0), Columnspan(3), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	Grid(v.faceLabel, In(parent), Row(row), Column(3), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	return v
}

func placeholderPhoto(w, h int) *Img {
	return NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))))
}

func (v *capturePreview) UpdateCapture(img image.Image) {
	if v.frameLabel == nil || img == nil {
		return
	}
	v.framePhoto = replacePhoto(v.frameLabel, v.framePhoto, images.ScaleToFit(img, maxPreviewW, maxPreviewH))
}

func (v *capturePreview) UpdateDetection(img image.Image) {
	if v.faceLabel == nil || img == nil {
		return
	}
	v.facePhoto = replacePhoto(v.faceLabel, v.facePhoto, images.ScaleToFit(img, maxFaceW, maxFaceH))
}

func (v *capturePreview) ClearDetection() {
	if v.faceLabel != nil {
		v.facePhoto = swapPhoto(v.faceLabel, v.facePhoto, placeholderPhoto(maxFaceW/2, maxFaceH/2))
	}
}

func (v *capturePreview) Reset() {
	if v.frameLabel != nil {
		v.framePhoto = swapPhoto(v.frameLabel, v.framePhoto, placeholderPhoto(maxPreviewW/2, maxPreviewH/2))
	}
	if v.faceLabel != nil {
		v.facePhoto = swapPhoto(v.faceLabel, v.facePhoto, placeholderPhoto(maxFaceW/2, maxFaceH/2))
	}
}

// replacePhoto encodes img into a fresh Tk photo and disposes the previous one
// so off-screen pixel data does not accumulate.
func replacePhoto(lbl *LabelWidget, prev *Img, img image.Image) *Img {
	return swapPhoto(lbl, prev, NewPhoto(Data(images.EncodePNG(img))))
}

func swapPhoto(lbl *LabelWidget, prev, next *Img) *Img {
	lbl.Configure(Image(next))
	if prev != nil {
		prev.Delete()
	}
	return next
}
