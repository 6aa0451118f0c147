package model

import (
	"image"

	"github.com/soocke/emotion-lens/domain/face"
)

// FaceModel holds the most recent detection result. Zero value is usable.
// No synchronization needed: updates occur on the UI thread.
type FaceModel struct {
	boxes    []face.BoundingBox
	frame    image.Rectangle
	sequence uint64
}

func NewFaceModel() *FaceModel { return &FaceModel{} }

// Set replaces the current detections for a frame of the given bounds.
func (m *FaceModel) Set(seq uint64, frame image.Rectangle, boxes []face.BoundingBox) {
	if m == nil {
		return
	}
	m.sequence = seq
	m.frame = frame
	m.boxes = append(m.boxes[:0], boxes...)
}

// Clear drops the current detections.
func (m *FaceModel) Clear() {
	if m == nil {
		return
	}
	m.boxes = m.boxes[:0]
	m.frame = image.Rectangle{}
	m.sequence = 0
}

// Count returns the number of faces in the last frame.
func (m *FaceModel) Count() int {
	if m == nil {
		return 0
	}
	return len(m.boxes)
}

// Largest returns the box with the greatest area.
func (m *FaceModel) Largest() (face.BoundingBox, bool) {
	if m == nil || len(m.boxes) == 0 {
		return face.BoundingBox{}, false
	}
	best := m.boxes[0]
	for _, b := range m.boxes[1:] {
		if b.W*b.H > best.W*best.H {
			best = b
		}
	}
	return best, true
}

// Sequence returns the frame sequence the detections belong to.
func (m *FaceModel) Sequence() uint64 {
	if m == nil {
		return 0
	}
	return m.sequence
}
