package presenter

import (
	"testing"

	"github.com/soocke/emotion-lens/domain/voice"
)

func TestVoicePresenter_UnimplementedIsReported(t *testing.T) {
	var u voice.Unimplemented
	d := &mockDialogs{}
	p := NewVoicePresenter(u, u, d, nil, nil)

	p.Record()
	p.StopRecording()
	p.Analyze()
	if len(d.calls) != 3 {
		t.Fatalf("expected one dialog per action, got %d", len(d.calls))
	}
	for _, c := range d.calls {
		if c.kind != "error" || c.title != "Not implemented" {
			t.Fatalf("expected not-implemented error, got %+v", c)
		}
	}
}
