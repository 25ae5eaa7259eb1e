package schedule

import "testing"

type fakePane struct {
	offset int
	writes int
}

func (p *fakePane) ScrollLeft() int {
	return p.offset
}

func (p *fakePane) SetScrollLeft(offset int) {
	p.offset = offset
	p.writes++
}

func TestScrollSyncMirrorsBothDirections(t *testing.T) {
	header := &fakePane{}
	body := &fakePane{}
	sync := NewScrollSynchronizer(header, body)

	header.offset = 240
	sync.HeaderScrolled()

	if body.offset != 240 {
		t.Errorf("body should follow the header, got %d", body.offset)
	}

	body.offset = 400
	sync.BodyScrolled()

	if header.offset != 400 {
		t.Errorf("header should follow the body, got %d", header.offset)
	}
}

func TestScrollSyncDoesNotPingPong(t *testing.T) {
	header := &fakePane{}
	body := &fakePane{}
	sync := NewScrollSynchronizer(header, body)

	header.offset = 160
	sync.HeaderScrolled()

	// the mirrored write triggers the body's own scroll handler
	sync.BodyScrolled()

	if header.writes != 0 {
		t.Errorf("an already aligned pane must not be written to, got %d writes", header.writes)
	}

	if body.writes != 1 {
		t.Errorf("expected a single mirror write, got %d", body.writes)
	}
}
