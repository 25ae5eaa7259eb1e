package schedule

// Pane is an independently scrollable grid pane
type Pane interface {
	ScrollLeft() int
	SetScrollLeft(offset int)
}

// ScrollSynchronizer keeps the header pane and the body pane horizontally
// aligned while either one is scrolled. Writes are guarded by a
// compare-before-write so mirroring one pane cannot ping-pong back.
type ScrollSynchronizer struct {
	header Pane
	body   Pane
}

// NewScrollSynchronizer builds a synchronizer over the two panes
func NewScrollSynchronizer(header Pane, body Pane) *ScrollSynchronizer {
	return &ScrollSynchronizer{header: header, body: body}
}

// HeaderScrolled mirrors the header offset onto the body
func (s *ScrollSynchronizer) HeaderScrolled() {
	mirror(s.header, s.body)
}

// BodyScrolled mirrors the body offset onto the header
func (s *ScrollSynchronizer) BodyScrolled() {
	mirror(s.body, s.header)
}

func mirror(source Pane, target Pane) {
	offset := source.ScrollLeft()
	if target.ScrollLeft() == offset {
		return
	}

	target.SetScrollLeft(offset)
}
