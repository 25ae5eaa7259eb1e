package schedule

import (
	"context"
	"math"
)

// Mode is the calendar viewing mode. Worker mode is read-only.
type Mode string

// The two viewing modes
const (
	ModeAdmin  Mode = "admin"
	ModeWorker Mode = "worker"
)

// DragState is the drag gesture state
type DragState int

// Drag gesture states. Dropped and cancelled gestures return to idle.
const (
	DragIdle DragState = iota
	Dragging
)

// BlockMover applies a requested move. The drag controller never persists
// directly.
type BlockMover interface {
	MoveBlock(ctx context.Context, id string, row int, column int) error
}

// DragController tracks one block being dragged across the grid and turns
// the pointer delta into a row/column move request on release
type DragController struct {
	geometry Geometry
	mode     Mode
	mover    BlockMover

	state        DragState
	blockID      string
	originRow    int
	originColumn int
	deltaX       float64
	deltaY       float64
}

// NewDragController builds a DragController for a viewing mode
func NewDragController(geometry Geometry, mode Mode, mover BlockMover) *DragController {
	return &DragController{
		geometry: geometry,
		mode:     mode,
		mover:    mover,
	}
}

// State returns the current gesture state
func (c *DragController) State() DragState {
	return c.state
}

// BeginDrag starts a drag gesture on a block. In worker mode the drag
// silently does not start.
func (c *DragController) BeginDrag(blockID string, row int, column int) bool {
	if c.mode != ModeAdmin || c.state != DragIdle {
		return false
	}

	c.state = Dragging
	c.blockID = blockID
	c.originRow = row
	c.originColumn = column
	c.deltaX = 0
	c.deltaY = 0

	return true
}

// MovePointer records the pointer delta from the drag origin. The dragged
// block is not mutated while the gesture is in flight.
func (c *DragController) MovePointer(deltaX float64, deltaY float64) {
	if c.state != Dragging {
		return
	}

	c.deltaX = deltaX
	c.deltaY = deltaY
}

// Drop releases the gesture. The pointer delta is rounded to whole cells;
// an in-bounds target is requested as a move, an out-of-bounds target snaps
// the block back without an error.
func (c *DragController) Drop(ctx context.Context) error {
	if c.state != Dragging {
		return nil
	}

	cell := float64(c.geometry.CellSize)
	newColumn := c.originColumn + int(math.Round(c.deltaX/cell))
	newRow := c.originRow + int(math.Round(c.deltaY/cell))

	blockID := c.blockID
	c.reset()

	if newColumn < 0 || newColumn >= Columns || newRow < 0 || newRow >= Rows {
		return nil
	}

	return c.mover.MoveBlock(ctx, blockID, newRow, newColumn)
}

// CancelDrag aborts the gesture without any state change
func (c *DragController) CancelDrag() {
	if c.state != Dragging {
		return
	}

	c.reset()
}

func (c *DragController) reset() {
	c.state = DragIdle
	c.blockID = ""
	c.originRow = 0
	c.originColumn = 0
	c.deltaX = 0
	c.deltaY = 0
}
