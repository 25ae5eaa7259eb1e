package schedule

import (
	"context"
	"testing"
)

type recordingMover struct {
	calls  int
	id     string
	row    int
	column int
}

func (m *recordingMover) MoveBlock(_ context.Context, id string, row int, column int) error {
	m.calls++
	m.id = id
	m.row = row
	m.column = column
	return nil
}

func TestDragRefusedInWorkerMode(t *testing.T) {
	mover := &recordingMover{}
	controller := NewDragController(NewGeometry(0), ModeWorker, mover)

	if controller.BeginDrag("block-1", 0, 2) {
		t.Error("worker mode must refuse to start a drag")
	}

	if controller.State() != DragIdle {
		t.Error("controller should stay idle")
	}
}

func TestDropRoundsPointerDeltaToCells(t *testing.T) {
	mover := &recordingMover{}
	controller := NewDragController(NewGeometry(0), ModeAdmin, mover)

	if !controller.BeginDrag("block-1", 2, 5) {
		t.Fatal("admin mode should start a drag")
	}

	// 3 cells right, 1 cell down, with sub-cell jitter
	controller.MovePointer(3*80+12, 80-25)

	err := controller.Drop(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	if mover.calls != 1 {
		t.Fatalf("expected one move request, got %d", mover.calls)
	}

	if mover.id != "block-1" || mover.row != 3 || mover.column != 8 {
		t.Errorf("expected move to row 3 column 8, got row %d column %d", mover.row, mover.column)
	}

	if controller.State() != DragIdle {
		t.Error("controller should return to idle after a drop")
	}
}

func TestOutOfBoundsDropIsANoOp(t *testing.T) {
	mover := &recordingMover{}
	controller := NewDragController(NewGeometry(0), ModeAdmin, mover)

	controller.BeginDrag("block-1", 0, 0)
	controller.MovePointer(-80, 0)

	err := controller.Drop(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	if mover.calls != 0 {
		t.Error("a drop at column -1 must not request a move")
	}

	controller.BeginDrag("block-1", 13, 5)
	controller.MovePointer(0, 80)

	err = controller.Drop(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	if mover.calls != 0 {
		t.Error("a drop at row 14 must not request a move")
	}
}

func TestCancelDragLeavesEverythingUnchanged(t *testing.T) {
	mover := &recordingMover{}
	controller := NewDragController(NewGeometry(0), ModeAdmin, mover)

	controller.BeginDrag("block-1", 2, 2)
	controller.MovePointer(160, 0)
	controller.CancelDrag()

	if controller.State() != DragIdle {
		t.Error("cancel should return the controller to idle")
	}

	err := controller.Drop(context.TODO())
	if err != nil {
		t.Fatal(err)
	}

	if mover.calls != 0 {
		t.Error("a cancelled drag must not request a move")
	}
}
