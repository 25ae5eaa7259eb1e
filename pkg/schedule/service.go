package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/locking"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// ErrReadOnly is returned for mutations attempted in worker mode
var ErrReadOnly = errors.New("schedule is read-only in worker mode")

// ErrBlockNotFound is returned when an operation targets an unknown block id
var ErrBlockNotFound = errors.New("no block found")

// ErrOverlap is returned when overlap rejection is on and a block would
// share a row and day with another
var ErrOverlap = errors.New("block overlaps an existing block in the same row")

// DefaultPersistTimeout bounds every call to the persistence collaborator
const DefaultPersistTimeout = 10 * time.Second

// Write kinds, tracked per dirty id so a failed write can be replayed as
// the same kind of operation
const (
	opCreate    = "create"
	opUpdate    = "update"
	opDelete    = "delete"
	opDeleteAll = "delete-all"
)

// ScheduleService owns the in-memory block collection for the currently
// selected month and job title. Mutations apply optimistically and persist
// asynchronously; failed persists are tracked in a dirty set instead of
// being rolled back.
type ScheduleService struct {
	repository BlockRepositoryInterface
	logger     logger.Interface
	locker     locking.LockerInterface
	geometry   Geometry
	rules      Rules
	mode       Mode
	scopeID    string

	persistTimeout time.Duration

	mu        sync.Mutex
	blocks    []Block
	month     time.Time
	jobTitle  string
	loadToken uint64
	dirty     map[string]string

	queueMu sync.Mutex
	queues  map[string]chan struct{}

	persists sync.WaitGroup
}

// NewScheduleService builds a ScheduleService for one scope and viewing mode
func NewScheduleService(repository BlockRepositoryInterface, log logger.Interface, locker locking.LockerInterface, geometry Geometry, rules Rules, mode Mode, scopeID string, persistTimeout time.Duration) *ScheduleService {
	if persistTimeout <= 0 {
		persistTimeout = DefaultPersistTimeout
	}

	return &ScheduleService{
		repository:     repository,
		logger:         log,
		locker:         locker,
		geometry:       geometry,
		rules:          rules,
		mode:           mode,
		scopeID:        scopeID,
		persistTimeout: persistTimeout,
		dirty:          map[string]string{},
		queues:         map[string]chan struct{}{},
	}
}

// Mode returns the viewing mode
func (s *ScheduleService) Mode() Mode {
	return s.mode
}

// Month returns the currently loaded month anchor
func (s *ScheduleService) Month() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.month
}

// JobTitle returns the currently loaded job title
func (s *ScheduleService) JobTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.jobTitle
}

// Blocks returns a snapshot of the in-memory collection
func (s *ScheduleService) Blocks() []Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocks := make([]Block, len(s.blocks))
	copy(blocks, s.blocks)

	return blocks
}

// LoadBlocks replaces the in-memory collection with the persisted blocks of
// a month and job title. A load superseded by a newer one is discarded so a
// slow response can never overwrite fresher data.
func (s *ScheduleService) LoadBlocks(ctx context.Context, month time.Time, jobTitle string) error {
	s.mu.Lock()
	s.loadToken++
	token := s.loadToken
	s.mu.Unlock()

	blocks, err := s.repository.FindByMonth(ctx, s.scopeID, month, jobTitle)
	if err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.loadToken {
		s.logger.Debug(errStaleLoad.Error())
		return nil
	}

	s.blocks = blocks
	s.month = month
	s.jobTitle = jobTitle

	return nil
}

// AddBlock validates a block, appends it and fires an async persist. The
// caller sees the optimistic in-memory state immediately.
func (s *ScheduleService) AddBlock(ctx context.Context, block Block) error {
	if s.mode != ModeAdmin {
		return ErrReadOnly
	}

	err := block.Validate(s.rules)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.rules.RejectOverlaps && OverlapsAny(block, s.blocks) {
		s.mu.Unlock()
		return ErrOverlap
	}
	s.blocks = append(s.blocks, block)
	s.mu.Unlock()

	s.persistAsync(opCreate, block.ID, func(ctx context.Context) error {
		return s.repository.Add(ctx, s.scopeID, block)
	})

	return nil
}

// MoveBlock re-anchors a block at a new row and column, preserving its day
// span length, and fires an async persist
func (s *ScheduleService) MoveBlock(ctx context.Context, id string, row int, column int) error {
	if s.mode != ModeAdmin {
		return ErrReadOnly
	}

	if row < 0 || row >= Rows {
		return &OutOfRangeError{What: "row", Value: row}
	}
	if column < 0 || column >= Columns {
		return &OutOfRangeError{What: "column", Value: column}
	}

	s.mu.Lock()
	index := s.indexOf(id)
	if index < 0 {
		s.mu.Unlock()
		return ErrBlockNotFound
	}

	moved := s.blocks[index].WithPosition(row, column)

	if s.rules.RejectOverlaps && OverlapsAny(moved, s.blocks) {
		s.mu.Unlock()
		return ErrOverlap
	}

	s.blocks[index] = moved
	s.mu.Unlock()

	s.persistAsync(opUpdate, moved.ID, func(ctx context.Context) error {
		return s.repository.Upsert(ctx, s.scopeID, moved)
	})

	return nil
}

// UpdateBlockDates replaces a block's date span and fires an async persist
func (s *ScheduleService) UpdateBlockDates(ctx context.Context, id string, startDate time.Time, endDate time.Time) error {
	if s.mode != ModeAdmin {
		return ErrReadOnly
	}

	s.mu.Lock()
	index := s.indexOf(id)
	if index < 0 {
		s.mu.Unlock()
		return ErrBlockNotFound
	}

	updated := s.blocks[index].WithDates(startDate, endDate)

	err := updated.Validate(s.rules)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.blocks[index] = updated
	s.mu.Unlock()

	s.persistAsync(opUpdate, updated.ID, func(ctx context.Context) error {
		return s.repository.Upsert(ctx, s.scopeID, updated)
	})

	return nil
}

// DeleteBlock removes a block and fires an async persist. Deleting an
// absent id is a safe no-op.
func (s *ScheduleService) DeleteBlock(ctx context.Context, id string) error {
	if s.mode != ModeAdmin {
		return ErrReadOnly
	}

	s.mu.Lock()
	index := s.indexOf(id)
	if index < 0 {
		s.mu.Unlock()
		return nil
	}

	s.blocks = append(s.blocks[:index], s.blocks[index+1:]...)
	delete(s.dirty, id)
	s.mu.Unlock()

	s.persistAsync(opDelete, id, func(ctx context.Context) error {
		return s.repository.Delete(ctx, s.scopeID, id)
	})

	return nil
}

// DeleteAll clears the in-memory collection and asks the collaborator to
// clear the scoped backing collection
func (s *ScheduleService) DeleteAll(ctx context.Context) error {
	if s.mode != ModeAdmin {
		return ErrReadOnly
	}

	s.mu.Lock()
	s.blocks = nil
	s.dirty = map[string]string{}
	s.mu.Unlock()

	s.persistAsync(opDeleteAll, s.scopeID, func(ctx context.Context) error {
		return s.repository.DeleteAll(ctx, s.scopeID)
	})

	return nil
}

// AddImported validates a whole imported batch, then appends and persists
// every block. A single invalid block rejects the batch.
func (s *ScheduleService) AddImported(ctx context.Context, blocks []Block) error {
	if s.mode != ModeAdmin {
		return ErrReadOnly
	}

	for i := range blocks {
		err := blocks[i].Validate(s.rules)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	if s.rules.RejectOverlaps {
		combined := make([]Block, len(s.blocks), len(s.blocks)+len(blocks))
		copy(combined, s.blocks)

		for _, block := range blocks {
			if OverlapsAny(block, combined) {
				s.mu.Unlock()
				return ErrOverlap
			}

			combined = append(combined, block)
		}
	}
	s.blocks = append(s.blocks, blocks...)
	s.mu.Unlock()

	for _, block := range blocks {
		persisted := block
		s.persistAsync(opCreate, persisted.ID, func(ctx context.Context) error {
			return s.repository.Add(ctx, s.scopeID, persisted)
		})
	}

	return nil
}

// Dirty returns the ids of blocks whose last persist failed
func (s *ScheduleService) Dirty() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.dirty))
	for id := range s.dirty {
		ids = append(ids, id)
	}

	return ids
}

// RetryDirty replays every tracked failed write and waits for the outcome.
// Failed saves re-upsert the block's current state, failed deletes are
// re-issued.
func (s *ScheduleService) RetryDirty(ctx context.Context) error {
	s.mu.Lock()
	pending := make(map[string]string, len(s.dirty))
	for id, op := range s.dirty {
		pending[id] = op
	}

	current := map[string]Block{}
	for id, op := range pending {
		if op == opDelete || op == opDeleteAll {
			continue
		}

		index := s.indexOf(id)
		if index >= 0 {
			current[id] = s.blocks[index]
		}
	}
	s.mu.Unlock()

	group, ctx := errgroup.WithContext(ctx)

	for id, op := range pending {
		id := id
		op := op

		var write func(ctx context.Context) error
		switch op {
		case opDelete:
			write = func(ctx context.Context) error {
				return s.repository.Delete(ctx, s.scopeID, id)
			}
		case opDeleteAll:
			write = func(ctx context.Context) error {
				return s.repository.DeleteAll(ctx, s.scopeID)
			}
		default:
			block, ok := current[id]
			if !ok {
				// the block is gone from memory, nothing left to save
				s.mu.Lock()
				delete(s.dirty, id)
				s.mu.Unlock()
				continue
			}

			write = func(ctx context.Context) error {
				return s.repository.Upsert(ctx, s.scopeID, block)
			}
		}

		group.Go(func() error {
			err := s.persist(ctx, op, id, write)
			if err != nil {
				return err
			}

			s.mu.Lock()
			delete(s.dirty, id)
			s.mu.Unlock()

			return nil
		})
	}

	return group.Wait()
}

// Flush blocks until every in-flight persist has settled
func (s *ScheduleService) Flush() {
	s.persists.Wait()
}

func (s *ScheduleService) indexOf(id string) int {
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			return i
		}
	}

	return -1
}

// persistAsync runs one write against the collaborator in the background.
// Writes for the same id are chained first in, first out: each one waits
// for the previous write on that id to settle, so an earlier write can
// never land after a later one and revert it.
func (s *ScheduleService) persistAsync(op string, id string, write func(ctx context.Context) error) {
	s.persists.Add(1)

	done := make(chan struct{})

	s.queueMu.Lock()
	previous := s.queues[id]
	s.queues[id] = done
	s.queueMu.Unlock()

	go func() {
		defer s.persists.Done()
		defer func() {
			s.queueMu.Lock()
			if s.queues[id] == done {
				delete(s.queues, id)
			}
			s.queueMu.Unlock()

			close(done)
		}()

		if previous != nil {
			<-previous
		}

		err := s.persist(context.Background(), op, id, write)
		if err != nil {
			s.logger.Error("Persisting schedule change did not work", err)

			s.mu.Lock()
			s.dirty[id] = op
			s.mu.Unlock()
		}
	}()
}

func (s *ScheduleService) persist(ctx context.Context, op string, id string, write func(ctx context.Context) error) error {
	lock, err := s.locker.Acquire(ctx, "schedule-block:"+id, s.persistTimeout*2)
	if err != nil {
		return &PersistenceError{Op: op, BlockID: id, Err: err}
	}

	defer func() {
		releaseErr := lock.Release(context.Background())
		if releaseErr != nil {
			s.logger.Error("Problem releasing block write lock", releaseErr)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	err = write(ctx)
	if err != nil {
		return &PersistenceError{Op: op, BlockID: id, Err: err}
	}

	return nil
}
