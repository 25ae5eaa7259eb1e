package schedule

import (
	"sync"
	"time"

	"github.com/shiftgrid-app/shiftgrid-backend/pkg/locking"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/logger"
)

// ServiceManager hands out one ScheduleService per (scope, mode) pair so
// every manager session works against its own in-memory collection
type ServiceManager struct {
	Repository     BlockRepositoryInterface
	Logger         logger.Interface
	Locker         locking.LockerInterface
	Geometry       Geometry
	Rules          Rules
	PersistTimeout time.Duration

	mu       sync.Mutex
	services map[string]*ScheduleService
}

// Get returns the service for a scope and mode, creating it on first use
func (m *ServiceManager) Get(scopeID string, mode Mode) *ScheduleService {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.services == nil {
		m.services = map[string]*ScheduleService{}
	}

	key := scopeID + ":" + string(mode)

	service, ok := m.services[key]
	if !ok {
		service = NewScheduleService(m.Repository, m.Logger, m.Locker, m.Geometry, m.Rules, mode, scopeID, m.PersistTimeout)
		m.services[key] = service
	}

	return service
}
