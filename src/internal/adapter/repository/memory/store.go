package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/api-sage/swift-payment-portal/src/internal/domain"
)

// Store holds every in-memory table behind one mutex. A transaction keeps the
// mutex for its whole duration and restores a snapshot when it fails, so
// readers never observe a partially applied batch.
type Store struct {
	mu        sync.Mutex
	now       func() time.Time
	payments  map[string]domain.Payment
	employees map[string]domain.Employee
	customers map[string]domain.Customer
}

type txKey struct{}

func NewStore() *Store {
	return &Store{
		now:       time.Now,
		payments:  make(map[string]domain.Payment),
		employees: make(map[string]domain.Employee),
		customers: make(map[string]domain.Customer),
	}
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type snapshot struct {
	payments  map[string]domain.Payment
	employees map[string]domain.Employee
	customers map[string]domain.Customer
}

func (s *Store) snapshot() snapshot {
	employees := make(map[string]domain.Employee, len(s.employees))
	for id, employee := range s.employees {
		employee.ActionLog = slices.Clone(employee.ActionLog)
		employees[id] = employee
	}
	return snapshot{
		payments:  maps.Clone(s.payments),
		employees: employees,
		customers: maps.Clone(s.customers),
	}
}

func (s *Store) restore(snap snapshot) {
	s.payments = snap.payments
	s.employees = snap.employees
	s.customers = snap.customers
}

type Transactor struct {
	store *Store
}

func NewTransactor(store *Store) *Transactor {
	return &Transactor{store: store}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s := t.store
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, s))
}
