package statusstore

import (
	"sync"

	"github.com/FOLISOLOMON/invoice/internal/entities"
)

// Store tracks the payment status per payment reference. A reference that
// was never written reads as pending, modeling "not yet observed".
//
// The store only lives for the process lifetime. If durability is ever
// needed, put an external key-value store behind this interface without
// changing the contract.
type Store interface {
	Set(reference string, status entities.PaymentStatus)
	Get(reference string) entities.PaymentStatus
}

var _ Store = (*inMemoryStore)(nil)

type inMemoryStore struct {
	mu       sync.RWMutex
	statuses map[string]entities.PaymentStatus
}

func NewInMemoryStore() Store {
	return &inMemoryStore{
		statuses: make(map[string]entities.PaymentStatus),
	}
}

func (s *inMemoryStore) Set(reference string, status entities.PaymentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statuses[reference] = status
}

func (s *inMemoryStore) Get(reference string) entities.PaymentStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if status, ok := s.statuses[reference]; ok {
		return status
	}

	return entities.PaymentStatusPending
}
