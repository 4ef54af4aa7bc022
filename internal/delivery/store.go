// internal/delivery/store.go
//
// The delivery-data store is the single source of truth for orders,
// earnings, and performance during a session. It is mutated synchronously
// from UI events only, so it carries no locking. Nothing here is durable;
// Seed repopulates the same fixtures at the start of every session.

package delivery

import (
	"strings"

	"github.com/google/uuid"
)

// OrderPatch carries the optional extra fields a status update may merge
// into an order. Nil pointers leave the existing value untouched.
type OrderPatch struct {
	DeliveredAt   *string
	FailedAt      *string
	Rating        *int
	Tip           *float64
	Feedback      *string
	FailureReason *string
	Attempts      *int
}

// EarningsPatch is a shallow partial update of the earnings summary.
type EarningsPatch struct {
	Today         *float64
	Week          *float64
	Month         *float64
	CashCollected *float64
}

// Store holds the session's delivery data.
type Store struct {
	seeded      bool
	orders      []Order
	earnings    Earnings
	performance Performance
}

// NewStore returns an empty store. Call Seed before first use.
func NewStore() *Store {
	return &Store{}
}

// Orders returns a copy of the order list, most recent first.
func (s *Store) Orders() []Order {
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Order looks up a single order by id.
func (s *Store) Order(id string) (Order, bool) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// EarningsSummary returns the current earnings totals.
func (s *Store) EarningsSummary() Earnings {
	return s.earnings
}

// PerformanceSummary returns the read-only performance record.
func (s *Store) PerformanceSummary() Performance {
	p := s.performance
	p.CustomerFeedback = append([]Feedback(nil), s.performance.CustomerFeedback...)
	return p
}

// UpdateOrderStatus replaces the status of the order with the given id and
// merges any patch fields. An unknown id is a silent no-op. The relative
// order of all other orders is preserved.
func (s *Store) UpdateOrderStatus(id string, status Status, patch *OrderPatch) {
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders[i].Status = status
		if patch != nil {
			applyOrderPatch(&s.orders[i], patch)
		}
		return
	}
}

// AddOrder prepends a new order; the list's display convention is most
// recent first. A blank id gets a generated one. The stored order is
// returned so callers can reference the assigned id.
func (s *Store) AddOrder(o Order) Order {
	if strings.TrimSpace(o.ID) == "" {
		o.ID = "ORD-" + strings.ToUpper(uuid.NewString()[:8])
	}
	s.orders = append([]Order{o}, s.orders...)
	return o
}

// UpdateEarnings shallow-merges the set fields into the earnings summary.
func (s *Store) UpdateEarnings(patch EarningsPatch) {
	if patch.Today != nil {
		s.earnings.Today = *patch.Today
	}
	if patch.Week != nil {
		s.earnings.Week = *patch.Week
	}
	if patch.Month != nil {
		s.earnings.Month = *patch.Month
	}
	if patch.CashCollected != nil {
		s.earnings.CashCollected = *patch.CashCollected
	}
}

func applyOrderPatch(o *Order, p *OrderPatch) {
	if p.DeliveredAt != nil {
		o.DeliveredAt = *p.DeliveredAt
	}
	if p.FailedAt != nil {
		o.FailedAt = *p.FailedAt
	}
	if p.Rating != nil {
		o.Rating = *p.Rating
	}
	if p.Tip != nil {
		o.Tip = *p.Tip
	}
	if p.Feedback != nil {
		o.Feedback = *p.Feedback
	}
	if p.FailureReason != nil {
		o.FailureReason = *p.FailureReason
	}
	if p.Attempts != nil {
		o.Attempts = *p.Attempts
	}
}
