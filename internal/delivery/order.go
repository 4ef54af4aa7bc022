// internal/delivery/order.go
//
// Order model for the courier panel. Status values mirror the lifecycle the
// screens walk through; the store itself never rejects a transition, the
// progression is a presentation convention.

package delivery

// Status represents where an order is in its delivery lifecycle.
type Status string

const (
	StatusAssigned       Status = "assigned"
	StatusAccepted       Status = "accepted"
	StatusReachedPickup  Status = "reached_pickup"
	StatusPickedUp       Status = "picked_up"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusFailed         Status = "failed"
	StatusRejected       Status = "rejected"
)

// PaymentMethod distinguishes cash-on-delivery from pre-paid orders.
type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "COD"
	PaymentPaid PaymentMethod = "Paid"
)

// Priority marks orders that should be handled first.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Label returns the display text for a status.
func (s Status) Label() string {
	switch s {
	case StatusAssigned:
		return "Assigned"
	case StatusAccepted:
		return "Accepted"
	case StatusReachedPickup:
		return "Reached Pickup"
	case StatusPickedUp:
		return "Picked Up"
	case StatusOutForDelivery:
		return "Out for Delivery"
	case StatusDelivered:
		return "Delivered"
	case StatusFailed:
		return "Failed"
	case StatusRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

// IsActive reports whether the order still needs courier attention.
// Accepted and reached_pickup sit between assignment and pickup; the
// panel's "active" bucket counts the three states the dashboard shows.
func (s Status) IsActive() bool {
	switch s {
	case StatusAssigned, StatusPickedUp, StatusOutForDelivery:
		return true
	}
	return false
}

// IsTerminal reports whether the order has been resolved.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusFailed, StatusRejected:
		return true
	}
	return false
}

// Next returns the following step in the normal delivery progression and
// whether one exists. Assigned orders advance by accept/reject instead.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusAccepted:
		return StatusReachedPickup, true
	case StatusReachedPickup:
		return StatusPickedUp, true
	case StatusPickedUp:
		return StatusOutForDelivery, true
	case StatusOutForDelivery:
		return StatusDelivered, true
	}
	return "", false
}

// Order is a single delivery job. Resolution fields stay zero until the
// order is delivered or failed. Rating 0 means the customer left none.
type Order struct {
	ID              string        `json:"id"`
	Status          Status        `json:"status"`
	Items           []string      `json:"items"`
	Pharmacy        string        `json:"pharmacy"`
	Distance        string        `json:"distance"`
	PickupAddress   string        `json:"pickupAddress,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	Amount          float64       `json:"amount"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	EstimatedTime   string        `json:"estimatedTime,omitempty"`
	Priority        Priority      `json:"priority,omitempty"`
	Instructions    string        `json:"instructions,omitempty"`

	DeliveredAt   string  `json:"deliveredAt,omitempty"`
	FailedAt      string  `json:"failedAt,omitempty"`
	Rating        int     `json:"rating,omitempty"`
	Tip           float64 `json:"tip,omitempty"`
	Feedback      string  `json:"feedback,omitempty"`
	FailureReason string  `json:"failureReason,omitempty"`
	Attempts      int     `json:"attempts,omitempty"`
}

// ResolvedAt returns the timestamp at which the order left the active
// lifecycle, or "" while it is still open.
func (o Order) ResolvedAt() string {
	if o.DeliveredAt != "" {
		return o.DeliveredAt
	}
	return o.FailedAt
}

// Earnings aggregates payout totals for the signed-in courier.
type Earnings struct {
	Today         float64 `json:"today"`
	Week          float64 `json:"week"`
	Month         float64 `json:"month"`
	CashCollected float64 `json:"cashCollected"`
}

// Feedback is one customer review attached to the performance summary.
type Feedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Performance summarizes delivery quality. The view layer only reads it.
type Performance struct {
	Rating              float64    `json:"rating"`
	CompletedDeliveries int        `json:"completedDeliveries"`
	OnTimeDeliveries    int        `json:"onTimeDeliveries"`
	CustomerFeedback    []Feedback `json:"customerFeedback"`
}
