// internal/delivery/seed.go
//
// Fixed sample data for the courier panel. The panel has no backend; every
// session starts from these fixtures, so the numbers the screens derive
// from them (active counts, history stats) are stable.

package delivery

// Seed populates the store with the sample orders, earnings, and
// performance record. The first call wins; reseeding on later screen
// mounts would wipe in-session mutations, so subsequent calls no-op.
func (s *Store) Seed() {
	if s.seeded {
		return
	}
	s.seeded = true

	s.orders = []Order{
		{
			ID:              "ORD001",
			Status:          StatusAssigned,
			Items:           []string{"Medicine Pack A", "Vitamin Supplements"},
			Pharmacy:        "HealthCare Pharmacy",
			Distance:        "2.5 km",
			PickupAddress:   "123 Medical St, Floor 2",
			DeliveryAddress: "456 Residential Ave, Apt 3B",
			CustomerName:    "Sarah Johnson",
			CustomerPhone:   "+1234567890",
			Amount:          45.99,
			PaymentMethod:   PaymentCOD,
			EstimatedTime:   "25 mins",
			Priority:        PriorityHigh,
			Instructions:    "Ring doorbell twice",
		},
		{
			ID:              "ORD002",
			Status:          StatusPickedUp,
			Items:           []string{"Lab Report", "X-Ray Films"},
			Pharmacy:        "City Lab Center",
			Distance:        "1.8 km",
			PickupAddress:   "789 Lab Complex, Ground Floor",
			DeliveryAddress: "321 Park View, House 12",
			CustomerName:    "Mike Chen",
			CustomerPhone:   "+1234567891",
			Amount:          25.00,
			PaymentMethod:   PaymentPaid,
			EstimatedTime:   "15 mins",
			Priority:        PriorityNormal,
			Instructions:    "Handle with care - fragile",
		},
		{
			ID:              "ORD003",
			Status:          StatusOutForDelivery,
			Items:           []string{"Prescription Medicines", "First Aid Kit"},
			Pharmacy:        "MediQuick Store",
			Distance:        "3.2 km",
			PickupAddress:   "555 Commerce St, Shop 15",
			DeliveryAddress: "888 Suburb Lane, Villa 7",
			CustomerName:    "Emma Davis",
			CustomerPhone:   "+1234567892",
			Amount:          78.50,
			PaymentMethod:   PaymentCOD,
			EstimatedTime:   "30 mins",
			Priority:        PriorityHigh,
			Instructions:    "Call before delivery",
		},
		{
			ID:            "ORD004",
			Status:        StatusDelivered,
			Items:         []string{"Blood Test Kit", "Sample Containers"},
			Pharmacy:      "MediLab Diagnostics",
			Distance:      "1.2 km",
			CustomerName:  "Robert Wilson",
			CustomerPhone: "+1234567893",
			Amount:        32.75,
			PaymentMethod: PaymentPaid,
			DeliveredAt:   "2024-01-14 16:45",
			Rating:        5,
			Tip:           5.00,
			Feedback:      "Very fast and professional service!",
		},
		{
			ID:            "ORD005",
			Status:        StatusDelivered,
			Items:         []string{"Prescription Medicines", "Vitamins"},
			Pharmacy:      "QuickCare Pharmacy",
			Distance:      "2.8 km",
			CustomerName:  "Lisa Anderson",
			CustomerPhone: "+1234567894",
			Amount:        67.50,
			PaymentMethod: PaymentCOD,
			DeliveredAt:   "2024-01-14 14:20",
			Rating:        4,
			Tip:           3.50,
			Feedback:      "Good service, arrived on time.",
		},
		{
			ID:            "ORD006",
			Status:        StatusFailed,
			Items:         []string{"Medical Equipment"},
			Pharmacy:      "HealthTech Store",
			Distance:      "4.1 km",
			CustomerName:  "Mark Thompson",
			CustomerPhone: "+1234567895",
			Amount:        125.00,
			PaymentMethod: PaymentPaid,
			FailedAt:      "2024-01-13 18:30",
			FailureReason: "Customer not available",
			Attempts:      3,
		},
		{
			ID:            "ORD007",
			Status:        StatusDelivered,
			Items:         []string{"Lab Reports", "Medical Documents"},
			Pharmacy:      "Central Lab",
			Distance:      "0.8 km",
			CustomerName:  "Jennifer Davis",
			CustomerPhone: "+1234567896",
			Amount:        15.00,
			PaymentMethod: PaymentPaid,
			DeliveredAt:   "2024-01-13 11:15",
			Rating:        5,
			Tip:           2.00,
			Feedback:      "Excellent service, very careful with documents.",
		},
	}

	s.earnings = Earnings{
		Today:         125.50,
		Week:          890.25,
		Month:         3456.75,
		CashCollected: 245.99,
	}

	s.performance = Performance{
		Rating:              4.8,
		CompletedDeliveries: 156,
		OnTimeDeliveries:    148,
		CustomerFeedback: []Feedback{
			{Rating: 5, Comment: "Very professional and fast delivery!", Date: "2024-01-15"},
			{Rating: 4, Comment: "Good service, arrived on time.", Date: "2024-01-14"},
			{Rating: 5, Comment: "Excellent communication throughout.", Date: "2024-01-13"},
		},
	}
}
