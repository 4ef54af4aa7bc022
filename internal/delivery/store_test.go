package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Seed()
	require.Len(t, store.Orders(), 7)

	store.UpdateOrderStatus("ORD001", StatusAccepted, nil)
	store.Seed()

	orders := store.Orders()
	require.Len(t, orders, 7)
	assert.Equal(t, StatusAccepted, orders[0].Status, "reseed must not wipe in-session mutations")
}

func TestUpdateOrderStatusIsTargeted(t *testing.T) {
	store := NewStore()
	store.Seed()
	before := store.Orders()

	deliveredAt := "2024-01-15 12:00"
	tip := 4.25
	store.UpdateOrderStatus("ORD002", StatusDelivered, &OrderPatch{
		DeliveredAt: &deliveredAt,
		Tip:         &tip,
	})

	after := store.Orders()
	require.Len(t, after, len(before))
	for i := range after {
		if after[i].ID == "ORD002" {
			assert.Equal(t, StatusDelivered, after[i].Status)
			assert.Equal(t, deliveredAt, after[i].DeliveredAt)
			assert.Equal(t, tip, after[i].Tip)
			continue
		}
		assert.Equal(t, before[i], after[i], "order %s must be untouched", before[i].ID)
	}
}

func TestUpdateOrderStatusUnknownIDIsNoOp(t *testing.T) {
	store := NewStore()
	store.Seed()
	before := store.Orders()

	store.UpdateOrderStatus("ORD999", StatusDelivered, nil)

	assert.Equal(t, before, store.Orders())
}

func TestAddOrderPrependsAndAssignsID(t *testing.T) {
	store := NewStore()
	store.Seed()

	added := store.AddOrder(Order{
		Status:       StatusAssigned,
		Pharmacy:     "Night Pharmacy",
		CustomerName: "Alex Kim",
		Amount:       19.99,
	})

	require.NotEmpty(t, added.ID)
	orders := store.Orders()
	require.Len(t, orders, 8)
	assert.Equal(t, added.ID, orders[0].ID, "new orders go to the front")
	assert.Equal(t, "ORD001", orders[1].ID)

	withID := store.AddOrder(Order{ID: "ORD100", Status: StatusAssigned})
	assert.Equal(t, "ORD100", withID.ID)
}

func TestUpdateEarningsMergesOnlySetFields(t *testing.T) {
	store := NewStore()
	store.Seed()

	today := 150.00
	store.UpdateEarnings(EarningsPatch{Today: &today})

	earnings := store.EarningsSummary()
	assert.Equal(t, 150.00, earnings.Today)
	assert.Equal(t, 890.25, earnings.Week)
	assert.Equal(t, 3456.75, earnings.Month)
	assert.Equal(t, 245.99, earnings.CashCollected)
}

func TestAccessorsReturnCopies(t *testing.T) {
	store := NewStore()
	store.Seed()

	orders := store.Orders()
	orders[0].Status = StatusFailed
	fresh, ok := store.Order("ORD001")
	require.True(t, ok)
	assert.Equal(t, StatusAssigned, fresh.Status)

	perf := store.PerformanceSummary()
	perf.CustomerFeedback[0].Rating = 1
	assert.Equal(t, 5, store.PerformanceSummary().CustomerFeedback[0].Rating)
}
