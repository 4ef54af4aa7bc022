// internal/tui/orders.go
//
// The orders screen: filter tabs over the order list, accept/reject for
// newly assigned orders, and a detail view that walks an order through the
// delivery progression one step at a time.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curo-24/delivery-ui/internal/delivery"
)

// orderFilters are the tabs across the top of the list. "New" is the
// assigned bucket; the rest map to the shared filter keys.
var orderFilters = []struct {
	key   string
	label string
}{
	{delivery.FilterAll, "All"},
	{string(delivery.StatusAssigned), "New"},
	{string(delivery.StatusAccepted), "Accepted"},
	{delivery.FilterActive, "Active"},
	{delivery.FilterCompleted, "Completed"},
	{delivery.FilterFailed, "Failed"},
}

type ordersState struct {
	list     list.Model
	filter   int
	detailID string
}

// orderItem implements list.Item for the order list.
type orderItem struct {
	order delivery.Order
}

func (i orderItem) Title() string {
	title := fmt.Sprintf("%s · %s · $%.2f", i.order.ID, i.order.Status.Label(), i.order.Amount)
	if i.order.Priority == delivery.PriorityHigh {
		title += " · high"
	}
	return title
}

func (i orderItem) Description() string {
	parts := []string{i.order.Pharmacy, i.order.Distance, i.order.CustomerName}
	if i.order.EstimatedTime != "" {
		parts = append(parts, "ETA "+i.order.EstimatedTime)
	}
	return strings.Join(parts, " · ")
}

func (i orderItem) FilterValue() string { return i.order.ID }

func newOrdersState() ordersState {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 14)
	l.Title = "Orders"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return ordersState{list: l}
}

// refreshOrders repopulates the list for the active filter tab.
func (a *App) refreshOrders() {
	key := orderFilters[a.orders.filter].key
	filtered := delivery.FilterByStatus(a.data.Orders(), key)
	items := make([]list.Item, len(filtered))
	for i, o := range filtered {
		items[i] = orderItem{order: o}
	}
	a.orders.list.SetItems(items)
}

func (a *App) selectedOrder() (delivery.Order, bool) {
	item, ok := a.orders.list.SelectedItem().(orderItem)
	if !ok {
		return delivery.Order{}, false
	}
	// Re-read from the store; the list item may be stale.
	return a.data.Order(item.order.ID)
}

func (a *App) updateOrders(msg tea.KeyMsg) tea.Cmd {
	if a.orders.detailID != "" {
		return a.updateOrderDetail(msg)
	}

	switch msg.String() {
	case "left", "h":
		a.orders.filter = (a.orders.filter + len(orderFilters) - 1) % len(orderFilters)
		a.refreshOrders()
		return nil
	case "right", "l":
		a.orders.filter = (a.orders.filter + 1) % len(orderFilters)
		a.refreshOrders()
		return nil
	case "a":
		return a.acceptSelected()
	case "r":
		return a.rejectSelected()
	case "enter":
		if o, ok := a.selectedOrder(); ok {
			a.orders.detailID = o.ID
		}
		return nil
	case "c":
		return a.notImplemented("Customer call")
	case "m":
		return a.notImplemented("Customer chat")
	case "esc":
		return a.routeTo(screenDashboard)
	}

	var cmd tea.Cmd
	a.orders.list, cmd = a.orders.list.Update(msg)
	return cmd
}

func (a *App) acceptSelected() tea.Cmd {
	o, ok := a.selectedOrder()
	if !ok || o.Status != delivery.StatusAssigned {
		return nil
	}
	a.data.UpdateOrderStatus(o.ID, delivery.StatusAccepted, nil)
	a.refreshOrders()
	a.logInfo("Order %s accepted", o.ID)
	return a.notify("Order Accepted", "You can now proceed to pickup location", false)
}

func (a *App) rejectSelected() tea.Cmd {
	o, ok := a.selectedOrder()
	if !ok || o.Status != delivery.StatusAssigned {
		return nil
	}
	a.data.UpdateOrderStatus(o.ID, delivery.StatusRejected, nil)
	a.refreshOrders()
	a.logWarn("Order %s rejected", o.ID)
	return a.notify("Order Rejected", "Order has been reassigned to another delivery partner", false)
}

func (a *App) updateOrderDetail(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "backspace":
		a.orders.detailID = ""
		return nil
	case "n", "enter":
		return a.advanceSelected()
	case "p":
		if o, ok := a.data.Order(a.orders.detailID); ok && o.Status == delivery.StatusOutForDelivery {
			return a.notImplemented("Proof-of-delivery photo")
		}
		return nil
	case "s":
		if o, ok := a.data.Order(a.orders.detailID); ok && o.Status == delivery.StatusOutForDelivery {
			return a.notImplemented("Customer signature capture")
		}
		return nil
	case "c":
		return a.notImplemented("Customer call")
	case "m":
		return a.notImplemented("Customer chat")
	}
	return nil
}

// advanceSelected moves the open order one step along the progression.
// Marking delivered additionally stamps the delivery time and credits
// today's earnings; the two store calls are independent, not atomic.
func (a *App) advanceSelected() tea.Cmd {
	o, ok := a.data.Order(a.orders.detailID)
	if !ok {
		return nil
	}
	next, ok := o.Status.Next()
	if !ok {
		return nil
	}

	var patch *delivery.OrderPatch
	if next == delivery.StatusDelivered {
		deliveredAt := time.Now().Format("2006-01-02 15:04")
		patch = &delivery.OrderPatch{DeliveredAt: &deliveredAt}
	}
	a.data.UpdateOrderStatus(o.ID, next, patch)
	if next == delivery.StatusDelivered {
		today := a.data.EarningsSummary().Today + o.Amount
		a.data.UpdateEarnings(delivery.EarningsPatch{Today: &today})
	}
	a.refreshOrders()
	a.logInfo("Order %s → %s", o.ID, next)
	return a.notify("Status Updated", statusUpdateMessage(next), false)
}

func statusUpdateMessage(s delivery.Status) string {
	switch s {
	case delivery.StatusReachedPickup:
		return "Marked as reached pickup location"
	case delivery.StatusPickedUp:
		return "Order picked up successfully"
	case delivery.StatusOutForDelivery:
		return "Out for delivery"
	case delivery.StatusDelivered:
		return "Order delivered successfully!"
	default:
		return fmt.Sprintf("Status updated to %s", s.Label())
	}
}

func (a *App) viewOrders() string {
	if a.orders.detailID != "" {
		return a.viewOrderDetail()
	}

	var tabs []string
	for i, f := range orderFilters {
		if i == a.orders.filter {
			tabs = append(tabs, highlightStyle.Render("["+f.label+"]"))
		} else {
			tabs = append(tabs, hintStyle.Render(f.label))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")
	if len(a.orders.list.Items()) == 0 {
		b.WriteString(mutedStyle.Render("No orders under this filter.") + "\n")
	} else {
		b.WriteString(a.orders.list.View() + "\n")
	}
	b.WriteString(hintStyle.Render("←/→ filter    a accept    r reject    enter details    c call    m message"))
	return panelStyle.Render(b.String())
}

func (a *App) viewOrderDetail() string {
	o, ok := a.data.Order(a.orders.detailID)
	if !ok {
		return panelStyle.Render(mutedStyle.Render("Order no longer available."))
	}

	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Order Details · %s", o.ID)) + "\n\n")
	b.WriteString(fmt.Sprintf("Status      %s\n", o.Status.Label()))
	b.WriteString(fmt.Sprintf("Customer    %s  %s\n", o.CustomerName, mutedStyle.Render(o.CustomerPhone)))
	b.WriteString(fmt.Sprintf("Payment     $%.2f · %s\n", o.Amount, o.PaymentMethod))
	if o.PickupAddress != "" {
		b.WriteString(fmt.Sprintf("Pickup      %s\n", o.PickupAddress))
	}
	if o.DeliveryAddress != "" {
		b.WriteString(fmt.Sprintf("Delivery    %s\n", o.DeliveryAddress))
	}
	instructions := o.Instructions
	if instructions == "" {
		instructions = "No special instructions"
	}
	b.WriteString(fmt.Sprintf("Notes       %s\n", instructions))
	b.WriteString("Items\n")
	for _, item := range o.Items {
		b.WriteString("  • " + item + "\n")
	}

	if o.DeliveredAt != "" {
		b.WriteString(fmt.Sprintf("\nDelivered   %s", o.DeliveredAt))
		if o.Rating > 0 {
			b.WriteString(fmt.Sprintf(" · ★ %d · tip $%.2f", o.Rating, o.Tip))
		}
		if o.Feedback != "" {
			b.WriteString("\n" + mutedStyle.Render("“"+o.Feedback+"”"))
		}
		b.WriteString("\n")
	}
	if o.FailedAt != "" {
		b.WriteString(fmt.Sprintf("\nFailed      %s · %s · %d attempt(s)\n", o.FailedAt, o.FailureReason, o.Attempts))
	}

	b.WriteString("\n")
	if next, ok := o.Status.Next(); ok {
		b.WriteString(hintStyle.Render(fmt.Sprintf("n → mark %s    ", next.Label())))
	}
	if o.Status == delivery.StatusOutForDelivery {
		b.WriteString(hintStyle.Render("p → photo proof    s → signature    "))
	}
	b.WriteString(hintStyle.Render("c call    m message    esc back"))
	return panelStyle.Render(b.String())
}
