// internal/tui/dashboard.go
//
// The home screen: greeting, availability toggle, stat cards, today's
// summary, and the first few active orders. All numbers are derived from
// the delivery store; the screen itself only counts and renders.

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curo-24/delivery-ui/internal/delivery"
)

func (a *App) updateDashboard(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "o":
		return a.toggleOnline()
	case "n":
		return a.notImplemented("Notification center")
	case "c":
		return a.notImplemented("Customer call")
	case "m":
		return a.notImplemented("Customer chat")
	case "g":
		return a.notImplemented("Order navigation shortcut")
	}
	return nil
}

func (a *App) toggleOnline() tea.Cmd {
	courier, ok := a.sessions.Current()
	if !ok {
		return nil
	}
	updated, _ := a.sessions.SetOnline(!courier.IsOnline)
	a.logInfo("Availability toggled · online=%t", updated.IsOnline)
	if updated.IsOnline {
		return a.notify("Going Online", "You're now available for new deliveries!", false)
	}
	return a.notify("Going Offline", "You won't receive new orders while offline", false)
}

func (a *App) viewDashboard() string {
	courier, _ := a.sessions.Current()
	orders := a.data.Orders()
	earnings := a.data.EarningsSummary()
	performance := a.data.PerformanceSummary()

	active := delivery.Active(orders)
	completed := delivery.CountByStatus(orders, delivery.StatusDelivered)
	pending := delivery.CountByStatus(orders, delivery.StatusAssigned)
	inTransit := delivery.CountByStatus(orders, delivery.StatusPickedUp) +
		delivery.CountByStatus(orders, delivery.StatusOutForDelivery)

	var b strings.Builder

	badge := badgeOnlineStyle.Render("● Online")
	availability := "Ready to receive new orders"
	if !courier.IsOnline {
		badge = badgeOffStyle.Render("● Offline")
		availability = "Not receiving new orders"
	}
	b.WriteString(fmt.Sprintf("Welcome back, %s!  %s  ★ %.1f\n", courier.Name, badge, performance.Rating))
	b.WriteString(mutedStyle.Render(availability) + hintStyle.Render("   (o → toggle availability)"))
	b.WriteString("\n\n")

	stats := []string{
		fmt.Sprintf("Today's Earnings  $%.2f", earnings.Today),
		fmt.Sprintf("Active Orders  %d", len(active)),
		fmt.Sprintf("Completed  %d", completed),
		fmt.Sprintf("Rating  %.1f", performance.Rating),
	}
	b.WriteString(sectionTitleStyle.Render("Overview") + "\n")
	b.WriteString(strings.Join(stats, "   ·   "))
	b.WriteString("\n\n")

	b.WriteString(sectionTitleStyle.Render("Today's Summary") + "\n")
	b.WriteString(fmt.Sprintf("Pending %d   ·   In Transit %d   ·   Delivered %d\n\n", pending, inTransit, completed))

	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Active Orders (%d)", len(active))) + "\n")
	if len(active) == 0 {
		b.WriteString(mutedStyle.Render("No active orders. New orders will appear here.") + "\n")
	} else {
		shown := active
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, o := range shown {
			line := fmt.Sprintf("%s  %s  $%.2f  ·  %s · %s  ·  ETA %s",
				o.ID, o.Status.Label(), o.Amount, o.Pharmacy, o.Distance, o.EstimatedTime)
			if o.Priority == delivery.PriorityHigh {
				line += "  " + toastErrorStyle.Render("high")
			}
			b.WriteString(line + "\n")
			b.WriteString(mutedStyle.Render("  "+strings.Join(o.Items, ", ")) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(sectionTitleStyle.Render("Recent Notifications") + "\n")
	for _, n := range seedNotifications {
		b.WriteString(fmt.Sprintf("• %s — %s %s\n", n.title, n.detail, mutedStyle.Render(n.age)))
	}

	b.WriteString("\n" + hintStyle.Render("n → notifications    g → navigate    c → call    m → message    q → quit"))
	return panelStyle.Render(b.String())
}

// seedNotifications is the fixed notification feed the dashboard shows;
// the panel has no real notification source.
var seedNotifications = []struct {
	title  string
	detail string
	age    string
}{
	{"New Order Assigned", "Order #ORD001 from HealthCare Pharmacy", "2 minutes ago"},
	{"Bonus Earned!", "+$5 for completing 5 deliveries today", "1 hour ago"},
	{"Customer Rating", "5-star rating received from Emma Davis", "3 hours ago"},
}
