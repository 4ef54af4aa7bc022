// internal/tui/history.go
//
// The history screen: search plus status/date filters over the full order
// list, with summary statistics derived from whatever the filters keep.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curo-24/delivery-ui/internal/delivery"
)

// historyStatusFilters includes "cancelled" even though the current data
// never produces it; the tab exists in the product and simply stays empty.
var historyStatusFilters = []struct {
	key   string
	label string
}{
	{delivery.FilterAll, "All Orders"},
	{string(delivery.StatusDelivered), "Delivered"},
	{string(delivery.StatusFailed), "Failed"},
	{"cancelled", "Cancelled"},
}

var historyDateFilters = []struct {
	key   string
	label string
}{
	{delivery.PeriodAll, "All Time"},
	{delivery.PeriodToday, "Today"},
	{delivery.PeriodWeek, "This Week"},
	{delivery.PeriodMonth, "This Month"},
}

type historyState struct {
	search       textinput.Model
	statusFilter int
	dateFilter   int
}

func newHistoryState() historyState {
	search := textinput.New()
	search.Placeholder = "Search by order ID, customer, or pharmacy..."
	search.CharLimit = 48
	return historyState{search: search}
}

// filteredHistory applies search, status, and date filters in sequence.
func (a *App) filteredHistory() []delivery.Order {
	status := historyStatusFilters[a.history.statusFilter].key
	period := historyDateFilters[a.history.dateFilter].key
	term := a.history.search.Value()

	var out []delivery.Order
	for _, o := range a.data.Orders() {
		if !delivery.MatchesSearch(o, term) {
			continue
		}
		if !delivery.MatchesFilter(o, status) {
			continue
		}
		if !delivery.InPeriod(o, period) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (a *App) updateHistory(msg tea.KeyMsg) tea.Cmd {
	if a.history.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			a.history.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		a.history.search, cmd = a.history.search.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "/":
		return a.history.search.Focus()
	case "s":
		a.history.statusFilter = (a.history.statusFilter + 1) % len(historyStatusFilters)
		return nil
	case "d":
		a.history.dateFilter = (a.history.dateFilter + 1) % len(historyDateFilters)
		return nil
	case "e":
		return a.notImplemented("History export")
	case "esc":
		return a.routeTo(screenDashboard)
	}
	return nil
}

func (a *App) viewHistory() string {
	filtered := a.filteredHistory()

	totalEarnings := delivery.EarningsTotal(filtered)
	completed := delivery.CountByStatus(filtered, delivery.StatusDelivered)
	failed := delivery.CountByStatus(filtered, delivery.StatusFailed)
	avgRating := delivery.AverageRating(filtered)

	var b strings.Builder
	b.WriteString("Search: " + a.history.search.View() + "\n")
	b.WriteString(fmt.Sprintf("Status: %s   ·   Date: %s\n\n",
		highlightStyle.Render(historyStatusFilters[a.history.statusFilter].label),
		highlightStyle.Render(historyDateFilters[a.history.dateFilter].label)))

	b.WriteString(sectionTitleStyle.Render("Summary Statistics") + "\n")
	b.WriteString(fmt.Sprintf("Earnings $%.2f   ·   Completed %d   ·   Failed %d   ·   Avg Rating %.1f\n\n",
		totalEarnings, completed, failed, avgRating))

	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Orders (%d)", len(filtered))) + "\n")
	if len(filtered) == 0 {
		b.WriteString(mutedStyle.Render("No orders match the current filters.") + "\n")
	}
	for _, o := range filtered {
		line := fmt.Sprintf("%s  %s  $%.2f  ·  %s · %s", o.ID, o.Status.Label(), o.Amount, o.Pharmacy, o.CustomerName)
		if resolved := o.ResolvedAt(); resolved != "" {
			line += "  " + mutedStyle.Render(resolved)
		}
		b.WriteString(line + "\n")
		switch {
		case o.Rating > 0:
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  ★ %d · tip $%.2f · %s", o.Rating, o.Tip, o.Feedback)) + "\n")
		case o.FailureReason != "":
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  %s · %d attempt(s)", o.FailureReason, o.Attempts)) + "\n")
		}
	}

	b.WriteString("\n" + hintStyle.Render("/ search    s status filter    d date filter    e export"))
	return panelStyle.Render(b.String())
}
