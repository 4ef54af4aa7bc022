// internal/tui/earnings.go
//
// The earnings screen. Period totals come from the earnings summary; the
// per-period delivery/tip/bonus split is a fixed lookup table, so the base
// figure is just total minus tips minus bonus. Submitting collected cash
// records the amount and zeroes the counter.

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curo-24/delivery-ui/internal/delivery"
)

type earningsState struct {
	period int
}

var earningsPeriods = []string{"today", "week", "month"}

// periodBreakdown is the fixed split the original shows per period.
var periodBreakdown = map[string]struct {
	Deliveries int
	Tips       float64
	Bonus      float64
}{
	"today": {Deliveries: 8, Tips: 15.50, Bonus: 10.00},
	"week":  {Deliveries: 45, Tips: 89.25, Bonus: 50.00},
	"month": {Deliveries: 186, Tips: 356.75, Bonus: 200.00},
}

// incentives and recentTransactions are fixed display panels.
var incentives = []struct {
	Title       string
	Description string
	Status      string
}{
	{"Peak Hour Bonus", "Extra $2 per delivery during 6-9 PM", "active"},
	{"Weekly Target", "Complete 50 deliveries this week (45/50)", "progress"},
	{"Customer Rating Bonus", "Maintain 4.8+ rating", "completed"},
	{"Referral Program", "Refer new delivery partners", "available"},
}

var recentTransactions = []struct {
	ID          string
	Description string
	Amount      float64
	Tip         float64
	Date        string
}{
	{"TXN001", "Order #ORD001 - HealthCare Pharmacy", 12.50, 3.00, "2024-01-15 14:30"},
	{"TXN002", "Peak Hour Bonus", 8.00, 0, "2024-01-15 19:45"},
	{"TXN003", "Order #ORD002 - City Lab Center", 8.75, 2.50, "2024-01-15 16:15"},
}

func newEarningsState() earningsState {
	return earningsState{}
}

func (a *App) updateEarnings(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		a.earnings.period = (a.earnings.period + len(earningsPeriods) - 1) % len(earningsPeriods)
		return nil
	case "right", "l":
		a.earnings.period = (a.earnings.period + 1) % len(earningsPeriods)
		return nil
	case "c":
		return a.submitCash()
	case "d":
		return a.notImplemented("Earnings report download")
	case "p":
		return a.notImplemented("Payout settings")
	case "esc":
		return a.routeTo(screenDashboard)
	}
	return nil
}

// submitCash records the collected cash for hand-over and resets the
// counter. There is no reconciliation behind it; the toast is the receipt.
func (a *App) submitCash() tea.Cmd {
	earnings := a.data.EarningsSummary()
	if earnings.CashCollected == 0 {
		return a.notify("No Cash Pending", "There is nothing to submit right now", false)
	}
	amount := earnings.CashCollected
	zero := 0.0
	a.data.UpdateEarnings(delivery.EarningsPatch{CashCollected: &zero})
	a.logInfo("Cash submitted · $%.2f", amount)
	return a.notify("Cash Submitted!", fmt.Sprintf("$%.2f has been recorded for submission", amount), false)
}

func (a *App) periodTotal(period string) float64 {
	earnings := a.data.EarningsSummary()
	switch period {
	case "week":
		return earnings.Week
	case "month":
		return earnings.Month
	default:
		return earnings.Today
	}
}

func (a *App) viewEarnings() string {
	period := earningsPeriods[a.earnings.period]
	total := a.periodTotal(period)
	split := periodBreakdown[period]
	base := total - split.Tips - split.Bonus
	earnings := a.data.EarningsSummary()

	var tabs []string
	for i, p := range earningsPeriods {
		label := titleCase(p)
		if i == a.earnings.period {
			tabs = append(tabs, highlightStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, hintStyle.Render(label))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")
	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Total · $%.2f", total)) + "\n")
	b.WriteString(fmt.Sprintf("Deliveries %d   ·   Base $%.2f   ·   Tips $%.2f   ·   Bonus $%.2f\n\n",
		split.Deliveries, base, split.Tips, split.Bonus))

	b.WriteString(sectionTitleStyle.Render("Cash Collected") + "\n")
	b.WriteString(fmt.Sprintf("$%.2f pending hand-over %s\n\n", earnings.CashCollected,
		hintStyle.Render("(c → submit)")))

	b.WriteString(sectionTitleStyle.Render("Incentives") + "\n")
	for _, inc := range incentives {
		b.WriteString(fmt.Sprintf("• %s — %s %s\n", inc.Title, inc.Description, mutedStyle.Render("["+inc.Status+"]")))
	}
	b.WriteString("\n")

	b.WriteString(sectionTitleStyle.Render("Recent Transactions") + "\n")
	for _, txn := range recentTransactions {
		line := fmt.Sprintf("%s  $%.2f", txn.Description, txn.Amount)
		if txn.Tip > 0 {
			line += fmt.Sprintf(" + $%.2f tip", txn.Tip)
		}
		b.WriteString(fmt.Sprintf("• %s %s\n", line, mutedStyle.Render(txn.Date)))
	}

	b.WriteString("\n" + hintStyle.Render("←/→ period    c submit cash    d download report    p payout"))
	return panelStyle.Render(b.String())
}
