// internal/tui/navigation.go
//
// The navigation screen. There is no real GPS or routing: a recurring tick
// overwrites a simulated location while the screen is shown, the traffic
// card is a fixed snapshot, and "optimizing" the route only flips a label.
// The tick carries a generation counter; leaving the screen bumps the
// counter so the stale tick chain dies instead of leaking.

package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curo-24/delivery-ui/internal/delivery"
)

// location is the simulated GPS fix.
type location struct {
	Lat      float64
	Lng      float64
	Accuracy int
}

// trafficInfo is the fixed traffic snapshot the original shows.
type trafficInfo struct {
	Level           string
	Delay           string
	AlternateRoutes int
}

type navState struct {
	gen       int
	loc       *location
	cursor    int
	routeID   string
	optimized bool
	traffic   trafficInfo
}

// randomLocation jitters around lower Manhattan, the original's fixed base
// coordinate.
func randomLocation() location {
	return location{
		Lat:      40.7128 + (rand.Float64()-0.5)*0.01,
		Lng:      -74.0060 + (rand.Float64()-0.5)*0.01,
		Accuracy: rand.Intn(10) + 5,
	}
}

type locationTickMsg struct {
	gen int
	loc location
}

// enterNavigation starts a fresh tick chain for this visit to the screen.
func (a *App) enterNavigation() tea.Cmd {
	a.nav.gen++
	a.nav.loc = nil
	a.nav.cursor = 0
	a.nav.traffic = trafficInfo{Level: "moderate", Delay: "5-10 mins", AlternateRoutes: 2}
	return a.scheduleLocationTick(a.nav.gen)
}

func (a *App) scheduleLocationTick(gen int) tea.Cmd {
	return tea.Tick(locationInterval, func(time.Time) tea.Msg {
		return locationTickMsg{gen: gen, loc: randomLocation()}
	})
}

// handleLocationTick applies the fix and schedules the next one, unless the
// courier has left the screen since this tick was scheduled.
func (a *App) handleLocationTick(msg locationTickMsg) tea.Cmd {
	if msg.gen != a.nav.gen || a.screen != screenNavigation {
		return nil
	}
	loc := msg.loc
	a.nav.loc = &loc
	return a.scheduleLocationTick(msg.gen)
}

func (a *App) updateNavigation(msg tea.KeyMsg) tea.Cmd {
	active := delivery.Active(a.data.Orders())

	switch msg.String() {
	case "up", "k":
		if a.nav.cursor > 0 {
			a.nav.cursor--
		}
		return nil
	case "down", "j":
		if a.nav.cursor < len(active)-1 {
			a.nav.cursor++
		}
		return nil
	case "enter":
		if a.nav.cursor < len(active) {
			o := active[a.nav.cursor]
			a.nav.routeID = o.ID
			a.logInfo("Navigation started · %s", o.ID)
			return a.notify("Navigation Started", fmt.Sprintf("Navigating to %s", o.Pharmacy), false)
		}
		return nil
	case "o":
		a.nav.optimized = true
		return a.notify("Route Optimized!", "Found the fastest route for all your deliveries", false)
	case "t":
		return a.notImplemented("Alternate route selection")
	case "v":
		return a.notImplemented("Vehicle selection")
	case "f":
		return a.notImplemented("Full map view")
	case "esc":
		return a.routeTo(screenDashboard)
	}
	return nil
}

func (a *App) viewNavigation() string {
	active := delivery.Active(a.data.Orders())
	var b strings.Builder

	b.WriteString(sectionTitleStyle.Render("Current Location") + "\n")
	if a.nav.loc == nil {
		b.WriteString(mutedStyle.Render("Acquiring GPS signal...") + "\n\n")
	} else {
		b.WriteString(fmt.Sprintf("%.5f, %.5f  ·  ±%d m\n\n", a.nav.loc.Lat, a.nav.loc.Lng, a.nav.loc.Accuracy))
	}

	b.WriteString(sectionTitleStyle.Render("Traffic") + "\n")
	b.WriteString(fmt.Sprintf("%s · expect %s delay · %d alternate route(s)\n\n",
		a.nav.traffic.Level, a.nav.traffic.Delay, a.nav.traffic.AlternateRoutes))

	routeLabel := "Route: standard"
	if a.nav.optimized {
		routeLabel = "Route: " + highlightStyle.Render("Optimized")
	}
	b.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Deliveries (%d)", len(active))) + "  " + routeLabel + "\n")
	if len(active) == 0 {
		b.WriteString(mutedStyle.Render("No active deliveries to route.") + "\n")
	}
	for i, o := range active {
		marker := "  "
		if i == a.nav.cursor {
			marker = highlightStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s · %s · %s · ETA %s", marker, o.ID, o.Pharmacy, o.Distance, o.EstimatedTime)
		if o.ID == a.nav.routeID {
			line += "  " + badgeOnlineStyle.Render("navigating")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("Map preview unavailable in terminal mode") + "\n")
	b.WriteString(hintStyle.Render("↑/↓ select    enter navigate    o optimize    t traffic    v vehicle    f map"))
	return panelStyle.Render(b.String())
}
