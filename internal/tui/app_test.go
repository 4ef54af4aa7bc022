package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/curo-24/delivery-ui/internal/config"
	"github.com/curo-24/delivery-ui/internal/delivery"
	"github.com/curo-24/delivery-ui/internal/session"
)

func newTestConfig(t *testing.T) *config.Dir {
	t.Helper()
	base := t.TempDir()
	if err := config.InitPanelDir(base); err != nil {
		t.Fatalf("init panel dir: %v", err)
	}
	cfg, err := config.New(base)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	return cfg
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	return NewApp(newTestConfig(t))
}

func asApp(t *testing.T, model tea.Model) *App {
	t.Helper()
	app, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type: %T", model)
	}
	return app
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// startedApp resolves the startup restore so the guard has decided a screen.
func startedApp(t *testing.T) *App {
	t.Helper()
	app := newTestApp(t)
	model, _ := app.Update(app.restoreSession()())
	return asApp(t, model)
}

// signedInApp drives the login resolution and lands on the dashboard.
func signedInApp(t *testing.T, creds session.Credentials) *App {
	t.Helper()
	app := startedApp(t)
	model, _ := app.Update(signInResolvedMsg{creds: creds})
	return asApp(t, model)
}

func TestStartupWithoutSessionLandsOnLogin(t *testing.T) {
	app := startedApp(t)
	if app.loading {
		t.Fatalf("loading must be cleared after restore resolves")
	}
	if app.screen != screenLogin {
		t.Fatalf("expected login screen without a session, got %d", app.screen)
	}
}

func TestStartupRestoresPersistedSession(t *testing.T) {
	cfg := newTestConfig(t)
	first := NewApp(cfg)
	model, _ := first.Update(first.restoreSession()())
	first = asApp(t, model)
	model, _ = first.Update(signInResolvedMsg{creds: session.Credentials{Phone: "+15551234567"}})
	first = asApp(t, model)
	if first.screen != screenDashboard {
		t.Fatalf("expected dashboard after sign-in, got %d", first.screen)
	}

	second := NewApp(cfg)
	model, _ = second.Update(second.restoreSession()())
	second = asApp(t, model)
	if second.screen != screenDashboard {
		t.Fatalf("restored session should skip login, got screen %d", second.screen)
	}
	courier, ok := second.sessions.Current()
	if !ok {
		t.Fatalf("expected restored courier")
	}
	if courier.Phone != "+15551234567" {
		t.Fatalf("restored courier phone = %s", courier.Phone)
	}
}

func TestRouteGuardRedirectsToLogin(t *testing.T) {
	app := startedApp(t)
	for _, target := range []screen{screenDashboard, screenOrders, screenEarnings, screenSettings} {
		app.routeTo(target)
		if app.screen != screenLogin {
			t.Fatalf("guard let target %d through without a session", target)
		}
	}
}

func TestRouteGuardDecidesNothingWhileLoading(t *testing.T) {
	app := newTestApp(t)
	if !app.loading {
		t.Fatalf("fresh app should be loading")
	}
	app.routeTo(screenDashboard)
	if app.screen != screenLoading {
		t.Fatalf("guard must not route before restore resolves, got %d", app.screen)
	}
}

func TestSignInAcceptFirstOrderFlow(t *testing.T) {
	app := signedInApp(t, session.Credentials{Phone: "+15551234567"})
	if app.screen != screenDashboard {
		t.Fatalf("expected dashboard after sign-in, got %d", app.screen)
	}
	if !app.toast.visible || app.toast.title != "Welcome Back!" {
		t.Fatalf("expected welcome toast, got %+v", app.toast)
	}
	if got := len(delivery.Active(app.data.Orders())); got != 3 {
		t.Fatalf("expected 3 active orders, got %d", got)
	}

	model, _ := app.Update(keyRunes("2"))
	app = asApp(t, model)
	if app.screen != screenOrders {
		t.Fatalf("expected orders screen, got %d", app.screen)
	}

	// move from All to the New tab
	model, _ = app.Update(keyRunes("l"))
	app = asApp(t, model)
	if key := orderFilters[app.orders.filter].key; key != string(delivery.StatusAssigned) {
		t.Fatalf("expected assigned filter, got %s", key)
	}
	if got := len(app.orders.list.Items()); got != 1 {
		t.Fatalf("expected 1 new order, got %d", got)
	}

	model, _ = app.Update(keyRunes("a"))
	app = asApp(t, model)
	if !app.toast.visible || app.toast.title != "Order Accepted" {
		t.Fatalf("expected acceptance toast, got %+v", app.toast)
	}
	o, ok := app.data.Order("ORD001")
	if !ok || o.Status != delivery.StatusAccepted {
		t.Fatalf("ORD001 should be accepted, got %+v", o)
	}
	if got := len(app.orders.list.Items()); got != 0 {
		t.Fatalf("accepted order must leave the New tab, %d items remain", got)
	}

	// the Accepted tab now holds it
	model, _ = app.Update(keyRunes("l"))
	app = asApp(t, model)
	if key := orderFilters[app.orders.filter].key; key != string(delivery.StatusAccepted) {
		t.Fatalf("expected accepted filter, got %s", key)
	}
	if got := len(app.orders.list.Items()); got != 1 {
		t.Fatalf("expected accepted order under its tab, got %d items", got)
	}
}

func TestAcceptIgnoresNonAssignedOrders(t *testing.T) {
	app := signedInApp(t, session.Credentials{})
	model, _ := app.Update(keyRunes("2"))
	app = asApp(t, model)

	// All tab, first item is ORD001; accept it, then try to accept again
	model, _ = app.Update(keyRunes("a"))
	app = asApp(t, model)
	model, cmd := app.Update(keyRunes("a"))
	app = asApp(t, model)
	if cmd != nil {
		t.Fatalf("second accept on a non-assigned order should be a no-op")
	}
	o, _ := app.data.Order("ORD001")
	if o.Status != delivery.StatusAccepted {
		t.Fatalf("status must stay accepted, got %s", o.Status)
	}
}

func TestAdvanceToDeliveredCreditsEarnings(t *testing.T) {
	app := signedInApp(t, session.Credentials{})
	model, _ := app.Update(keyRunes("2"))
	app = asApp(t, model)
	app.orders.detailID = "ORD003"

	model, _ = app.Update(keyRunes("n"))
	app = asApp(t, model)

	o, ok := app.data.Order("ORD003")
	if !ok || o.Status != delivery.StatusDelivered {
		t.Fatalf("ORD003 should be delivered, got %+v", o)
	}
	if o.DeliveredAt == "" {
		t.Fatalf("delivered order must carry a delivery timestamp")
	}
	if got := app.data.EarningsSummary().Today; got != 125.50+78.50 {
		t.Fatalf("today's earnings = %.2f, want %.2f", got, 125.50+78.50)
	}
	if !app.toast.visible || app.toast.title != "Status Updated" {
		t.Fatalf("expected status toast, got %+v", app.toast)
	}
}

func TestAdvanceStopsAtTerminalStatus(t *testing.T) {
	app := signedInApp(t, session.Credentials{})
	model, _ := app.Update(keyRunes("2"))
	app = asApp(t, model)
	app.orders.detailID = "ORD006" // failed

	model, cmd := app.Update(keyRunes("n"))
	app = asApp(t, model)
	if cmd != nil {
		t.Fatalf("terminal orders have no next step")
	}
	o, _ := app.data.Order("ORD006")
	if o.Status != delivery.StatusFailed {
		t.Fatalf("failed order must stay failed, got %s", o.Status)
	}
}

func TestOnlineToggle(t *testing.T) {
	app := signedInApp(t, session.Credentials{})

	model, _ := app.Update(keyRunes("o"))
	app = asApp(t, model)
	courier, _ := app.sessions.Current()
	if courier.IsOnline {
		t.Fatalf("courier should be offline after toggle")
	}
	if app.toast.title != "Going Offline" {
		t.Fatalf("wrong toast: %+v", app.toast)
	}

	model, _ = app.Update(keyRunes("o"))
	app = asApp(t, model)
	courier, _ = app.sessions.Current()
	if !courier.IsOnline {
		t.Fatalf("courier should be back online")
	}
	if app.toast.title != "Going Online" {
		t.Fatalf("wrong toast: %+v", app.toast)
	}
}

func TestPlaceholderActionsAlwaysToast(t *testing.T) {
	app := signedInApp(t, session.Credentials{})

	model, cmd := app.Update(keyRunes("g"))
	app = asApp(t, model)
	if cmd == nil {
		t.Fatalf("placeholder action must schedule a toast expiry")
	}
	if !app.toast.visible || app.toast.title != "Not implemented" {
		t.Fatalf("expected placeholder toast, got %+v", app.toast)
	}
	if app.toast.destructive {
		t.Fatalf("placeholder toasts are informational")
	}
	if !strings.Contains(app.toast.description, "Order navigation shortcut") {
		t.Fatalf("toast should name the feature: %s", app.toast.description)
	}
}

func TestToastExpiryHonorsSequence(t *testing.T) {
	app := signedInApp(t, session.Credentials{})
	app.notify("First", "one", false)
	stale := app.toastSeq
	app.notify("Second", "two", false)

	model, _ := app.Update(toastExpiredMsg{seq: stale})
	app = asApp(t, model)
	if !app.toast.visible {
		t.Fatalf("stale expiry must not clear a newer toast")
	}

	model, _ = app.Update(toastExpiredMsg{seq: app.toastSeq})
	app = asApp(t, model)
	if app.toast.visible {
		t.Fatalf("matching expiry should clear the toast")
	}
}

func TestKeyPressDismissesToast(t *testing.T) {
	app := signedInApp(t, session.Credentials{})
	if !app.toast.visible {
		t.Fatalf("expected welcome toast")
	}
	model, _ := app.Update(keyRunes("z"))
	app = asApp(t, model)
	if app.toast.visible {
		t.Fatalf("any key should dismiss the toast")
	}
}

func TestLocationTickLifecycle(t *testing.T) {
	app := signedInApp(t, session.Credentials{})

	model, cmd := app.Update(keyRunes("3"))
	app = asApp(t, model)
	if app.screen != screenNavigation {
		t.Fatalf("expected navigation screen, got %d", app.screen)
	}
	if cmd == nil {
		t.Fatalf("entering navigation should schedule the first tick")
	}
	if app.nav.loc != nil {
		t.Fatalf("location starts unknown until the first tick")
	}
	gen := app.nav.gen

	fix := location{Lat: 40.71, Lng: -74.0, Accuracy: 7}
	model, cmd = app.Update(locationTickMsg{gen: gen, loc: fix})
	app = asApp(t, model)
	if app.nav.loc == nil || *app.nav.loc != fix {
		t.Fatalf("tick should apply the fix, got %+v", app.nav.loc)
	}
	if cmd == nil {
		t.Fatalf("applied tick should schedule the next one")
	}

	model, _ = app.Update(keyRunes("1"))
	app = asApp(t, model)
	if app.nav.gen == gen {
		t.Fatalf("leaving navigation must bump the tick generation")
	}

	model, cmd = app.Update(locationTickMsg{gen: gen, loc: randomLocation()})
	app = asApp(t, model)
	if cmd != nil {
		t.Fatalf("stale tick must not reschedule")
	}
	if *app.nav.loc != fix {
		t.Fatalf("stale tick must not overwrite the last fix")
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	app := signedInApp(t, session.Credentials{})
	model, _ := app.Update(keyRunes("6"))
	app = asApp(t, model)
	if app.screen != screenProfile {
		t.Fatalf("expected profile screen, got %d", app.screen)
	}

	model, _ = app.Update(keyRunes("x"))
	app = asApp(t, model)
	if app.screen != screenLogin {
		t.Fatalf("logout should land on login, got %d", app.screen)
	}
	if _, ok := app.sessions.Current(); ok {
		t.Fatalf("session must be cleared on logout")
	}
	if app.sessions.Persisted() {
		t.Fatalf("persisted record must be removed on logout")
	}
}

func TestQuitFromDashboard(t *testing.T) {
	app := signedInApp(t, session.Credentials{})
	_, cmd := app.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
