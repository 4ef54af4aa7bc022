// internal/tui/app.go
//
// This is the main TUI for the courier panel. It uses bubbletea, which
// follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
//
// Every screen of the panel is one value of the screen enum below; the
// route guard in routeTo keeps everything except login behind an active
// session.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/curo-24/delivery-ui/internal/config"
	"github.com/curo-24/delivery-ui/internal/delivery"
	"github.com/curo-24/delivery-ui/internal/logbook"
	"github.com/curo-24/delivery-ui/internal/session"
)

// screen represents which part of the panel is showing.
type screen int

const (
	screenLoading screen = iota // session restore still in flight
	screenLogin
	screenDashboard
	screenOrders
	screenNavigation
	screenEarnings
	screenHistory
	screenProfile
	screenSettings
)

const (
	toastLifetime    = 4 * time.Second
	signInLatency    = 1500 * time.Millisecond
	otpSendLatency   = 1500 * time.Millisecond
	locationInterval = 5 * time.Second
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#5B8DEF"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	toastStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	toastErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	badgeOnlineStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	badgeOffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	highlightStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
)

func (s screen) title() string {
	switch s {
	case screenLoading:
		return "Loading"
	case screenLogin:
		return "Login"
	case screenDashboard:
		return "Dashboard"
	case screenOrders:
		return "Orders"
	case screenNavigation:
		return "Navigation"
	case screenEarnings:
		return "Earnings"
	case screenHistory:
		return "History"
	case screenProfile:
		return "Profile"
	case screenSettings:
		return "Settings"
	default:
		return "Courier Panel"
	}
}

// toast is the footer notification. A destructive toast marks a validation
// failure or another action the courier should look at.
type toast struct {
	title       string
	description string
	destructive bool
	visible     bool
}

// sessionRestoredMsg completes the startup restore. The route guard makes
// no decision before it arrives.
type sessionRestoredMsg struct {
	courier session.Courier
	ok      bool
}

// signInResolvedMsg fires after the simulated network latency; the actual
// store mutation happens when it is handled, keeping writes on the update
// loop.
type signInResolvedMsg struct {
	creds session.Credentials
}

type otpSentMsg struct{}

type toastExpiredMsg struct {
	seq int
}

// App is the whole panel model. In bubbletea, this holds ALL the state.
type App struct {
	cfg      *config.Dir
	sessions *session.Store
	data     *delivery.Store
	logbook  *logbook.Logbook

	screen  screen
	loading bool
	width   int
	height  int
	loader  spinner.Model

	toast    toast
	toastSeq int

	login    loginState
	orders   ordersState
	nav      navState
	earnings earningsState
	history  historyState
	profile  profileState
	settings settingsState
}

// NewApp wires the stores into a fresh panel model. The delivery store is
// seeded here, once per session.
func NewApp(cfg *config.Dir) *App {
	sessions := session.NewStore(cfg.StateDir())
	data := delivery.NewStore()
	data.Seed()

	logPath := filepath.Join(cfg.LogsDir(), "journey.log")
	lb, err := logbook.New(logPath)
	if err != nil {
		lb = nil
	}

	loader := spinner.New()
	loader.Spinner = spinner.Dot

	app := &App{
		cfg:      cfg,
		sessions: sessions,
		data:     data,
		logbook:  lb,
		screen:   screenLoading,
		loading:  true,
		loader:   loader,
		login:    newLoginState(),
		orders:   newOrdersState(),
		earnings: newEarningsState(),
		history:  newHistoryState(),
		settings: newSettingsState(),
	}
	app.logInfo("Session opened")
	return app
}

// Init kicks off the session restore; the guard shows the loader until it
// resolves.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loader.Tick, a.restoreSession())
}

func (a *App) restoreSession() tea.Cmd {
	return func() tea.Msg {
		courier, ok := a.sessions.Restore()
		return sessionRestoredMsg{courier: courier, ok: ok}
	}
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.orders.list.SetSize(max(0, msg.Width-6), max(10, msg.Height-14))
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.loader, cmd = a.loader.Update(msg)
		return a, cmd

	case sessionRestoredMsg:
		a.loading = false
		if msg.ok {
			a.logInfo("Session restored for %s", msg.courier.Name)
			return a, a.routeTo(screenDashboard)
		}
		return a, a.routeTo(screenDashboard) // guard redirects to login

	case signInResolvedMsg:
		courier := a.sessions.SignIn(msg.creds)
		a.login = newLoginState()
		a.logInfo("Signed in as %s (%s)", courier.Name, courier.Phone)
		cmd := a.notify("Welcome Back!", "Successfully logged in to your delivery panel", false)
		return a, tea.Batch(cmd, a.routeTo(screenDashboard))

	case otpSentMsg:
		a.login.sending = false
		a.login.otpSent = true
		return a, a.notify("OTP Sent!", "Check your phone for the verification code", false)

	case toastExpiredMsg:
		if msg.seq == a.toastSeq {
			a.toast.visible = false
		}
		return a, nil

	case locationTickMsg:
		return a, a.handleLocationTick(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey dispatches keys globally, then to the current screen. A visible
// toast is dismissed by the first key press after it appears.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.loading {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, nil
	}

	a.toast.visible = false

	key := msg.String()
	if key == "ctrl+c" {
		a.logInfo("Session closed")
		return a, tea.Quit
	}

	// Screen switching mirrors the original bottom navigation. Disabled
	// while an input field has focus so digits reach the field.
	if !a.typing() {
		switch key {
		case "1":
			return a, a.routeTo(screenDashboard)
		case "2":
			return a, a.routeTo(screenOrders)
		case "3":
			return a, a.routeTo(screenNavigation)
		case "4":
			return a, a.routeTo(screenEarnings)
		case "5":
			return a, a.routeTo(screenHistory)
		case "6":
			return a, a.routeTo(screenProfile)
		case "7":
			return a, a.routeTo(screenSettings)
		case "q":
			if a.screen == screenDashboard {
				a.logInfo("Session closed")
				return a, tea.Quit
			}
		}
	}

	switch a.screen {
	case screenLogin:
		return a, a.updateLogin(msg)
	case screenDashboard:
		return a, a.updateDashboard(msg)
	case screenOrders:
		return a, a.updateOrders(msg)
	case screenNavigation:
		return a, a.updateNavigation(msg)
	case screenEarnings:
		return a, a.updateEarnings(msg)
	case screenHistory:
		return a, a.updateHistory(msg)
	case screenProfile:
		return a, a.updateProfile(msg)
	case screenSettings:
		return a, a.updateSettings(msg)
	}
	return a, nil
}

// typing reports whether a text field currently owns the keyboard.
func (a *App) typing() bool {
	switch a.screen {
	case screenLogin:
		return true
	case screenHistory:
		return a.history.search.Focused()
	case screenProfile:
		return a.profile.editing
	}
	return false
}

// routeTo is the route guard: while the session is still loading no
// decision is made, and once loaded every navigation to an authenticated
// screen re-checks for a signed-in courier. It holds no state of its own.
func (a *App) routeTo(target screen) tea.Cmd {
	if a.loading {
		return nil
	}
	if _, ok := a.sessions.Current(); !ok && target != screenLogin {
		a.screen = screenLogin
		return nil
	}
	prev := a.screen
	a.screen = target
	if prev == screenNavigation && target != screenNavigation {
		a.nav.gen++ // cancels the in-flight location tick
	}
	if target == screenOrders {
		a.refreshOrders()
	}
	if target == screenNavigation && prev != screenNavigation {
		return a.enterNavigation()
	}
	if target == screenProfile && prev != screenProfile {
		a.enterProfile()
	}
	return nil
}

// notify sets the footer toast and schedules its expiry. Every user-facing
// acknowledgment in the panel goes through here.
func (a *App) notify(title, description string, destructive bool) tea.Cmd {
	a.toast = toast{title: title, description: description, destructive: destructive, visible: true}
	a.toastSeq++
	seq := a.toastSeq
	if a.logbook != nil {
		a.logbook.Toast(title, description, destructive)
	}
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// notImplemented is the shared placeholder handler: every control without a
// real backing operation acknowledges through it. It never errors and never
// stays silent.
func (a *App) notImplemented(feature string) tea.Cmd {
	return a.notify("Not implemented", fmt.Sprintf("%s isn't available in this build yet", feature), false)
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

// View renders the current state to a string.
func (a *App) View() string {
	if a.loading {
		return fmt.Sprintf("\n  %s Loading your delivery panel...\n", a.loader.View())
	}

	var content string
	switch a.screen {
	case screenLogin:
		content = a.viewLogin()
	case screenDashboard:
		content = a.viewDashboard()
	case screenOrders:
		content = a.viewOrders()
	case screenNavigation:
		content = a.viewNavigation()
	case screenEarnings:
		content = a.viewEarnings()
	case screenHistory:
		content = a.viewHistory()
	case screenProfile:
		content = a.viewProfile()
	case screenSettings:
		content = a.viewSettings()
	default:
		content = "Nothing to show"
	}

	header := headerStyle.Render(fmt.Sprintf("⬡ COURIER PANEL · %s", a.screen.title()))
	sections := []string{header, content}
	if a.screen != screenLogin {
		sections = append(sections, a.renderNavBar())
	}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	sections = append(sections, a.renderToast())
	return strings.Join(sections, "\n")
}

func (a *App) renderNavBar() string {
	entries := []struct {
		key  string
		s    screen
		name string
	}{
		{"1", screenDashboard, "Home"},
		{"2", screenOrders, "Orders"},
		{"3", screenNavigation, "Navigate"},
		{"4", screenEarnings, "Earnings"},
		{"5", screenHistory, "History"},
		{"6", screenProfile, "Profile"},
		{"7", screenSettings, "Settings"},
	}
	var parts []string
	for _, e := range entries {
		label := fmt.Sprintf("%s %s", e.key, e.name)
		if a.screen == e.s {
			parts = append(parts, highlightStyle.Render(label))
		} else {
			parts = append(parts, hintStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(4)
	if len(lines) == 0 {
		return ""
	}
	head := sectionTitleStyle.Render(fmt.Sprintf("LOG · %s", filepath.Base(a.logbook.Path())))
	body := mutedStyle.Render(strings.Join(lines, "\n"))
	return panelStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}

func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func (a *App) renderToast() string {
	if !a.toast.visible {
		return ""
	}
	style := toastStyle
	if a.toast.destructive {
		style = toastErrorStyle
	}
	return style.Render(fmt.Sprintf("▌ %s · %s", a.toast.title, a.toast.description))
}
