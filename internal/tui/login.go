// internal/tui/login.go
//
// The login screen. Nothing is verified: the phone/OTP and email/password
// flows only check that the fields were filled in, then hand the bag of
// credentials to the session store after a simulated network delay.

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curo-24/delivery-ui/internal/session"
)

type loginMethod int

const (
	methodPhone loginMethod = iota
	methodEmail
)

type loginState struct {
	method   loginMethod
	phone    textinput.Model
	otp      textinput.Model
	email    textinput.Model
	password textinput.Model
	focus    int
	otpSent  bool
	sending  bool
	loading  bool
}

func newLoginState() loginState {
	phone := textinput.New()
	phone.Placeholder = "+1 (555) 123-4567"
	phone.CharLimit = 20
	phone.Focus()

	otp := textinput.New()
	otp.Placeholder = "6-digit code"
	otp.CharLimit = 6

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword

	return loginState{
		method:   methodPhone,
		phone:    phone,
		otp:      otp,
		email:    email,
		password: password,
	}
}

// fields returns the input fields for the active method, in focus order.
func (l *loginState) fields() []*textinput.Model {
	if l.method == methodPhone {
		return []*textinput.Model{&l.phone, &l.otp}
	}
	return []*textinput.Model{&l.email, &l.password}
}

func (l *loginState) focusField(idx int) {
	fields := l.fields()
	if len(fields) == 0 {
		return
	}
	if idx < 0 {
		idx = len(fields) - 1
	}
	idx %= len(fields)
	l.focus = idx
	for i, f := range fields {
		if i == idx {
			f.Focus()
		} else {
			f.Blur()
		}
	}
}

func (a *App) updateLogin(msg tea.KeyMsg) tea.Cmd {
	if a.login.loading || a.login.sending {
		return nil
	}

	switch msg.String() {
	case "ctrl+t":
		if a.login.method == methodPhone {
			a.login.method = methodEmail
		} else {
			a.login.method = methodPhone
		}
		a.login.focusField(0)
		return nil
	case "tab", "down":
		a.login.focusField(a.login.focus + 1)
		return nil
	case "shift+tab", "up":
		a.login.focusField(a.login.focus - 1)
		return nil
	case "ctrl+b":
		return a.notImplemented("Biometric login")
	case "enter":
		return a.handleLoginSubmit()
	}

	fields := a.login.fields()
	if a.login.focus < len(fields) {
		var cmd tea.Cmd
		*fields[a.login.focus], cmd = fields[a.login.focus].Update(msg)
		return cmd
	}
	return nil
}

// handleLoginSubmit runs the step the focused field implies: enter on the
// phone field requests an OTP, enter on any other field submits the form.
func (a *App) handleLoginSubmit() tea.Cmd {
	l := &a.login
	if l.method == methodPhone && l.focus == 0 && !l.otpSent {
		return a.sendOTP()
	}
	return a.submitLogin()
}

// sendOTP validates the phone number is present, then simulates delivery.
// No state mutation happens on a validation failure; the courier retries.
func (a *App) sendOTP() tea.Cmd {
	if strings.TrimSpace(a.login.phone.Value()) == "" {
		return a.notify("Phone Required", "Please enter your phone number", true)
	}
	a.login.sending = true
	return tea.Tick(otpSendLatency, func(time.Time) tea.Msg {
		return otpSentMsg{}
	})
}

// submitLogin validates the active method's fields, then resolves after the
// fixed sign-in latency. Not cancellable, no retry semantics: a single
// optimistic resolution.
func (a *App) submitLogin() tea.Cmd {
	l := &a.login
	phone := strings.TrimSpace(l.phone.Value())
	email := strings.TrimSpace(l.email.Value())

	if l.method == methodPhone && (phone == "" || strings.TrimSpace(l.otp.Value()) == "") {
		return a.notify("Login Failed", "Please enter phone number and OTP", true)
	}
	if l.method == methodEmail && (email == "" || l.password.Value() == "") {
		return a.notify("Login Failed", "Please enter email and password", true)
	}

	creds := session.Credentials{
		Phone:    phone,
		Email:    email,
		Password: l.password.Value(),
	}
	l.loading = true
	return tea.Tick(signInLatency, func(time.Time) tea.Msg {
		return signInResolvedMsg{creds: creds}
	})
}

func (a *App) viewLogin() string {
	l := &a.login
	var b strings.Builder

	b.WriteString(sectionTitleStyle.Render("Courier Panel Login"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Secure login to access your delivery dashboard"))
	b.WriteString("\n\n")

	if l.method == methodPhone {
		b.WriteString("Method: " + highlightStyle.Render("Phone + OTP") + hintStyle.Render("  (ctrl+t for email)"))
		b.WriteString("\n\n")
		b.WriteString("Phone    " + l.phone.View() + "\n")
		if l.otpSent {
			b.WriteString("OTP      " + l.otp.View() + "\n")
		} else if l.sending {
			b.WriteString(mutedStyle.Render("Sending verification code...") + "\n")
		} else {
			b.WriteString(mutedStyle.Render("Press enter on the phone field to request a code") + "\n")
		}
	} else {
		b.WriteString("Method: " + highlightStyle.Render("Email + Password") + hintStyle.Render("  (ctrl+t for phone)"))
		b.WriteString("\n\n")
		b.WriteString("Email    " + l.email.View() + "\n")
		b.WriteString("Password " + l.password.View() + "\n")
	}

	b.WriteString("\n")
	if l.loading {
		b.WriteString(mutedStyle.Render("Signing you in..."))
	} else {
		b.WriteString(hintStyle.Render("tab → next field    enter → continue    ctrl+b → biometric login"))
	}
	return panelStyle.Render(b.String())
}
