// internal/tui/profile.go
//
// The profile screen: the courier card, an edit form backed by the session
// store, the performance summary, and the fixed document/achievement/work
// hours panels.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curo-24/delivery-ui/internal/session"
)

type profileState struct {
	editing bool
	name    textinput.Model
	phone   textinput.Model
	email   textinput.Model
	vehicle session.VehicleType
	focus   int
}

var vehicleTypes = []session.VehicleType{
	session.VehicleBike,
	session.VehicleScooter,
	session.VehicleCar,
}

// Fixed display data the original ships with the profile page.
var profileDocuments = []struct {
	Name   string
	Status string
	Expiry string
}{
	{"Driving License", "verified", "2026-01-10"},
	{"Aadhar Card", "verified", ""},
	{"Vehicle Registration", "pending", "2025-12-31"},
	{"Insurance Certificate", "expired", "2024-01-01"},
}

var profileAchievements = []struct {
	Title       string
	Description string
	Earned      bool
}{
	{"Gold Level Partner", "Completed 500+ deliveries", true},
	{"Speed Demon", "Average delivery time under 25 mins", true},
	{"Customer Favorite", "Maintain 4.8+ rating for 30 days", true},
	{"Perfect Week", "Zero failed deliveries in a week", false},
}

var profileWorkHours = []struct {
	Day    string
	Start  string
	End    string
	Active bool
}{
	{"Monday", "09:00", "18:00", true},
	{"Tuesday", "09:00", "18:00", true},
	{"Wednesday", "09:00", "18:00", true},
	{"Thursday", "09:00", "18:00", true},
	{"Friday", "09:00", "18:00", true},
	{"Saturday", "10:00", "16:00", true},
	{"Sunday", "10:00", "16:00", false},
}

// enterProfile primes the edit form from the current courier so opening
// the editor never shows stale values.
func (a *App) enterProfile() {
	courier, ok := a.sessions.Current()
	if !ok {
		return
	}
	name := textinput.New()
	name.SetValue(courier.Name)
	name.CharLimit = 48
	phone := textinput.New()
	phone.SetValue(courier.Phone)
	phone.CharLimit = 20
	email := textinput.New()
	email.SetValue(courier.Email)
	email.CharLimit = 64

	a.profile = profileState{
		name:    name,
		phone:   phone,
		email:   email,
		vehicle: courier.VehicleType,
	}
}

func (a *App) profileFields() []*textinput.Model {
	return []*textinput.Model{&a.profile.name, &a.profile.phone, &a.profile.email}
}

func (a *App) updateProfile(msg tea.KeyMsg) tea.Cmd {
	if a.profile.editing {
		return a.updateProfileEditor(msg)
	}

	switch msg.String() {
	case "e":
		a.profile.editing = true
		a.profile.focus = 0
		a.profile.name.Focus()
		return nil
	case "u":
		return a.notImplemented("Profile photo upload")
	case "d":
		return a.notImplemented("Document upload")
	case "x":
		return a.logout()
	case "esc":
		return a.routeTo(screenDashboard)
	}
	return nil
}

func (a *App) updateProfileEditor(msg tea.KeyMsg) tea.Cmd {
	fields := a.profileFields()
	switch msg.String() {
	case "esc":
		a.profile.editing = false
		a.enterProfile() // discard edits
		return nil
	case "tab", "down":
		fields[a.profile.focus].Blur()
		a.profile.focus = (a.profile.focus + 1) % len(fields)
		fields[a.profile.focus].Focus()
		return nil
	case "shift+tab", "up":
		fields[a.profile.focus].Blur()
		a.profile.focus = (a.profile.focus + len(fields) - 1) % len(fields)
		fields[a.profile.focus].Focus()
		return nil
	case "ctrl+v":
		for i, v := range vehicleTypes {
			if v == a.profile.vehicle {
				a.profile.vehicle = vehicleTypes[(i+1)%len(vehicleTypes)]
				return nil
			}
		}
		a.profile.vehicle = vehicleTypes[0]
		return nil
	case "enter":
		return a.saveProfile()
	}

	var cmd tea.Cmd
	*fields[a.profile.focus], cmd = fields[a.profile.focus].Update(msg)
	return cmd
}

func (a *App) saveProfile() tea.Cmd {
	name := strings.TrimSpace(a.profile.name.Value())
	phone := strings.TrimSpace(a.profile.phone.Value())
	email := strings.TrimSpace(a.profile.email.Value())
	vehicle := a.profile.vehicle

	_, ok := a.sessions.UpdateProfile(session.ProfileUpdate{
		Name:        &name,
		Phone:       &phone,
		Email:       &email,
		VehicleType: &vehicle,
	})
	a.profile.editing = false
	if !ok {
		return nil
	}
	a.logInfo("Profile updated")
	return a.notify("Profile Updated", "Your profile information has been saved successfully", false)
}

func (a *App) logout() tea.Cmd {
	a.sessions.SignOut()
	a.login = newLoginState()
	a.logInfo("Signed out")
	cmd := a.notify("Signed Out", "See you on your next shift", false)
	return tea.Batch(cmd, a.routeTo(screenLogin))
}

func (a *App) viewProfile() string {
	courier, _ := a.sessions.Current()
	performance := a.data.PerformanceSummary()

	var b strings.Builder

	if a.profile.editing {
		b.WriteString(sectionTitleStyle.Render("Edit Profile") + "\n\n")
		b.WriteString("Name     " + a.profile.name.View() + "\n")
		b.WriteString("Phone    " + a.profile.phone.View() + "\n")
		b.WriteString("Email    " + a.profile.email.View() + "\n")
		b.WriteString(fmt.Sprintf("Vehicle  %s %s\n\n", a.profile.vehicle, hintStyle.Render("(ctrl+v to change)")))
		b.WriteString(hintStyle.Render("tab next field    enter save    esc cancel"))
		return panelStyle.Render(b.String())
	}

	b.WriteString(sectionTitleStyle.Render(courier.Name) + fmt.Sprintf("  %s · ★ %.1f · %s\n", courier.Level, courier.Rating, courier.VehicleType))
	b.WriteString(mutedStyle.Render(courier.Phone+" · "+courier.Email) + "\n\n")

	b.WriteString(sectionTitleStyle.Render("Performance") + "\n")
	b.WriteString(fmt.Sprintf("Rating %.1f   ·   Completed %d   ·   On Time %d\n",
		performance.Rating, performance.CompletedDeliveries, performance.OnTimeDeliveries))
	for _, fb := range performance.CustomerFeedback {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  ★ %d · %s · %s", fb.Rating, fb.Comment, fb.Date)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionTitleStyle.Render("Documents") + "\n")
	for _, doc := range profileDocuments {
		line := fmt.Sprintf("• %s [%s]", doc.Name, doc.Status)
		if doc.Expiry != "" {
			line += mutedStyle.Render(" expires " + doc.Expiry)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionTitleStyle.Render("Achievements") + "\n")
	for _, ach := range profileAchievements {
		marker := "○"
		if ach.Earned {
			marker = "●"
		}
		b.WriteString(fmt.Sprintf("%s %s — %s\n", marker, ach.Title, mutedStyle.Render(ach.Description)))
	}
	b.WriteString("\n")

	b.WriteString(sectionTitleStyle.Render("Work Hours") + "\n")
	for _, wh := range profileWorkHours {
		status := ""
		if !wh.Active {
			status = mutedStyle.Render("  (off)")
		}
		b.WriteString(fmt.Sprintf("%-9s %s–%s%s\n", wh.Day, wh.Start, wh.End, status))
	}

	b.WriteString("\n" + hintStyle.Render("e edit    u photo    d documents    x sign out"))
	return panelStyle.Render(b.String())
}
