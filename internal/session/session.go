// internal/session/session.go
//
// The session store answers "who is using the panel right now". There is
// no real authentication behind it: sign-in fabricates a courier record
// from whatever credentials were typed, and restore trusts whatever record
// was persisted last. That is acceptable only because no real credential
// exists to check.

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// courierFile is the fixed logical key for the single durable record.
const courierFile = "courier.json"

// VehicleType is the courier's registered vehicle.
type VehicleType string

const (
	VehicleBike    VehicleType = "Bike"
	VehicleScooter VehicleType = "Scooter"
	VehicleCar     VehicleType = "Car"
)

// Courier is the signed-in user record. This is the only entity the panel
// persists across restarts.
type Courier struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	VehicleType  VehicleType `json:"vehicleType"`
	Rating       float64     `json:"rating"`
	Level        string      `json:"level"`
	IsOnline     bool        `json:"isOnline"`
	ProfileImage string      `json:"profileImage,omitempty"`
}

// Credentials is the loosely-structured bag a login form submits. Every
// field is optional; nothing is ever validated here.
type Credentials struct {
	Phone    string
	Email    string
	Password string
}

// ProfileUpdate carries the fields a profile edit may change. Nil pointers
// leave the current value untouched.
type ProfileUpdate struct {
	Name         *string
	Phone        *string
	Email        *string
	VehicleType  *VehicleType
	ProfileImage *string
}

// Store owns the current courier and its persisted record.
type Store struct {
	stateDir string
	current  *Courier
}

// NewStore creates a session store persisting under the given state
// directory.
func NewStore(stateDir string) *Store {
	return &Store{stateDir: stateDir}
}

// Current returns the signed-in courier, if any.
func (s *Store) Current() (Courier, bool) {
	if s.current == nil {
		return Courier{}, false
	}
	return *s.current, true
}

// SignIn synthesizes a courier record from the submitted credentials and
// makes it the current session. Unseen fields get fixed defaults. It never
// fails; a persistence error only costs the restore on next launch.
func (s *Store) SignIn(creds Credentials) Courier {
	c := Courier{
		ID:          "1",
		Name:        "John Doe",
		Phone:       "+1234567890",
		Email:       "john@example.com",
		VehicleType: VehicleBike,
		Rating:      4.8,
		Level:       "Gold",
		IsOnline:    true,
	}
	if creds.Phone != "" {
		c.Phone = creds.Phone
	}
	if creds.Email != "" {
		c.Email = creds.Email
	}
	s.current = &c
	_ = s.persist()
	return c
}

// SignOut clears the current courier and removes the persisted record.
// Idempotent.
func (s *Store) SignOut() {
	s.current = nil
	_ = os.Remove(s.courierPath())
}

// UpdateProfile merges the set fields into the current courier and
// re-persists. With no active session it silently does nothing and
// reports false, matching the panel's quiet-failure convention.
func (s *Store) UpdateProfile(update ProfileUpdate) (Courier, bool) {
	if s.current == nil {
		return Courier{}, false
	}
	if update.Name != nil {
		s.current.Name = *update.Name
	}
	if update.Phone != nil {
		s.current.Phone = *update.Phone
	}
	if update.Email != nil {
		s.current.Email = *update.Email
	}
	if update.VehicleType != nil {
		s.current.VehicleType = *update.VehicleType
	}
	if update.ProfileImage != nil {
		s.current.ProfileImage = *update.ProfileImage
	}
	_ = s.persist()
	return *s.current, true
}

// SetOnline flips the availability flag and re-persists.
func (s *Store) SetOnline(online bool) (Courier, bool) {
	if s.current == nil {
		return Courier{}, false
	}
	s.current.IsOnline = online
	_ = s.persist()
	return *s.current, true
}

// Restore loads a previously persisted courier record and, when present,
// makes it the current session without re-authentication. A missing or
// unreadable record reports false and leaves the session empty.
func (s *Store) Restore() (Courier, bool) {
	data, err := os.ReadFile(s.courierPath())
	if err != nil {
		return Courier{}, false
	}
	var c Courier
	if err := json.Unmarshal(data, &c); err != nil {
		return Courier{}, false
	}
	s.current = &c
	return c, true
}

func (s *Store) persist() error {
	if s.current == nil {
		return nil
	}
	if err := os.MkdirAll(s.stateDir, 0o755); err != nil {
		return fmt.Errorf("session: ensure state dir: %w", err)
	}
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return fmt.Errorf("session: encode courier: %w", err)
	}
	if err := os.WriteFile(s.courierPath(), data, 0o644); err != nil {
		return fmt.Errorf("session: write courier: %w", err)
	}
	return nil
}

func (s *Store) courierPath() string {
	return filepath.Join(s.stateDir, courierFile)
}

// Persisted reports whether a courier record exists on disk, without
// loading it into the session.
func (s *Store) Persisted() bool {
	_, err := os.Stat(s.courierPath())
	return !errors.Is(err, fs.ErrNotExist) && err == nil
}
