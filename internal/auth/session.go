package auth

import "github.com/google/uuid"

// Flash categories understood by the templates.
const (
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is the server-side state of one browser session.
type Session struct {
	ID       string  `json:"-"`
	LoggedIn bool    `json:"logged_in,omitempty"`
	UserID   uint    `json:"user_id,omitempty"`
	Role     string  `json:"role,omitempty"`
	Flashes  []Flash `json:"flashes,omitempty"`

	modified   bool
	fresh      bool
	previousID string
}

// NewSession returns an empty session with a new random ID.
func NewSession() *Session {
	return &Session{ID: uuid.NewString(), fresh: true}
}

// Login records the authenticated user and moves the session to a new ID.
func (s *Session) Login(userID uint, role string) {
	if !s.fresh && s.previousID == "" {
		s.previousID = s.ID
	}
	s.ID = uuid.NewString()
	s.fresh = true
	s.LoggedIn = true
	s.UserID = userID
	s.Role = role
	s.modified = true
}

// Logout clears the authentication marker, user id and role.
func (s *Session) Logout() {
	s.LoggedIn = false
	s.UserID = 0
	s.Role = ""
	s.modified = true
}

// Flash queues a message for the next rendered page.
func (s *Session) Flash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
	s.modified = true
}

// PopFlashes returns the queued messages and discards them.
func (s *Session) PopFlashes() []Flash {
	if len(s.Flashes) == 0 {
		return nil
	}
	flashes := s.Flashes
	s.Flashes = nil
	s.modified = true
	return flashes
}

// Modified reports whether the session changed since it was loaded.
func (s *Session) Modified() bool {
	return s.modified
}

// Fresh reports whether the browser does not hold a cookie for the current ID yet.
func (s *Session) Fresh() bool {
	return s.fresh
}

// PreviousID is the ID the session had before Login rotated it, if any.
func (s *Session) PreviousID() string {
	return s.previousID
}
