package domain

import "maps"

// Session is the signed-in user as returned by sign-in. A nil *Session means anonymous.
type Session struct {
	UserID      string
	DisplayName string
	Email       string
	AuthToken   string
	IsAdmin     bool

	// Profile keeps any other fields the sign-in response carried.
	Profile map[string]any
}

func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	c := *s
	c.Profile = maps.Clone(s.Profile)
	return &c
}
