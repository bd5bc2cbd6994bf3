package dto

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/storefront-client/internal/domain"
)

var sessionKeys = []string{"_id", "name", "email", "token", "isAdmin"}

// Session is the sign-in payload. Fields beyond the known ones survive a round trip in Extra.
type Session struct {
	ID      string
	Name    string
	Email   string
	Token   string
	IsAdmin bool
	Extra   map[string]any
}

type sessionKnown struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var known sessionKnown
	if err := json.Unmarshal(data, &known); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}
	for _, k := range sessionKeys {
		delete(all, k)
	}
	if len(all) == 0 {
		all = nil
	}

	*s = Session{
		ID:      known.ID,
		Name:    known.Name,
		Email:   known.Email,
		Token:   known.Token,
		IsAdmin: known.IsAdmin,
		Extra:   all,
	}
	return nil
}

func (s Session) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+len(sessionKeys))
	for k, v := range s.Extra {
		out[k] = v
	}

	out["_id"] = s.ID
	out["name"] = s.Name
	out["email"] = s.Email
	out["token"] = s.Token
	out["isAdmin"] = s.IsAdmin

	return json.Marshal(out)
}

func SessionFromDomain(s domain.Session) Session {
	return Session{
		ID:      s.UserID,
		Name:    s.DisplayName,
		Email:   s.Email,
		Token:   s.AuthToken,
		IsAdmin: s.IsAdmin,
		Extra:   s.Profile,
	}
}

func (s Session) ToDomain() domain.Session {
	return domain.Session{
		UserID:      s.ID,
		DisplayName: s.Name,
		Email:       s.Email,
		AuthToken:   s.Token,
		IsAdmin:     s.IsAdmin,
		Profile:     s.Extra,
	}
}
