package apiclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"github.com/nikolayk812/storefront-client/internal/dto"
)

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	var record dto.Session
	if err := c.post(ctx, "SignIn", "/api/users/signin", credentials{Email: email, Password: password}, &record); err != nil {
		return domain.Session{}, err
	}
	return record.ToDomain(), nil
}

func (c *Client) SignUp(ctx context.Context, name, email, password string) (domain.Session, error) {
	var record dto.Session
	if err := c.post(ctx, "SignUp", "/api/users/signup", credentials{Name: name, Email: email, Password: password}, &record); err != nil {
		return domain.Session{}, err
	}
	return record.ToDomain(), nil
}

func (c *Client) User(ctx context.Context, userID string) (domain.UserProfile, error) {
	if userID == "" {
		return domain.UserProfile{}, fmt.Errorf("User: %w: userID is empty", domain.ErrInvalidArgument)
	}

	var record dto.UserProfile
	if err := c.get(ctx, "User", "/api/users/"+url.PathEscape(userID), nil, &record); err != nil {
		return domain.UserProfile{}, err
	}
	return record.ToDomain(), nil
}

func (c *Client) UpdateUser(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error) {
	if profile.ID == "" {
		return domain.UserProfile{}, fmt.Errorf("UpdateUser: %w: profile ID is empty", domain.ErrInvalidArgument)
	}

	var record dto.UserProfile
	if err := c.put(ctx, "UpdateUser", "/api/users/"+url.PathEscape(profile.ID), dto.UserProfileFromDomain(profile), &record); err != nil {
		return domain.UserProfile{}, err
	}
	return record.ToDomain(), nil
}
