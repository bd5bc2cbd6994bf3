package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront-client/internal/domain"
	"go.opentelemetry.io/otel/attribute"
)

func (s *Cart) SignIn(ctx context.Context, email, password string) (_ domain.Session, err error) {
	ctx, span := s.tracer.Start(ctx, "SignIn")
	defer func() { endSpan(span, err) }()

	session, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	if err := s.store.SignIn(session); err != nil {
		return domain.Session{}, fmt.Errorf("store.SignIn: %w", err)
	}

	s.log.WithField("user_id", session.UserID).Info("signed in")
	return session, nil
}

func (s *Cart) SignUp(ctx context.Context, name, email, password string) (_ domain.Session, err error) {
	ctx, span := s.tracer.Start(ctx, "SignUp")
	defer func() { endSpan(span, err) }()

	session, err := s.api.SignUp(ctx, name, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	if err := s.store.SignIn(session); err != nil {
		return domain.Session{}, fmt.Errorf("store.SignIn: %w", err)
	}

	s.log.WithField("user_id", session.UserID).Info("signed up")
	return session, nil
}

func (s *Cart) SignOut(ctx context.Context) (err error) {
	_, span := s.tracer.Start(ctx, "SignOut")
	defer func() { endSpan(span, err) }()

	if err := s.store.SignOut(); err != nil {
		return fmt.Errorf("store.SignOut: %w", err)
	}
	return nil
}

// RefreshSavedAddresses pulls the user's addresses and replaces the local mirror.
func (s *Cart) RefreshSavedAddresses(ctx context.Context) (_ []domain.ShippingAddress, err error) {
	ctx, span := s.tracer.Start(ctx, "RefreshSavedAddresses")
	defer func() { endSpan(span, err) }()

	session := s.store.Snapshot().Session
	if session == nil {
		return nil, domain.ErrNotSignedIn
	}
	span.SetAttributes(attribute.String("app.user_id", session.UserID))

	profile, err := s.api.User(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveSavedAddresses(profile.Addresses); err != nil {
		return nil, fmt.Errorf("store.SaveSavedAddresses: %w", err)
	}

	return profile.Addresses, nil
}
