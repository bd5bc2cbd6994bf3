package apiclient

import (
	"context"
	"net/http"

	"github.com/nikolayk812/storefront-client/internal/port"
)

// BearerSigner attaches the persisted session token, when there is one.
type BearerSigner struct {
	tokens port.TokenSource
}

func NewBearerSigner(tokens port.TokenSource) *BearerSigner {
	return &BearerSigner{tokens: tokens}
}

func (s *BearerSigner) SignRequest(ctx context.Context, req *http.Request) error {
	if token, ok := s.tokens.AuthToken(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

var (
	_ Signer           = (*BearerSigner)(nil)
	_ port.CommerceAPI = (*Client)(nil)
)
