package storage

import (
	"github.com/jrsteele09/go-roomshare-client/internal/errors"
	"golang.org/x/oauth2"
)

// TokenSource adapts a Store to oauth2.TokenSource. The token is read on every
// call; an empty or missing token yields errors.ErrNoToken.
func TokenSource(store Store) oauth2.TokenSource {
	return storeTokenSource{store: store}
}

type storeTokenSource struct {
	store Store
}

func (s storeTokenSource) Token() (*oauth2.Token, error) {
	raw, ok, err := s.store.Get(KeyToken)
	if err != nil {
		return nil, errors.Wrapf(err, "[storeTokenSource Token]")
	}
	if !ok || raw == "" {
		return nil, errors.ErrNoToken
	}
	return &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}, nil
}
