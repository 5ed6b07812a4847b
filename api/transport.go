package api

import (
	"net/http"

	"github.com/jrsteele09/go-roomshare-client/internal/errors"
	"golang.org/x/oauth2"
)

// bearerTransport attaches "Authorization: Bearer <token>" when the source
// has a token. errors.ErrNoToken from the source sends the request as is.
type bearerTransport struct {
	base   http.RoundTripper
	source oauth2.TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok, err := t.source.Token()
	if errors.Is(err, errors.ErrNoToken) {
		return t.base.RoundTrip(req)
	}
	if err != nil {
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, errors.Wrapf(err, "[bearerTransport RoundTrip] token")
	}

	authed := req.Clone(req.Context())
	tok.SetAuthHeader(authed)
	return t.base.RoundTrip(authed)
}
