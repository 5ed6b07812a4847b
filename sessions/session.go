package sessions

import (
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/jrsteele09/go-roomshare-client/users"
)

// Session is a snapshot of the client-side session.
type Session struct {
	Authenticated bool        // A token was stored when the session was loaded, or login succeeded since
	User          *users.User // Cached user record, nil when unknown
	CurrentRoom   *rooms.Room // Room selected in this process; never persisted
}
