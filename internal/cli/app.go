package cli

import (
	"io"

	"github.com/jrsteele09/go-roomshare-client/api"
	"github.com/jrsteele09/go-roomshare-client/auth"
	"github.com/jrsteele09/go-roomshare-client/internal/config"
	"github.com/jrsteele09/go-roomshare-client/internal/logger"
	"github.com/jrsteele09/go-roomshare-client/sessions"
	"github.com/jrsteele09/go-roomshare-client/storage"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("niste prijavljeni, pokrenite: roomshare login")

type appFlags struct {
	baseURL     string
	storage     string
	storagePath string
	logLevel    string
	downloadDir string
}

// app holds what every command shares. It is opened lazily by the
// commands that need it and closed after the command runs.
type app struct {
	cfg   config.Config
	flags appFlags

	log     *logger.Logger
	store   storage.Store
	session *sessions.Store
	auth    *auth.Accessor
}

func (a *app) open(cmd *cobra.Command) error {
	if a.session != nil {
		return nil
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = a.flags.logLevel
	logCfg.File = a.cfg.GetLogFile()
	logCfg.Out = cmd.ErrOrStderr()
	log, err := logger.New(logCfg)
	if err != nil {
		return errors.Wrap(err, "[app open] logger")
	}
	a.log = log
	zl := log.GetZerolog()

	path := a.flags.storagePath
	if path == "" {
		path = a.cfg.GetStoragePathFor(a.flags.storage)
	}
	store, err := storage.Open(a.flags.storage, path)
	if err != nil {
		return errors.Wrap(err, "[app open] storage")
	}
	a.store = store

	client := api.New(api.Config{
		BaseURL:     a.flags.baseURL,
		Credentials: storage.TokenSource(store),
		Logger:      &zl,
	})

	session, err := sessions.New(store, client,
		sessions.WithLogger(zl),
		sessions.WithFileSaver(api.DirSaver{Dir: a.flags.downloadDir}),
	)
	if err != nil {
		return errors.Wrap(err, "[app open] session")
	}
	a.session = session
	a.auth = auth.New(session)

	zl.Debug().Str("base_url", client.BaseURL()).Str("storage", a.flags.storage).Str("path", path).Msg("session opened")
	return nil
}

// openAuthenticated opens the app and fails when there is no stored token.
func (a *app) openAuthenticated(cmd *cobra.Command) error {
	if err := a.open(cmd); err != nil {
		return err
	}
	if !a.auth.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

func (a *app) close() error {
	var err error
	if closer, ok := a.store.(io.Closer); ok {
		err = closer.Close()
	}
	if a.log != nil {
		if logErr := a.log.Close(); err == nil {
			err = logErr
		}
	}
	a.session = nil
	a.store = nil
	a.log = nil
	return err
}

// check turns a failed action into a command error carrying its message.
func check(res sessions.Result) error {
	if res.Success {
		return nil
	}
	return errors.New(res.Error)
}
