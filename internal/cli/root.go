package cli

import (
	"context"
	"io"

	"github.com/jrsteele09/go-roomshare-client/internal/config"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// NewRootCmd builds the command tree. Flags default to the environment
// configuration and override it when set.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{cfg: config.New()}

	rootCmd := &cobra.Command{
		Use:   "roomshare",
		Short: "RoomShare - share files in class rooms",
		Long: `RoomShare is a command line client for the room-share API.
Professors create rooms protected by a passcode, students join them,
and everyone in a room can upload and download files.`,
		Version:      version,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.baseURL, "base-url", a.cfg.GetBaseURL(), "API base URL including the /api prefix")
	flags.StringVar(&a.flags.storage, "storage", a.cfg.GetStorageBackend(), "session storage backend (file, sqlite, memory)")
	flags.StringVar(&a.flags.storagePath, "storage-path", "", "session storage path (default ~/.roomshare/session.yaml or session.db)")
	flags.StringVar(&a.flags.logLevel, "log-level", a.cfg.GetLogLevel(), "log level (debug, info, warn, error)")
	flags.StringVar(&a.flags.downloadDir, "download-dir", a.cfg.GetDownloadDir(), "directory downloads are written to")

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)

	rootCmd.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newStatusCmd(a),
		newProfileCmd(a),
		newRoomsCmd(a),
		newFilesCmd(a),
	)
	return rootCmd, a
}

// Execute runs the command line with args. This is called by main.main().
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	rootCmd, a := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	if closeErr := a.close(); err == nil {
		err = closeErr
	}
	return err
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}
