package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jrsteele09/go-roomshare-client/dates"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func printFiles(out io.Writer, files []rooms.File) error {
	if len(files) == 0 {
		fmt.Fprintln(out, "Nema fajlova")
		return nil
	}
	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tFAJL\tPOSTAVIO\tVREME")
	for _, f := range files {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", f.ID, f.OriginalFilename, f.UploaderName(), dates.FormatDate(f.UploadTime))
	}
	return tw.Flush()
}

func newFilesCmd(a *app) *cobra.Command {
	filesCmd := &cobra.Command{
		Use:   "files",
		Short: "List, upload, download and delete room files",
	}
	filesCmd.AddCommand(
		newFilesListCmd(a),
		newFilesUploadCmd(a),
		newFilesDownloadCmd(a),
		newFilesDeleteCmd(a),
	)
	return filesCmd
}

func newFilesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list ROOM_ID",
		Short: "List the files in a room, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0], "ID sobe")
			if err != nil {
				return err
			}
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			res := a.session.GetRoomFiles(cmd.Context(), roomID)
			if err := check(res.Result); err != nil {
				return err
			}
			return printFiles(cmd.OutOrStdout(), res.Files)
		},
	}
}

func newFilesUploadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload ROOM_ID PATH",
		Short: "Upload a file into a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0], "ID sobe")
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return errors.Wrap(err, "[files upload]")
			}
			defer f.Close()

			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			if err := check(a.session.UploadFile(cmd.Context(), roomID, filepath.Base(args[1]), f)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fajl %s postavljen\n", filepath.Base(args[1]))
			return nil
		},
	}
}

func newFilesDownloadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "download FILE_ID",
		Short: "Download a file into the download directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, err := parseID(args[0], "ID fajla")
			if err != nil {
				return err
			}
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			res := a.session.DownloadFile(cmd.Context(), fileID)
			if err := check(res.Result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sačuvano: %s\n", res.Path)
			return nil
		},
	}
}

func newFilesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete FILE_ID",
		Short: "Delete a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, err := parseID(args[0], "ID fajla")
			if err != nil {
				return err
			}
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			if err := check(a.session.DeleteFile(cmd.Context(), fileID)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Fajl obrisan")
			return nil
		},
	}
}
