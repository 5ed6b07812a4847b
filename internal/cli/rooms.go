package cli

import (
	"fmt"
	"strconv"

	"github.com/jrsteele09/go-roomshare-client/dates"
	apperrors "github.com/jrsteele09/go-roomshare-client/internal/errors"
	"github.com/jrsteele09/go-roomshare-client/rooms"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidInput, "%s %q", what, arg)
	}
	return id, nil
}

func newRoomsCmd(a *app) *cobra.Command {
	roomsCmd := &cobra.Command{
		Use:   "rooms",
		Short: "List, create, join and leave rooms",
	}
	roomsCmd.AddCommand(
		newRoomsListCmd(a),
		newRoomsCreateCmd(a),
		newRoomsJoinCmd(a),
		newRoomsShowCmd(a),
		newRoomsLeaveCmd(a),
		newRoomsDeleteCmd(a),
	)
	return roomsCmd
}

func newRoomsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the rooms you are in, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			res := a.session.GetUserRooms(cmd.Context())
			if err := check(res.Result); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(res.Rooms) == 0 {
				fmt.Fprintln(out, "Niste ni u jednoj sobi")
				return nil
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "ID\tNAZIV\tŠIFRA\tKREIRAO\tKREIRANA")
			for _, r := range res.Rooms {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Passcode, r.CreatorName, dates.FormatDateShort(r.CreatedAt))
			}
			return tw.Flush()
		},
	}
}

func newRoomsCreateCmd(a *app) *cobra.Command {
	var room rooms.NewRoom

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a room (professors only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			if !a.auth.IsProfessor() {
				return errors.New("samo profesori mogu da kreiraju sobe")
			}
			if room.Passcode == "" {
				code, err := rooms.GeneratePasscode()
				if err != nil {
					return err
				}
				room.Passcode = code
			}
			res := a.session.CreateRoom(cmd.Context(), room)
			if err := check(res.Result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Soba %q kreirana (ID %d), šifra: %s\n", room.Name, res.RoomID, room.Passcode)
			return nil
		},
	}
	cmd.Flags().StringVar(&room.Name, "name", "", "room name")
	cmd.Flags().StringVar(&room.Passcode, "code", "", "passcode students join with (generated when omitted)")
	cmd.Flags().IntVar(&room.LimitHours, "limit", 0, "hours until the room expires (0 means never)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newRoomsJoinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "join PASSCODE",
		Short: "Join a room by its passcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			res := a.session.JoinRoom(cmd.Context(), args[0])
			if err := check(res.Result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pridružili ste se sobi %q (ID %d)\n", res.RoomName, res.RoomID)
			return nil
		},
	}
}

func newRoomsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ROOM_ID",
		Short: "Show a room and its files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0], "ID sobe")
			if err != nil {
				return err
			}
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}

			info := a.session.GetRoomInfo(cmd.Context(), roomID)
			if err := check(info.Result); err != nil {
				return err
			}
			a.session.SetCurrentRoom(info.Room)
			room := a.session.CurrentRoom()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (ID %d)\n", room.Name, room.ID)
			fmt.Fprintf(out, "Šifra: %s\n", room.Passcode)
			fmt.Fprintf(out, "Kreirao: %s\n", room.CreatorName)
			fmt.Fprintf(out, "Kreirana: %s\n", dates.FormatDate(room.CreatedAt))
			if room.ExpiresAt != nil {
				fmt.Fprintf(out, "Ističe: %s\n", dates.FormatDatePtr(room.ExpiresAt))
			}

			files := a.session.GetRoomFiles(cmd.Context(), roomID)
			if err := check(files.Result); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return printFiles(out, files.Files)
		},
	}
}

func newRoomsLeaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leave ROOM_ID",
		Short: "Leave a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0], "ID sobe")
			if err != nil {
				return err
			}
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			if err := check(a.session.LeaveRoom(cmd.Context(), roomID)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Napustili ste sobu")
			return nil
		},
	}
}

func newRoomsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ROOM_ID",
		Short: "Delete a room you created, with all its files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0], "ID sobe")
			if err != nil {
				return err
			}
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			if err := check(a.session.DeleteRoom(cmd.Context(), roomID)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Soba obrisana")
			return nil
		},
	}
}
