package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jrsteele09/go-roomshare-client/dates"
	"github.com/jrsteele09/go-roomshare-client/storage"
	"github.com/jrsteele09/go-roomshare-client/token"
	"github.com/jrsteele09/go-roomshare-client/users"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// readPassword returns flagValue, or reads one line from in when it is empty.
func readPassword(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(cmd.OutOrStdout(), "Lozinka: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "[readPassword]")
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("lozinka je obavezna")
	}
	return password, nil
}

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}
			if err := check(a.session.Login(cmd.Context(), users.Credentials{Email: email, Password: pw})); err != nil {
				return err
			}
			u := a.auth.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Prijavljeni ste kao %s (%s)\n", u.FullName(), u.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var reg users.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a student account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			pw, err := readPassword(cmd, reg.Password)
			if err != nil {
				return err
			}
			reg.Password = pw
			if err := check(a.session.Register(cmd.Context(), reg)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registracija uspešna, prijavite se komandom: roomshare login")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&reg.FirstName, "first-name", "", "first name")
	f.StringVar(&reg.LastName, "last-name", "", "last name")
	f.StringVar(&reg.Email, "email", "", "email")
	f.StringVar(&reg.Program, "program", "", "study programme (SRT or KOT)")
	f.StringVar(&reg.IndexNumber, "index", "", "index number")
	f.StringVar(&reg.Password, "password", "", "password (read from stdin when omitted)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			if err := a.auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Odjavljeni ste")
			return nil
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	var banner bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show who is logged in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if banner {
				printBanner(out, a.cfg.GetAppName())
			}

			if !a.auth.IsAuthenticated() {
				fmt.Fprintln(out, "Status: niste prijavljeni")
				return nil
			}
			fmt.Fprintln(out, "Status: prijavljeni")
			if u := a.auth.User(); u != nil {
				fmt.Fprintf(out, "Korisnik: %s <%s>\n", u.FullName(), u.Email)
				fmt.Fprintf(out, "Uloga: %s\n", u.Role)
				if a.auth.IsStudent() {
					fmt.Fprintf(out, "Smer: %s, indeks: %s\n", u.Program, u.IndexNumber)
				}
			}
			printTokenExpiry(out, a.store)
			return nil
		},
	}
	cmd.Flags().BoolVar(&banner, "banner", true, "print the application banner")
	return cmd
}

// printTokenExpiry shows when the stored token expires. It is informational
// only and never logs the session out.
func printTokenExpiry(out io.Writer, store storage.Store) {
	raw, _, err := store.Get(storage.KeyToken)
	if err != nil {
		return
	}
	claims, err := token.Inspect(raw)
	if err != nil || claims.ExpiresAt == nil {
		return
	}
	expires := dates.FormatDate(claims.ExpiresAt.Format(time.RFC3339))
	if claims.Expired(time.Now()) {
		fmt.Fprintf(out, "Token je istekao: %s\n", expires)
		return
	}
	fmt.Fprintf(out, "Token važi do: %s\n", expires)
}

func newProfileCmd(a *app) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
	}

	var update users.ProfileUpdate
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update name, programme and index number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.openAuthenticated(cmd); err != nil {
				return err
			}
			current := a.auth.User()
			if current != nil {
				update = mergeProfile(*current, update)
			}
			if err := check(a.session.UpdateProfile(cmd.Context(), update)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profil ažuriran")
			return nil
		},
	}
	f := updateCmd.Flags()
	f.StringVar(&update.FirstName, "first-name", "", "first name")
	f.StringVar(&update.LastName, "last-name", "", "last name")
	f.StringVar(&update.Program, "program", "", "study programme (SRT or KOT)")
	f.StringVar(&update.IndexNumber, "index", "", "index number")

	profileCmd.AddCommand(updateCmd)
	return profileCmd
}

// mergeProfile fills fields left empty in update from the cached user.
func mergeProfile(current users.User, update users.ProfileUpdate) users.ProfileUpdate {
	if update.FirstName == "" {
		update.FirstName = current.FirstName
	}
	if update.LastName == "" {
		update.LastName = current.LastName
	}
	if update.Program == "" {
		update.Program = current.Program
	}
	if update.IndexNumber == "" {
		update.IndexNumber = current.IndexNumber
	}
	return update
}
