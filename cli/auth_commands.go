// cli/auth_commands.go
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcbinspect/client/config"
	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
)

func newStartCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Print the screen the app opens on: login or tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(rt.app.Out, rt.app.Services.Auth.Bootstrap(cmd.Context()))
			return nil
		},
	}
}

func newLoginCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email := config.GetString("login.email")
			password := config.GetString("login.password")
			if password == "" && email != "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				password = readLine(cmd)
			}
			autoLogin := config.GetBool("login.autoLogin")

			route, err := rt.app.Views.Login().Submit(cmd.Context(), email, password, autoLogin)
			if err != nil {
				return err
			}
			fmt.Fprintln(rt.app.Out, route)
			return nil
		},
	}
	cmd.Flags().String("email", "", "account email")
	cmd.Flags().String("password", "", "account password, read from stdin when empty")
	cmd.Flags().Bool("auto-login", true, "open on the tabs screen next time")
	_ = config.BindFlag("login.email", cmd.Flags().Lookup("email"))
	_ = config.BindFlag("login.password", cmd.Flags().Lookup("password"))
	_ = config.BindFlag("login.autoLogin", cmd.Flags().Lookup("auto-login"))
	return cmd
}

func readLine(cmd *cobra.Command) string {
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func newLogoutCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := rt.app.Views.Profile()
			if err := profile.Mount(cmd.Context()); err != nil && !errors.Is(err, pcb_errors.ErrSessionNotFound) {
				return err
			}
			defer profile.Unmount()
			fmt.Fprintln(rt.app.Out, profile.Logout(cmd.Context()))
			return nil
		},
	}
}

func newSignupCommand(rt *runtime) *cobra.Command {
	var req model.SignupRequest
	var role string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a user, creating the company on first use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Role = model.Role(strings.ToUpper(strings.TrimSpace(role)))
			return rt.app.Views.Signup().Submit(cmd.Context(), req)
		},
	}
	cmd.Flags().StringVar(&req.CorporateName, "company", "", "corporate name")
	cmd.Flags().StringVar(&req.Name, "name", "", "your name")
	cmd.Flags().StringVar(&req.DeptName, "dept", "", "department")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&role, "role", string(model.RoleStaff), "DIRECTOR, MANAGER or STAFF")
	return cmd
}

func newWhoamiCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user and the tabs they can open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home := rt.app.Views.Home()
			if err := home.Mount(cmd.Context()); err != nil {
				return err
			}
			defer home.Unmount()

			s := home.Summary()
			tw := newTable(rt.app.Out, "NAME\tCOMPANY\tDEPARTMENT\tROLE")
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.Company, s.Dept, orDash(string(s.Role)))
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(rt.app.Out, "tabs: %s\n", strings.Join(home.Tabs(), ", "))
			return nil
		},
	}
}

func newProfileCommand(rt *runtime) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Edit your profile",
	}

	edit := &cobra.Command{
		Use:   "edit",
		Short: "Change your name or department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := rt.app.Views.Profile()
			if err := view.Mount(cmd.Context()); err != nil {
				return err
			}
			defer view.Unmount()

			current := view.Session()
			name, dept := current.Name, current.DeptName
			if cmd.Flags().Changed("name") {
				name, _ = cmd.Flags().GetString("name")
			}
			if cmd.Flags().Changed("dept") {
				dept, _ = cmd.Flags().GetString("dept")
			}
			return view.Save(cmd.Context(), name, dept)
		},
	}
	edit.Flags().String("name", "", "new name")
	edit.Flags().String("dept", "", "new department")

	profile.AddCommand(edit)
	return profile
}
