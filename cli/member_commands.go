// cli/member_commands.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcbinspect/client/model"
)

func newMembersCommand(rt *runtime) *cobra.Command {
	members := &cobra.Command{
		Use:   "members",
		Short: "Company members and their roles",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your colleagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := rt.app.Views.Members()
			if err := view.Mount(cmd.Context()); err != nil {
				return err
			}
			defer view.Unmount()

			tw := newTable(rt.app.Out, "ID\tNAME\tEMAIL\tDEPARTMENT\tROLE\tJOINED")
			for _, m := range view.Members() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, orDash(m.DeptName), m.Role, formatTime(m.CreatedAt))
			}
			return tw.Flush()
		},
	}

	setRole := &cobra.Command{
		Use:   "set-role USER_ID ROLE",
		Short: "Change a member's role to DIRECTOR, MANAGER or STAFF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], "user")
			if err != nil {
				return err
			}
			view := rt.app.Views.Members()
			if err := view.Mount(cmd.Context()); err != nil {
				return err
			}
			defer view.Unmount()
			return view.SetRole(cmd.Context(), userID, model.Role(strings.ToUpper(args[1])))
		},
	}

	members.AddCommand(list, setRole)
	return members
}
