// cli/qa_commands.go
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newQACommand(rt *runtime) *cobra.Command {
	qa := &cobra.Command{
		Use:   "qa",
		Short: "Diagnostics for testers",
	}

	ping := &cobra.Command{
		Use:   "ping",
		Short: "Check that the API answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.Services.Health.Ping(cmd.Context()); err != nil {
				fmt.Fprintln(rt.app.Out, "unreachable")
				return err
			}
			fmt.Fprintln(rt.app.Out, "reachable")
			return nil
		},
	}

	expire := &cobra.Command{
		Use:   "expire-session",
		Short: "Forget the stored session as if it had expired",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.Services.Auth.ExpireSession(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(rt.app.Out, rt.app.Services.Auth.Bootstrap(cmd.Context()))
			return nil
		},
	}

	qa.AddCommand(ping, expire)
	return qa
}

func newAuditCommand(rt *runtime) *cobra.Command {
	var since time.Duration
	var userID int
	var resource string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show administrative actions recorded by this client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			to := time.Now()
			logs, err := rt.app.Audit.QueryLogs(cmd.Context(), to.Add(-since), to, userID, resource)
			if err != nil {
				return err
			}
			tw := newTable(rt.app.Out, "TIME\tUSER\tROLE\tACTION\tRESOURCE")
			for _, l := range logs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", formatTime(l.Timestamp), strconv.Itoa(l.UserID), orDash(l.UserRole), l.Action, orDash(l.ResourceID))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().DurationVar(&since, "since", 24*time.Hour, "how far back to look")
	cmd.Flags().IntVar(&userID, "user", 0, "only actions of this user")
	cmd.Flags().StringVar(&resource, "resource", "", "only actions on this resource")
	return cmd
}
