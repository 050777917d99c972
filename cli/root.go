// cli/root.go
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/pcbinspect/client/config"
)

// InitFunc builds the App once flags are parsed.
type InitFunc func(ctx context.Context, out, errOut io.Writer) (*App, error)

type runtime struct {
	init InitFunc
	app  *App
}

// newRootCommand builds pcbctl. rt.init runs before every command.
func newRootCommand(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:           "pcbctl",
		Short:         "Command-line client for the PCB defect inspection service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.init(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			rt.app = app
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("api-url", "", "base URL of the inspection API")
	flags.Duration("timeout", 0, "request timeout")
	flags.String("storage", "", "session storage backend (secure, local, redis, memory)")
	flags.String("storage-dir", "", "directory of the file storage backends")
	flags.String("audit-url", "", "Elasticsearch URL for the audit trail")
	flags.String("log-level", "", "log level")
	bindFlags(root, map[string]string{
		"api.baseURL":            "api-url",
		"api.timeout":            "timeout",
		"storage.backend":        "storage",
		"storage.dir":            "storage-dir",
		"audit.elasticsearchURL": "audit-url",
		"log.level":              "log-level",
	})

	root.AddCommand(
		newStartCommand(rt),
		newLoginCommand(rt),
		newLogoutCommand(rt),
		newSignupCommand(rt),
		newWhoamiCommand(rt),
		newProfileCommand(rt),
		newProjectsCommand(rt),
		newMaterialsCommand(rt),
		newCommentsCommand(rt),
		newMembersCommand(rt),
		newDetectCommand(rt),
		newQACommand(rt),
		newAuditCommand(rt),
	)
	return root
}

// bindFlags maps config keys to persistent flags so flags win over env and file.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		_ = config.BindFlag(key, cmd.PersistentFlags().Lookup(name))
	}
}

func (rt *runtime) close() error {
	if rt.app == nil {
		return nil
	}
	err := rt.app.Close()
	rt.app = nil
	return err
}

// Execute runs pcbctl with args and releases the App even when the command failed.
func Execute(ctx context.Context, init InitFunc, args []string, out, errOut io.Writer) error {
	rt := &runtime{init: init}
	root := newRootCommand(rt)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	return errors.Join(err, rt.close())
}
