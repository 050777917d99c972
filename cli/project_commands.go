// cli/project_commands.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcbinspect/client/controller"
	pcb_errors "github.com/pcbinspect/client/errors"
)

func newProjectsCommand(rt *runtime) *cobra.Command {
	projects := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"records"},
		Short:   "List, create and decide inspection projects",
	}

	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List the company's projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := rt.app.Views.ProjectList()
			if err := view.Mount(cmd.Context()); err != nil {
				return err
			}
			defer view.Unmount()

			items := view.Projects()
			if asJSON {
				return printJSON(rt.app.Out, items)
			}
			tw := newTable(rt.app.Out, "ID\tMODEL\tSTATUS\tCREATED")
			for _, p := range items {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.ModelName, p.Status, formatTime(p.CreatedAt))
			}
			return tw.Flush()
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	create := &cobra.Command{
		Use:   "create MODEL_NAME",
		Short: "Create a PENDING project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := rt.app.Views.ProjectList()
			if err := view.Mount(cmd.Context()); err != nil {
				return err
			}
			defer view.Unmount()
			return view.Create(cmd.Context(), args[0])
		},
	}

	show := &cobra.Command{
		Use:   "show PROJECT_ID",
		Short: "Open a project with its materials and comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := openProject(cmd.Context(), rt, args[0])
			if err != nil {
				return err
			}
			defer detail.Unmount()
			printProject(rt, detail)
			return nil
		},
	}

	accept := &cobra.Command{
		Use:   "accept PROJECT_ID",
		Short: "Accept a reviewed project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decide(cmd.Context(), rt, args[0], (*controller.ProjectDetailView).Accept)
		},
	}

	reject := &cobra.Command{
		Use:   "reject PROJECT_ID",
		Short: "Reject a reviewed project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decide(cmd.Context(), rt, args[0], (*controller.ProjectDetailView).Reject)
		},
	}

	del := &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "project")
			if err != nil {
				return err
			}
			view := rt.app.Views.ProjectList()
			if err := view.Mount(cmd.Context()); err != nil {
				return err
			}
			defer view.Unmount()
			return view.Delete(cmd.Context(), id)
		},
	}

	projects.AddCommand(list, create, show, accept, reject, del)
	return projects
}

// openProject mounts the detail view and waits for the auto-review to settle.
func openProject(ctx context.Context, rt *runtime, arg string) (*controller.ProjectDetailView, error) {
	id, err := parseID(arg, "project")
	if err != nil {
		return nil, err
	}

	list := rt.app.Views.ProjectList()
	if err := list.Mount(ctx); err != nil {
		return nil, err
	}
	project, ok := list.Project(id)
	list.Unmount()
	if !ok {
		return nil, fmt.Errorf("%w: project %d", pcb_errors.ErrNotFound, id)
	}

	detail := rt.app.Views.ProjectDetail(project)
	err = detail.Mount(ctx)
	detail.Wait()
	if err != nil {
		detail.Unmount()
		return nil, err
	}
	return detail, nil
}

func decide(ctx context.Context, rt *runtime, arg string, action func(*controller.ProjectDetailView, context.Context) error) error {
	detail, err := openProject(ctx, rt, arg)
	if err != nil {
		return err
	}
	defer detail.Unmount()
	return action(detail, ctx)
}

func printProject(rt *runtime, detail *controller.ProjectDetailView) {
	p := detail.Project()
	status := string(p.Status)
	if detail.Unsynced() {
		status += " (not saved)"
	}
	fmt.Fprintf(rt.app.Out, "Project %d: %s\nStatus: %s\nCreated: %s\n", p.ID, p.ModelName, status, formatTime(p.CreatedAt))
	if detail.ShowDecision() {
		fmt.Fprintln(rt.app.Out, "Actions: accept, reject")
	}

	materials := detail.Materials()
	if len(materials) == 0 {
		fmt.Fprintln(rt.app.Out, "No materials.")
		return
	}
	fmt.Fprintln(rt.app.Out)
	tw := newTable(rt.app.Out, "MATERIAL\tDESCRIPTION\tCOMMENTS\tCREATED")
	for _, m := range materials {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", m.ID, orDash(m.Description), len(detail.Thread(m.ID)), formatTime(m.CreatedAt))
	}
	_ = tw.Flush()
}

func newMaterialsCommand(rt *runtime) *cobra.Command {
	materials := &cobra.Command{
		Use:   "materials",
		Short: "Analysis results filed under a project",
	}

	list := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List the materials of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := openProject(cmd.Context(), rt, args[0])
			if err != nil {
				return err
			}
			defer detail.Unmount()

			tw := newTable(rt.app.Out, "ID\tDESCRIPTION\tIMAGE\tSPREADSHEET\tCREATED")
			for _, m := range detail.Materials() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", m.ID, orDash(m.Description), orDash(m.DefectImageURL), orDash(m.PerformanceDataURL), formatTime(m.CreatedAt))
			}
			return tw.Flush()
		},
	}

	var image, spreadsheet, description string
	upload := &cobra.Command{
		Use:   "upload PROJECT_ID",
		Short: "File a result image and its spreadsheet under a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := openProject(cmd.Context(), rt, args[0])
			if err != nil {
				return err
			}
			defer detail.Unmount()

			if err := detail.UploadResult(cmd.Context(), image, spreadsheet, description); err != nil {
				return err
			}
			fmt.Fprintf(rt.app.Out, "Saved (%d materials)\n", len(detail.Materials()))
			return nil
		},
	}
	upload.Flags().StringVar(&image, "image", "", "result image file or data URL")
	upload.Flags().StringVar(&spreadsheet, "spreadsheet", "", "performance spreadsheet (.xlsx, .xls, .csv)")
	upload.Flags().StringVar(&description, "description", "", "optional description")
	_ = upload.MarkFlagRequired("image")
	_ = upload.MarkFlagRequired("spreadsheet")

	var dir string
	download := &cobra.Command{
		Use:   "download PROJECT_ID MATERIAL_ID",
		Short: "Save the performance spreadsheet of a material",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			materialID, err := parseID(args[1], "material")
			if err != nil {
				return err
			}
			detail, err := openProject(cmd.Context(), rt, args[0])
			if err != nil {
				return err
			}
			defer detail.Unmount()

			path, err := detail.Download(cmd.Context(), materialID, dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(rt.app.Out, path)
			return nil
		},
	}
	download.Flags().StringVar(&dir, "dir", ".", "destination directory")

	materials.AddCommand(list, upload, download)
	return materials
}
