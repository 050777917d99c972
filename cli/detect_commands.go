// cli/detect_commands.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDetectCommand(rt *runtime) *cobra.Command {
	var save, spreadsheet, description string
	var projectID int

	cmd := &cobra.Command{
		Use:   "detect IMAGE",
		Short: "Run defect detection on a board photo",
		Long: "Run defect detection on a board photo. With --project and --spreadsheet " +
			"the annotated result is filed under that project.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := rt.app.Views.Detect()
			if err := view.Mount(cmd.Context()); err != nil {
				return err
			}
			defer view.Unmount()

			result, err := view.Detect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(result.Detections) == 0 {
				fmt.Fprintln(rt.app.Out, "No defects found.")
			} else {
				tw := newTable(rt.app.Out, "#\tDEFECT\tCONFIDENCE\tBOX")
				for _, d := range result.Detections {
					fmt.Fprintf(tw, "%d\t%s\t%.1f%%\t(%.0f,%.0f)-(%.0f,%.0f)\n",
						d.DisplayID, d.Name, d.Confidence*100, d.XMin, d.YMin, d.XMax, d.YMax)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			if save != "" {
				if err := view.SaveResult(save); err != nil {
					return err
				}
				fmt.Fprintf(rt.app.Out, "Result image saved to %s\n", save)
			}
			if projectID != 0 {
				return view.Upload(cmd.Context(), projectID, spreadsheet, description)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write the annotated image to this path")
	cmd.Flags().IntVar(&projectID, "project", 0, "file the result under this project")
	cmd.Flags().StringVar(&spreadsheet, "spreadsheet", "", "performance spreadsheet to file with the result")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.MarkFlagsRequiredTogether("project", "spreadsheet")
	return cmd
}
