// cli/comment_commands.go
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pcbinspect/client/controller"
	"github.com/pcbinspect/client/model"
)

func newCommentsCommand(rt *runtime) *cobra.Command {
	comments := &cobra.Command{
		Use:   "comments",
		Short: "Discuss a material",
	}

	list := &cobra.Command{
		Use:   "list MATERIAL_ID",
		Short: "Show the comment thread of a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThread(cmd.Context(), rt, args[0], func(thread *controller.CommentThreadView) error {
				printThread(rt.app.Out, thread)
				return nil
			})
		},
	}

	add := &cobra.Command{
		Use:   "add MATERIAL_ID TEXT",
		Short: "Comment on a material",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThread(cmd.Context(), rt, args[0], func(thread *controller.CommentThreadView) error {
				return thread.Add(cmd.Context(), args[1])
			})
		},
	}

	reply := &cobra.Command{
		Use:   "reply MATERIAL_ID COMMENT_ID TEXT",
		Short: "Reply to a top-level comment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			parentID, err := parseID(args[1], "comment")
			if err != nil {
				return err
			}
			return withThread(cmd.Context(), rt, args[0], func(thread *controller.CommentThreadView) error {
				return thread.Reply(cmd.Context(), parentID, args[2])
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete MATERIAL_ID COMMENT_ID",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			commentID, err := parseID(args[1], "comment")
			if err != nil {
				return err
			}
			return withThread(cmd.Context(), rt, args[0], func(thread *controller.CommentThreadView) error {
				return thread.Delete(cmd.Context(), commentID)
			})
		},
	}

	comments.AddCommand(list, add, reply, del)
	return comments
}

func withThread(ctx context.Context, rt *runtime, arg string, fn func(*controller.CommentThreadView) error) error {
	materialID, err := parseID(arg, "material")
	if err != nil {
		return err
	}
	thread := rt.app.Views.CommentThread(materialID)
	if err := thread.Mount(ctx); err != nil {
		return err
	}
	defer thread.Unmount()
	return fn(thread)
}

// printThread marks comments the viewer may delete with "*".
func printThread(w io.Writer, thread *controller.CommentThreadView) {
	items := thread.Comments()
	if len(items) == 0 {
		fmt.Fprintln(w, "No comments.")
		return
	}
	line := func(indent string, c model.Comment) {
		mark := " "
		if thread.CanDelete(c) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s%s #%d %s (%s): %s\n", indent, mark, c.ID, orDash(c.AuthorName), formatTime(c.CreatedAt), c.Content)
	}
	for _, c := range items {
		line("", c)
		for _, r := range c.Replies {
			line("    ", r)
		}
	}
}
