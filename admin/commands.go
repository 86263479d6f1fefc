package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/temanskyM/scheduler-manager/di"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/res"
)

type connectFunc func(ctx context.Context) (*di.Container, error)

func rootCmd(connect connectFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "Manage school scheduler records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(addCmd(connect), exportCmd(connect), scheduleCmd(connect))
	return cmd
}

func collections() []string {
	kinds := models.Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.Collection
	}
	return names
}

// withContainer runs do with a connected container and closes it after.
func withContainer(cmd *cobra.Command, connect connectFunc, do func(ctx context.Context, container *di.Container) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	container, err := connect(ctx)
	if err != nil {
		return err
	}
	defer container.Close(context.Background())
	return do(ctx, container)
}

func addCmd(connect connectFunc) *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "add <kind>",
		Short: "Add one record from id=value field assignments",
		Long: fmt.Sprintf(`Add one record. <kind> is one of: %s.
Fields use the form ids, for example:

  admin add subjects --field subjectname=Math --field subjectteacher="A. Ivanova"`,
			strings.Join(collections(), ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: collections(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := models.KindFromCollection(args[0])
			if !ok {
				return fmt.Errorf("unknown kind %q, expected one of: %s", args[0], strings.Join(collections(), ", "))
			}
			source, err := forms.ParseAssignments(fields)
			if err != nil {
				return err
			}
			return withContainer(cmd, connect, func(ctx context.Context, container *di.Container) error {
				outcome := container.Entry.Add(ctx, kind, source)
				if !outcome.Success {
					return outcome.Err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (id %s)\n", outcome.Message, outcome.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "Field assignment id=value (repeatable)")
	return cmd
}

func exportCmd(connect connectFunc) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored record to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, connect, func(ctx context.Context, container *di.Container) error {
				var write func(ctx context.Context, w io.Writer) *res.ErrorRes
				switch format {
				case "xlsx":
					write = container.Export.WriteWorkbook
				case "pdf":
					write = container.Export.PDF
				case "zip":
					write = container.Export.Archive
				default:
					return fmt.Errorf("unknown format %q, expected xlsx, pdf or zip", format)
				}
				if out == "" {
					out = "records." + format
				}

				file, err := os.Create(out)
				if err != nil {
					return err
				}
				if errRes := write(ctx, file); errRes != nil {
					file.Close()
					return errRes
				}
				if err := file.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Records exported to %s\n", out)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "xlsx", "Export format: xlsx, pdf or zip")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default records.<format>)")
	return cmd
}

func scheduleCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Build the timetable from the stored records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, connect, func(ctx context.Context, container *di.Container) error {
				return container.Scheduler.WriteSchedule(ctx)
			})
		},
	}
}
