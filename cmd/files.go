package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/agent-dash-cli/internal/adapters/api"
	"github.com/bnema/agent-dash-cli/internal/adapters/render/board"
	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/state"
)

func newFilesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Uploaded file operations",
	}

	cmd.AddCommand(newFilesListCmd(app), newFilesUploadCmd(app), newFilesDeleteCmd(app))

	return cmd
}

func newFilesListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List uploaded files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.loader.LoadFiles(cmd.Context()); derr != nil {
				return derr
			}
			return printFiles(cmd, app)
		},
	}
}

func newFilesUploadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}

			source, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open upload source: %w", err)
			}
			defer func() { _ = source.Close() }()

			info, err := source.Stat()
			if err != nil {
				return fmt.Errorf("stat upload source: %w", err)
			}

			var uploaded domain.FileAsset
			err = runUploadSpinner(cmd.Context(), cmd.ErrOrStderr(), "uploading "+info.Name(), func(ctx context.Context) error {
				res := app.client.Upload(ctx, api.UploadFile{
					Name:   filepath.Base(args[0]),
					Size:   info.Size(),
					Reader: source,
				})
				if !res.OK {
					return res.Err
				}
				uploaded = res.Data
				return nil
			})
			if err != nil {
				return err
			}

			app.store.Dispatch(state.PutRecord{Type: domain.EntityFile, Record: uploaded})
			app.notifier.Success("file uploaded")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", uploaded.Name, uploaded.ID)
			return err
		},
	}
}

func newFilesDeleteCmd(app *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an uploaded file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.loader.LoadFiles(cmd.Context()); derr != nil {
				return derr
			}
			err := app.coordinator.Submit(cmd.Context(), domain.MutationIntent{
				EntityType: domain.EntityFile,
				EntityID:   id,
				Kind:       domain.MutationDelete,
			})
			if err != nil {
				return err
			}
			app.coordinator.Wait()
			return printFiles(cmd, app)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "File id")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func printFiles(cmd *cobra.Command, app *app) error {
	snap := app.store.Snapshot()
	_, err := fmt.Fprintln(cmd.OutOrStdout(), board.RenderFiles(snap.Files))
	return err
}
