package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/agent-dash-cli/internal/adapters/render/board"
	"github.com/bnema/agent-dash-cli/internal/domain"
)

func newTasksCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Kanban board operations",
	}

	cmd.AddCommand(
		newTasksListCmd(app),
		newTasksCreateCmd(app),
		newTasksUpdateCmd(app),
		newTasksMoveCmd(app),
		newTasksDeleteCmd(app),
	)

	return cmd
}

func newTasksListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.loader.LoadTasks(cmd.Context()); derr != nil {
				return derr
			}
			return printBoard(cmd, app)
		},
	}
}

func newTasksCreateCmd(app *app) *cobra.Command {
	var title, description, status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.loader.LoadTasks(cmd.Context()); derr != nil {
				return derr
			}
			err := app.coordinator.Submit(cmd.Context(), domain.MutationIntent{
				EntityType: domain.EntityTask,
				Kind:       domain.MutationCreate,
				Payload: domain.TaskDraft{
					Title:       title,
					Description: description,
					Status:      domain.TaskStatus(status),
				},
			})
			if err != nil {
				return err
			}
			app.coordinator.Wait()
			return printBoard(cmd, app)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&status, "status", string(domain.TaskStatusTodo), "Initial column (todo, doing, done)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTasksUpdateCmd(app *app) *cobra.Command {
	var id, title, description, status string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.loader.LoadTasks(cmd.Context()); derr != nil {
				return derr
			}

			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("status") {
				s := domain.TaskStatus(status)
				patch.Status = &s
			}

			err := app.coordinator.Submit(cmd.Context(), domain.MutationIntent{
				EntityType: domain.EntityTask,
				EntityID:   id,
				Kind:       domain.MutationUpdate,
				Payload:    patch,
			})
			if err != nil {
				return err
			}
			app.coordinator.Wait()
			return printBoard(cmd, app)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Task id")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&status, "status", "", "New column (todo, doing, done)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newTasksMoveCmd(app *app) *cobra.Command {
	var id, to string

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to another column",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.loader.LoadTasks(cmd.Context()); derr != nil {
				return derr
			}
			err := app.coordinator.Submit(cmd.Context(), domain.MutationIntent{
				EntityType: domain.EntityTask,
				EntityID:   id,
				Kind:       domain.MutationMove,
				Payload:    domain.TaskMove{Status: domain.TaskStatus(to)},
			})
			if err != nil {
				return err
			}
			app.coordinator.Wait()
			return printBoard(cmd, app)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Task id")
	cmd.Flags().StringVar(&to, "to", "", "Destination column (todo, doing, done)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newTasksDeleteCmd(app *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.loader.LoadTasks(cmd.Context()); derr != nil {
				return derr
			}
			err := app.coordinator.Submit(cmd.Context(), domain.MutationIntent{
				EntityType: domain.EntityTask,
				EntityID:   id,
				Kind:       domain.MutationDelete,
			})
			if err != nil {
				return err
			}
			app.coordinator.Wait()
			return printBoard(cmd, app)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Task id")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func printBoard(cmd *cobra.Command, app *app) error {
	snap := app.store.Snapshot()
	_, err := fmt.Fprintln(cmd.OutOrStdout(), board.RenderBoard(snap.Tasks))
	return err
}
