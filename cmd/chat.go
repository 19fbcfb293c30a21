package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/agent-dash-cli/internal/adapters/render/board"
	"github.com/bnema/agent-dash-cli/internal/domain"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the agent",
	}

	cmd.AddCommand(newChatSendCmd(app), newChatHistoryCmd(app))

	return cmd
}

func newChatSendCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <message>",
		Short: "Send a message and print the reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.loader.LoadChatHistory(cmd.Context()); derr != nil {
				return derr
			}
			err := app.coordinator.Submit(cmd.Context(), domain.MutationIntent{
				EntityType: domain.EntityChat,
				Kind:       domain.MutationCreate,
				Payload:    domain.ChatDraft{Message: args[0]},
			})
			if err != nil {
				return err
			}
			app.coordinator.Wait()
			return printHistory(cmd, app)
		},
	}
}

func newChatHistoryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the chat transcript",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.loader.LoadChatHistory(cmd.Context()); derr != nil {
				return derr
			}
			return printHistory(cmd, app)
		},
	}
}

func printHistory(cmd *cobra.Command, app *app) error {
	snap := app.store.Snapshot()
	_, err := fmt.Fprintln(cmd.OutOrStdout(), board.RenderHistory(snap.Exchanges))
	return err
}
