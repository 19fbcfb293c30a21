package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adc",
		Short:         "Agent dashboard CLI (adc): tasks, chat and files from the terminal",
		Long:          "adc mirrors the agent dashboard in your terminal: it applies task, chat and file edits optimistically and reconciles them against the backend.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newAuthCmd(app),
		newTasksCmd(app),
		newChatCmd(app),
		newFilesCmd(app),
	)

	return rootCmd
}
