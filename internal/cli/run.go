package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <line>...",
		Short: "Execute command lines without an interactive session",
		Long: `Run executes each argument as one command line against a fresh, empty
address book and prints the results, as if they were typed in a session.

Example:
  assistant run "add John 1234567890" "add-birthday John 23.01.1985" "all"
  assistant --today 20.01.2030 run "add-birthday Anna 23.01.1990" birthdays`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			for _, line := range args {
				res := s.handler.Execute(line)
				if res.Output != "" {
					fmt.Fprintln(out, res.Output)
				}
				if res.Exit {
					break
				}
			}
			return nil
		},
	}
}
