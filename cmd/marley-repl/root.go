package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marley-repl",
	Short: "Feed whitespace-separated tokens into a marley.Parser one at a time",
	Long: `marley-repl drives one of a few built-in demo grammars token by token and
reports whether the parser is finished, failed, or still waiting after each
token. It exists to exercise the marley library interactively; it is not
part of the library's API.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
