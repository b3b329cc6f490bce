package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-marley/marley"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	grammar *string
	source  *string
}{}

func init() {
	names := make([]string, 0, len(builtinGrammars))
	for name := range builtinGrammars {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Feed tokens into a built-in demo grammar one at a time",
		Example: `  echo '( ( ) )' | marley-repl parse --grammar parens`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.grammar = cmd.Flags().String("grammar", "parens", fmt.Sprintf("built-in grammar to use (%s)", strings.Join(names, ", ")))
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	def, ok := builtinGrammars[*parseFlags.grammar]
	if !ok {
		return fmt.Errorf("unknown grammar %q", *parseFlags.grammar)
	}

	p, err := marley.MakeMarley(def.build(), def.start)
	if err != nil {
		return err
	}

	src := io.Reader(os.Stdin)
	if *parseFlags.source != "" {
		f, err := os.Open(*parseFlags.source)
		if err != nil {
			return fmt.Errorf("cannot open source file %s: %w", *parseFlags.source, err)
		}
		defer f.Close()
		src = f
	}

	scanner := bufio.NewScanner(src)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := scanner.Text()
		p.Feed(tok)
		fmt.Printf("fed %-8q finished=%-5v failed=%-5v", tok, p.Finished(), p.Failed())
		if p.Failed() {
			fmt.Printf(" (%s)", p.GetFailure())
		}
		fmt.Println()
		if p.Failed() {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if p.Finished() {
		fmt.Printf("accepted, %d distinct parse(s)\n", len(p.Results()))
	}
	return nil
}
