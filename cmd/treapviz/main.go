/*
Treapviz builds a treap from integer keys and prints its structure.

	treapviz [flags] key...

Keys are inserted in the order given, with the key's decimal representation as
value. Keys listed with --remove are deleted afterwards. The resulting tree is
checked for consistency and written to stdout, either as an indented tree or
in Graphviz DOT format:

	treapviz --seed 42 --format dot 10 20 30 40 | dot -Tsvg > t.svg

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &vizOptions{}
	cmd := &cobra.Command{
		Use:          "treapviz [flags] key...",
		Short:        "Build a treap from integer keys and print its structure",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			} else {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
			}
			opts.fixedSeed = cmd.Flags().Changed("seed")
			color.NoColor = opts.noColor || !term.IsTerminal(int(os.Stdout.Fd()))
			if err := run(cmd.OutOrStdout(), opts, args); err != nil {
				gtrace.CoreTracer.Errorf("treapviz: %s", err.Error())
				return err
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for the priority generator (random if not set)")
	flags.StringVar(&opts.format, "format", "tree", "output format (`tree` or `dot`)")
	flags.StringSliceVar(&opts.remove, "remove", nil, "keys to remove after insertion")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace treap operations")
	return cmd
}
