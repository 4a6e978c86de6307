// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"robdd/grammar"
	"robdd/internal/bdd"
	"robdd/internal/harness"
	"robdd/repl"
)

func main() {
	root := &cobra.Command{
		Use:           "robdd",
		Short:         "Build and evaluate reduced ordered binary decision diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		buildCmd(),
		evalCmd(),
		bestCmd(),
		checkCmd(),
		benchCmd(),
		replCmd(),
	)

	if err := root.Execute(); err != nil {
		color.Red("error: %s", err)
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "build <expression>",
		Short: "Build a BDD and report its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := bdd.New(args[0], order)
			printDiagram(b)
			return nil
		},
	}

	cmd.Flags().StringVarP(&order, "order", "o", "", "variable order, e.g. abc")
	return cmd
}

func evalCmd() *cobra.Command {
	var order, bits string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Build a BDD and evaluate it against an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := bdd.New(args[0], order)

			result, err := b.Evaluate(bits)
			if err != nil {
				return fmt.Errorf("evaluating %q: %w", bits, err)
			}

			fmt.Printf("%c\n", result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&order, "order", "o", "", "variable order, e.g. abc")
	cmd.Flags().StringVarP(&bits, "bits", "b", "", "assignment, one bit per order position")
	return cmd
}

func bestCmd() *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "best <expression>",
		Short: "Search order rotations and keep the smallest BDD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := bdd.New(args[0], order)
			best := bdd.NewBestOrder(args[0], order)

			fmt.Printf("default order %q: %d nodes\n", b.Order(), b.Size())
			fmt.Printf("best order    %q: %d nodes\n", best.Order(), best.Size())
			if best.Size() < b.Size() {
				color.Green("rotation search saved %d nodes", b.Size()-best.Size())
			} else {
				fmt.Println("default order is already the best rotation")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&order, "order", "o", "", "variable order, e.g. abc")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <expression>",
		Short: "Validate an expression against the strict grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := grammar.Check(args[0]); err != nil {
				reportCheckError(args[0], err)
				os.Exit(1)
			}

			color.Green("✅ well-formed DNF")
			return nil
		},
	}
}

func benchCmd() *cobra.Command {
	var cfg harness.Config
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Test random functions against brute force and report sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity := 0
			if verbose {
				verbosity = 1
			}
			commonlog.Configure(verbosity, nil)

			if cfg.Vars < 1 || cfg.Vars > 26 {
				return fmt.Errorf("vars must be between 1 and 26, got %d", cfg.Vars)
			}

			stats := harness.Run(cfg)

			fmt.Printf("Num of variables: %d\n", cfg.Vars)
			fmt.Printf("Num of expressions: %d\n", stats.Funcs)
			fmt.Printf("Accuracy: %.2f%%\n", stats.Accuracy*100)
			fmt.Printf("Reduction: %.2f%%\n", stats.Reduction)
			fmt.Printf("Best order reduction: %.2f%%\n", stats.BestReduction)
			fmt.Printf("Time for BDD creation: %.2f seconds\n", stats.BuildTime.Seconds())
			fmt.Printf("Time for BDD with best order creation: %.2f seconds\n", stats.BestOrderTime.Seconds())
			fmt.Printf("Number of nodes: %.2f\n", stats.MeanNodes)
			fmt.Printf("Number of nodes best order: %.2f\n", stats.MeanBestNodes)

			if stats.Accuracy < 1.0 {
				return fmt.Errorf("accuracy below 100%%")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&cfg.Vars, "vars", "n", 12, "number of variables")
	cmd.Flags().IntVarP(&cfg.Funcs, "funcs", "f", 100, "number of random functions")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 1, "random seed")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "per-function logging")
	return cmd
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}

func printDiagram(b *bdd.BDD) {
	switch b.Root() {
	case bdd.True:
		fmt.Println("root: ⊤ (constant)")
	case bdd.False:
		fmt.Println("root: ⊥ (constant)")
	default:
		fmt.Printf("root: decision on %q\n", b.Root().Var)
	}
	fmt.Printf("order: %q\n", b.Order())
	fmt.Printf("nodes: %d\n", b.Size())
}

// reportCheckError prints a friendly caret-style error for strict
// validation failures.
func reportCheckError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("Syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	color.Red("❌ Not well-formed DNF at line %d, column %d:", pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("→ %s\n", pe.Message())
}
