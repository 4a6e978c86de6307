// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"robdd/internal/bdd"
)

const PROMPT = ">> "

// Start runs an interactive session: build a diagram, then query it.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var current *bdd.BDD

	fmt.Fprintln(out, "robdd repl — 'help' lists commands")

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return

		case "help":
			fmt.Fprintln(out, "  build <order> <expr>   build a BDD under <order>")
			fmt.Fprintln(out, "  best <order> <expr>    build under the best rotation of <order>")
			fmt.Fprintln(out, "  eval <bits>            evaluate the current BDD")
			fmt.Fprintln(out, "  size                   node count of the current BDD")
			fmt.Fprintln(out, "  order                  variable order of the current BDD")
			fmt.Fprintln(out, "  quit                   leave")

		case "build", "best":
			if len(fields) < 3 {
				color.New(color.FgRed).Fprintf(out, "usage: %s <order> <expr>\n", fields[0])
				continue
			}
			expr := strings.Join(fields[2:], "")
			if fields[0] == "build" {
				current = bdd.New(expr, fields[1])
			} else {
				current = bdd.NewBestOrder(expr, fields[1])
			}
			fmt.Fprintf(out, "built under %q: %d nodes\n", current.Order(), current.Size())

		case "eval":
			if current == nil {
				color.New(color.FgRed).Fprintln(out, "no BDD yet; use build first")
				continue
			}
			if len(fields) != 2 {
				color.New(color.FgRed).Fprintln(out, "usage: eval <bits>")
				continue
			}
			result, err := current.Evaluate(fields[1])
			if err != nil {
				color.New(color.FgRed).Fprintf(out, "%s\n", err)
				continue
			}
			fmt.Fprintf(out, "%c\n", result)

		case "size":
			if current == nil {
				color.New(color.FgRed).Fprintln(out, "no BDD yet; use build first")
				continue
			}
			fmt.Fprintln(out, current.Size())

		case "order":
			if current == nil {
				color.New(color.FgRed).Fprintln(out, "no BDD yet; use build first")
				continue
			}
			fmt.Fprintf(out, "%q\n", current.Order())

		default:
			color.New(color.FgRed).Fprintf(out, "unknown command %q; try 'help'\n", fields[0])
		}
	}
}
