package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Nahuel-M/mathematics"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] [expression...]",
	Short: "Simplify expressions.",
	Long: `Simplify expressions and equations and print them in canonical form.
	The sides of an equation are simplified separately.`,
	Run: func(cmd *cobra.Command, args []string) {
		tree := getFlag(cmd, "tree")
		status := runInputs(cmd, args, func(text string) error {
			return simplifyOne(os.Stdout, text, tree)
		})
		if status != 0 {
			os.Exit(status)
		}
	},
}

// simplifyOne parses, simplifies, and prints one input. With tree, it prints
// the structure of the result instead of its text.
func simplifyOne(w io.Writer, text string, tree bool) error {
	show := func(e *mathematics.Expr) string {
		if tree {
			return e.Dump()
		}
		return e.String()
	}
	start := time.Now()
	if strings.Contains(text, "=") {
		eq, err := mathematics.ParseEquationString(text)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", text, err)
		}
		eq = eq.Simplify()
		log.Debugf("simplified %q in %v", text, time.Since(start))
		fmt.Fprintln(w, show(eq.Left), "=", show(eq.Right))
		return nil
	}
	a, err := mathematics.ParseString(text)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", text, err)
	}
	a = a.Simplify()
	log.Debugf("simplified %q in %v", text, time.Since(start))
	fmt.Fprintln(w, show(a))
	return nil
}

func init() {
	simplifyCmd.Flags().Bool("tree", false, "print the structure of results")
}
