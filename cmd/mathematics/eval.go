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

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression...]",
	Short: "Evaluate expressions.",
	Long: `Evaluate expressions and print their values.
	An input containing "=" is an equation; its result is whether both sides
	are within --tol of each other.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, err := bindings(getString(cmd, "vars"), getStringArray(cmd, "given"))
		if err != nil {
			log.Fatal(err)
		}
		cfg := evalConfig{
			simplify: getFlag(cmd, "simplify"),
			echo:     getFlag(cmd, "echo"),
			verb:     getString(cmd, "fmt") + "\n",
			tol:      getFloat(cmd, "tol"),
		}
		status := runInputs(cmd, args, func(text string) error {
			return evalOne(os.Stdout, ctx, text, cfg)
		})
		if status != 0 {
			os.Exit(status)
		}
	},
}

// evalConfig holds the output options of the eval command.
type evalConfig struct {
	// simplify inputs before evaluating them
	simplify bool
	// echo the parsed input before its result
	echo bool
	// verb is the format of results, including the newline
	verb string
	// tol is the tolerance for equations
	tol float64
}

// evalOne parses, evaluates, and prints one input.
func evalOne(w io.Writer, ctx *mathematics.Context, text string, cfg evalConfig) error {
	start := time.Now()
	if strings.Contains(text, "=") {
		eq, err := mathematics.ParseEquationString(text)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", text, err)
		}
		if cfg.simplify {
			eq = eq.Simplify()
		}
		log.Debugf("parsed %q in %v", text, time.Since(start))
		ok := ctx.Holds(eq, cfg.tol)
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("evaluating %q: %w", text, err)
		}
		if cfg.echo {
			fmt.Fprintf(w, "%v : ", eq)
		}
		fmt.Fprintln(w, ok)
		return nil
	}
	a, err := mathematics.ParseString(text)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", text, err)
	}
	if cfg.simplify {
		a = a.Simplify()
	}
	log.Debugf("parsed %q in %v", text, time.Since(start))
	r := ctx.Eval(a)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("evaluating %q: %w", text, err)
	}
	if cfg.echo {
		fmt.Fprintf(w, "%v : ", a)
	}
	fmt.Fprintf(w, cfg.verb, r)
	return nil
}

func init() {
	evalCmd.Flags().StringArray("given", nil, "name=value variable definition (any number of times)")
	evalCmd.Flags().String("vars", "", "YAML file of variable definitions")
	evalCmd.Flags().Bool("simplify", false, "simplify expressions before evaluating them")
	evalCmd.Flags().Bool("echo", false, "print each expression before its result")
	evalCmd.Flags().String("fmt", "%g", "result formatting string")
	evalCmd.Flags().Float64("tol", 1e-9, "tolerance for deciding whether an equation holds")
}
