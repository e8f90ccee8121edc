// Command mathematics evaluates and simplifies expressions and equations.
//
// Expressions come from the command line arguments, or from the --in file or
// standard input when there are none. With -n, or when standard input is a
// terminal, each line is a separate expression.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
