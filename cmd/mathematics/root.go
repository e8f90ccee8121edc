package main

import (
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathematics",
	Short: "Evaluate and simplify expressions.",
	Long: `Evaluate and simplify real-valued expressions and equations.
	Expressions use + - * / ^, brackets, the functions sqrt, ln, log, abs and
	trig, and the constants pi and e.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !getFlag(cmd, "version") {
			fmt.Println(cmd.UsageString())
			return
		}
		fmt.Print("mathematics ")
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Print(info.Main.Version)
		} else {
			fmt.Print("(unknown version)")
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("in", "", "input file, - for stdin (default stdin if no args given)")
	rootCmd.PersistentFlags().BoolP("lines", "n", false, "parse separate input lines as separate expressions")
	rootCmd.AddCommand(evalCmd, simplifyCmd)
}
