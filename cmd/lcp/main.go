// Command lcp prints the longest common prefix of its arguments.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	lcp "github.com/smendon/go-lcp"
	"github.com/spf13/cobra"
)

var (
	placeholder string
	fromStdin   bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "lcp [word...]",
	Short: "Print the longest common prefix of the given words",
	Long: `Print the longest common prefix shared by every word.

Words are taken from the arguments, and additionally from standard input
(one word per line) when --stdin is set. If the words share no prefix, a
placeholder is printed instead so the output is never blank.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&placeholder, "placeholder", "<empty>", "text printed when the words share no prefix")
	rootCmd.Flags().BoolVar(&fromStdin, "stdin", false, "also read newline-delimited words from standard input")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
	}

	start := time.Now()
	var fold lcp.Folder
	words := 0
	alive := true
	for _, arg := range args {
		words++
		if alive = fold.Add(arg); !alive {
			break
		}
	}
	if fromStdin && alive {
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			words++
			// Once the running prefix is empty the outcome is fixed;
			// stop scanning instead of draining the stream.
			if !fold.Add(sc.Text()) {
				break
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	prefix, ok := fold.Result()
	if !ok {
		return errors.New("at least one word is required (arguments or --stdin)")
	}

	logger.Info().
		Int("words", words).
		Int("length", len(prefix)).
		Dur("took", time.Since(start)).
		Msg("prefix computed")

	if prefix == "" {
		fmt.Fprintln(cmd.OutOrStdout(), placeholder)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), prefix)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
