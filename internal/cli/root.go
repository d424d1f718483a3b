// Package cli implements the snailshell command.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/snailshell"
	"github.com/katalvlaran/snailshell/executor"
	"github.com/katalvlaran/snailshell/internal/logger"
	"github.com/katalvlaran/snailshell/spiral"
)

// ErrEmptyInput is returned when the input holds no document at all.
var ErrEmptyInput = errors.New("cli: empty input")

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	debug   bool
	jsonOut bool
	async   bool
	workers int
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "snailshell [file]",
		Short: "Print the clockwise spiral order of a square matrix",
		Long: "Reads a square matrix as YAML or JSON (e.g. [[1,2],[4,3]]) from file or stdin\n" +
			"and prints its elements in snail shell order.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(logger.Config{Debug: f.debug, Writer: cmd.ErrOrStderr()})

			raw, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			m, err := decodeMatrix(raw)
			if err != nil {
				return err
			}
			log.Debug("matrix.decoded", "rows", len(m))

			seq, err := run(cmd.Context(), m, f, log)
			if err != nil {
				log.Debug("traverse.failed", "err", err)
				return err
			}

			return writeSequence(cmd.OutOrStdout(), seq, f.jsonOut)
		},
	}

	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging to stderr")
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "print the sequence as a JSON array")
	cmd.Flags().BoolVar(&f.async, "async", false, "run the traversal on a worker pool")
	cmd.Flags().IntVar(&f.workers, "workers", executor.DefaultWorkers, "worker count for --async")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 10*time.Second, "maximum wait for --async (0 waits forever)")

	return cmd
}

// run traverses m inline, or through a dedicated executor with --async.
func run(ctx context.Context, m [][]float64, f rootFlags, log *slog.Logger) ([]float64, error) {
	if !f.async {
		return spiral.Traverse(m)
	}

	opts := executor.DefaultOptions()
	opts.Workers = f.workers
	opts.Name = "cli"
	opts.Logger = log
	sh, err := snailshell.New(opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = sh.Close() }()

	fut, err := snailshell.Submit(ctx, sh, m)
	if err != nil {
		return nil, err
	}
	log.Debug("task.submitted", "id", fut.ID())

	return fut.WaitTimeout(f.timeout)
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return b, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return b, nil
}

// decodeMatrix parses YAML (JSON is a subset) into rows of numbers.
func decodeMatrix(raw []byte) ([][]float64, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, ErrEmptyInput
	}
	var m [][]float64
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	return m, nil
}

func writeSequence(w io.Writer, seq []float64, asJSON bool) error {
	if asJSON {
		b, err := json.Marshal(seq)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
