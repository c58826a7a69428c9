package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/advent-go/advent/pkg/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readInput loads a whole puzzle input. An empty path falls back to the
// day's file under the configured input directory; "-" reads stdin.
func readInput(cmd *cobra.Command, path string, day types.Day) (string, error) {
	if path == "" {
		path = filepath.Join(cfg.InputDir, day.InputName())
	}
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("loaded input", zap.String("path", path), zap.Int("bytes", len(data)))
	return string(data), nil
}

func parseDay(arg string) (types.Day, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid day %q", arg)
	}
	return types.Day(n), nil
}
