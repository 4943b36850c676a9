// Package commands implements the tautui subcommands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// inputText joins args with spaces, or reads stdin when there are none.
// A single trailing newline from stdin is dropped.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// requirePositive rejects non-positive --width values.
func requirePositive(name string, v int) error {
	if v < 1 {
		return fmt.Errorf("--%s must be at least 1, got %d", name, v)
	}
	return nil
}
