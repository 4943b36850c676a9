package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steipete/tautui"
	"github.com/steipete/tautui/pkg/textutil"
)

// NewWidthCommand creates the width command.
func NewWidthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "width [text...]",
		Short: "Print the visible width of text in terminal cells",
		Long: `Print how many terminal cells the text occupies. Escape sequences are
ignored, wide characters count as two cells. Reads stdin when no text is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), textutil.VisibleWidth(text))
			return nil
		},
	}
}

// NewStripCommand creates the strip command.
func NewStripCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove ANSI escape sequences from text",
		Long:  `Remove CSI, OSC and other escape sequences. Reads stdin when no text is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), textutil.StripANSI(text))
			return nil
		},
	}
}

// NewTruncateCommand creates the truncate command.
func NewTruncateCommand() *cobra.Command {
	var (
		width int
		tail  string
	)

	cmd := &cobra.Command{
		Use:   "truncate --width N [text...]",
		Short: "Truncate text to a visible width",
		Long: `Shorten text so that it fits in N terminal cells, ending with the tail
string. Styling is preserved up to the cut. Reads stdin when no text is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePositive("width", width); err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			out := textutil.Truncate(text, width, tail)
			tautui.Logger().Debug("truncated", "in", textutil.VisibleWidth(text), "out", textutil.VisibleWidth(out))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "Maximum visible width")
	cmd.Flags().StringVar(&tail, "tail", "…", "String appended when text is cut")
	return cmd
}

// NewWrapCommand creates the wrap command.
func NewWrapCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "wrap --width N [text...]",
		Short: "Word-wrap text to a visible width",
		Long: `Wrap text at word boundaries so no line exceeds N terminal cells.
Overlong words are split and styling continues across lines. Reads stdin
when no text is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePositive("width", width); err != nil {
				return err
			}
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			lines := textutil.Wrap(text, width)
			tautui.Logger().Debug("wrapped", "width", width, "lines", len(lines))
			for _, line := range lines {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "Maximum visible width")
	return cmd
}
