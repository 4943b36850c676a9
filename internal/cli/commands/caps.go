package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steipete/tautui"
	"github.com/steipete/tautui/internal/config"
	"github.com/steipete/tautui/pkg/termcaps"
)

type capsReport struct {
	Colors    string `json:"colors"`
	Unicode   bool   `json:"unicode"`
	AltScreen bool   `json:"alt_screen"`
	TTY       bool   `json:"tty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// NewCapsCommand creates the caps command.
func NewCapsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Show detected terminal capabilities",
		Long: `Detect what the terminal attached to stdout supports: color depth,
Unicode, the alternate screen, and its size. Detection reads the environment
(TERM, COLORTERM, NO_COLOR, emulator session variables) and probes stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caps := detect(cmd)
			if config.FromContext(cmd.Context()).NoColor {
				caps = caps.WithNoColor()
			}
			tautui.Logger().Debug("detected capabilities", "caps", caps.String(), "tty", caps.TTY)

			report := capsReport{
				Colors:    caps.Colors.String(),
				Unicode:   caps.Unicode,
				AltScreen: caps.AltScreen,
				TTY:       caps.TTY,
				Width:     caps.Width,
				Height:    caps.Height,
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("failed to encode capabilities: %w", err)
				}
				return nil
			}

			_, _ = fmt.Fprintf(out, "colors:     %s\n", report.Colors)
			_, _ = fmt.Fprintf(out, "unicode:    %t\n", report.Unicode)
			_, _ = fmt.Fprintf(out, "altscreen:  %t\n", report.AltScreen)
			_, _ = fmt.Fprintf(out, "tty:        %t\n", report.TTY)
			if report.Width > 0 {
				_, _ = fmt.Fprintf(out, "size:       %dx%d\n", report.Width, report.Height)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// detect probes the command's output when it is a file, otherwise the
// environment alone.
func detect(cmd *cobra.Command) termcaps.Capabilities {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return termcaps.Detect(f)
	}
	return termcaps.DetectEnv(os.Getenv)
}
