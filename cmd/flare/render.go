package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"flare/internal/diag"
	"flare/internal/diagfmt"
	"flare/internal/ui"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <report.toml|report.msgpack>...",
	Short: "Render diagnostic report descriptions to the terminal",
	Long:  `Render reads one or more report descriptions (TOML or msgpack) and prints each as an annotated source listing`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	renderCmd.Flags().Bool("interactive", false, "page output in a scrollable viewport")
	renderCmd.Flags().Bool("stderr", false, "write pretty output to stderr instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return err
	}
	toStderr, err := cmd.Flags().GetBool("stderr")
	if err != nil {
		return err
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}

	reports, err := loadReports(cmd.Context(), args)
	if err != nil {
		return err
	}

	out := os.Stdout
	if toStderr {
		out = os.Stderr
	}

	return writeReports(out, reports, args, format, colorMode, interactive)
}

// loadReports loads and assembles every report concurrently; the result
// stays in argument order. The first failure cancels the group context,
// so siblings that have not started yet bail out instead of reading
// their files.
func loadReports(ctx context.Context, paths []string) ([]*diag.Report, error) {
	reports := make([]*diag.Report, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			spec, err := loadSpec(path)
			if err != nil {
				return err
			}
			rep, err := buildReport(spec)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func writeReports(out *os.File, reports []*diag.Report, args []string, format, colorMode string, interactive bool) error {
	for i, rep := range reports {
		snap := rep.Snapshot()
		switch colorMode {
		case "on":
			snap.Config.Color = true
		case "off":
			snap.Config.Color = false
		default: // auto: drop color when not writing to a terminal
			if !isTerminal(out) {
				snap.Config.Color = false
			}
		}

		switch {
		case format == "json":
			if err := diagfmt.WriteJSON(out, snap, rep.Sources()); err != nil {
				return err
			}
		case interactive:
			var buf bytes.Buffer
			if err := diagfmt.Render(&buf, snap, rep.Sources()); err != nil {
				return err
			}
			pager := ui.NewPager(args[i], buf.String())
			if _, err := tea.NewProgram(pager, tea.WithAltScreen()).Run(); err != nil {
				return err
			}
		case isTerminal(out) && colorMode != "on":
			if err := diagfmt.RenderTerminal(out, snap, rep.Sources()); err != nil {
				return err
			}
		default:
			if err := diagfmt.Render(out, snap, rep.Sources()); err != nil {
				return err
			}
		}
	}
	return nil
}
