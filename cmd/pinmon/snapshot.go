package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/pinmon/internal/app"
	"github.com/five82/pinmon/internal/category"
	"github.com/five82/pinmon/internal/logging"
	"github.com/five82/pinmon/internal/monitor"
)

func newSnapshotCommand(f *flags) *cobra.Command {
	var (
		output  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the current windows once and exit",
		Long: `Load the measurement file once with the resolved settings and print the
visible window of each selected category. The poll loop is not started.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logger := logging.NewConsoleLogger(cmd.ErrOrStderr(), level)

			batch, err := app.Snapshot(f.options())
			if err != nil {
				return err
			}
			logger.Debug("snapshot loaded",
				"source_size", batch.SourceSize,
				"samples", batch.Total,
				"window", batch.WindowSize,
			)
			if batch.Rejected > 0 {
				logger.Warn("malformed lines skipped", "count", batch.Rejected)
			}
			if len(batch.Orphans) > 0 {
				logger.Warn("records with unknown category keys", "keys", strings.Join(category.Labels(batch.Orphans), " "))
			}

			switch output {
			case "json":
				return writeJSON(cmd.OutOrStdout(), batch)
			case "text", "":
				return writeTable(cmd.OutOrStdout(), batch)
			default:
				return fmt.Errorf("unknown output format %q (want text or json)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log load details to stderr")
	return cmd
}

func writeJSON(w io.Writer, b monitor.Batch) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, b monitor.Batch) error {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	muted := cell.Foreground(lipgloss.Color("8"))

	rows := make([][]string, 0, len(b.Views))
	for _, v := range b.Views {
		first, last := v.Range()
		row := []string{
			v.Category.Label,
			fmt.Sprintf("%d–%d", first, last),
			strconv.Itoa(len(v.Values)),
		}
		if v.Empty() {
			row = append(row, "-", "-", "-", "No data for "+v.Category.Label)
		} else {
			s := v.Stats()
			row = append(row,
				formatValue(s.Last),
				formatValue(s.Min)+"–"+formatValue(s.Max),
				formatValue(s.Mean),
				formatValues(v.Values),
			)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Category", "Range", "N", "Last", "Min–Max", "Mean", "Values").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row >= 0 && row < len(b.Views) && b.Views[row].Empty():
				return muted
			default:
				return cell
			}
		})

	summary := fmt.Sprintf("TestCount range of %d  max %g mΩ  samples %d  rejected %d  size %d bytes",
		b.WindowSize, b.MaxValue, b.Total, b.Rejected, b.SourceSize)
	if _, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), summary); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
