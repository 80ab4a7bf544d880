package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"sequence.dev/pkg/sequence/internal/domain"
	m "sequence.dev/pkg/sequence/internal/model"
)

// ErrNotInteractive is returned by SimpleUI.Play: playing needs a terminal.
var ErrNotInteractive = errors.New("interactive play requires a terminal")

const (
	statusValid   = "ok"
	statusInvalid = "invalid"
)

// SimpleUI implements domain.UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayLevels prints a table of levels.
func (s *SimpleUI) DisplayLevels(ctx context.Context, levels []m.LevelSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(levels) == 0 {
		s.printf("No levels found\n")
		return nil
	}

	s.printf("%s", renderLevelsTable(levels))

	return nil
}

func renderLevelsTable(levels []m.LevelSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Name", "Grid", "Nodes", "Source", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	invalid := 0

	for i, summary := range levels {
		status := statusValid
		if !summary.Valid() {
			status = fmt.Sprintf("%s: %v", statusInvalid, summary.Err)
			invalid++
		}

		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			summary.Level.Name,
			fmt.Sprintf("%dx%d", summary.Level.GridSize, summary.Level.GridSize),
			fmt.Sprintf("%d", summary.Level.MaxNodeNumber()),
			summary.Source,
			status,
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Levels %d", len(levels)), "", "", "Invalid", fmt.Sprintf("%d", invalid)})
	table.Render()

	return tableBuffer.String()
}

// DisplayValidation prints one row per level and a line per unreadable source.
func (s *SimpleUI) DisplayValidation(ctx context.Context, reports []m.ValidationReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderValidationTable(reports))

	return nil
}

func renderValidationTable(reports []m.ValidationReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Level", "Result"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	total := 0
	failed := 0

	for _, report := range reports {
		if report.LoadErr != nil {
			table.Append([]string{report.Source, "-", fmt.Sprintf("unreadable: %v", report.LoadErr)})
			failed++

			continue
		}

		for _, summary := range report.Levels {
			total++

			result := statusValid
			if !summary.Valid() {
				result = fmt.Sprintf("%s: %v", statusInvalid, summary.Err)
				failed++
			}

			table.Append([]string{report.Source, levelLabel(summary), result})
		}
	}

	table.SetFooter([]string{fmt.Sprintf("Sources %d", len(reports)), fmt.Sprintf("Levels %d", total), fmt.Sprintf("Failures %d", failed)})
	table.Render()

	return tableBuffer.String()
}

func levelLabel(summary m.LevelSummary) string {
	name := summary.Level.Name
	if name == "" {
		name = summary.Level.ID
	}

	return fmt.Sprintf("%d. %s", summary.Index, name)
}

// DisplayReplay prints each replayed move and the final state.
func (s *SimpleUI) DisplayReplay(ctx context.Context, report m.ReplayReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Level: %s (%dx%d, %d nodes)\n\n", report.Level.Name, report.Level.GridSize, report.Level.GridSize, report.Level.MaxNodeNumber())
	s.printf("%s\n", renderReplayTable(report))
	s.printf("%s\n", replaySummary(report))

	return nil
}

func renderReplayTable(report m.ReplayReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Step", "Move", "Result", "Current", "Length"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, step := range report.Steps {
		result := step.Outcome
		if step.Err != nil {
			result = fmt.Sprintf("%s (%v)", step.Outcome, step.Err)
		}

		table.Append([]string{
			fmt.Sprintf("%d", step.Index),
			step.Position.String(),
			result,
			fmt.Sprintf("%d", step.CurrentNumber),
			fmt.Sprintf("%d", step.PathLength),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func replaySummary(report m.ReplayReport) string {
	cells := make([]string, 0, len(report.Path))
	for _, pos := range report.Path {
		cells = append(cells, pos.String())
	}

	status := "incomplete"
	if report.Complete {
		status = "complete"
	}

	return fmt.Sprintf("Path: %s\nReached %d/%d, %d rejected move(s), %s",
		strings.Join(cells, " "), report.Current, report.Level.MaxNodeNumber(), report.Rejected(), status)
}

// Play cannot run without a terminal; it prints the board and fails.
func (s *SimpleUI) Play(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", renderBoard(session.Level(), session.Snapshot(), nil, plainStyles()))

	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
