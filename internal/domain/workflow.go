// Package domain implements the path rules and the use-cases built on them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"sequence.dev/pkg/sequence/internal/adapter"
	m "sequence.dev/pkg/sequence/internal/model"
)

// ErrValidationFailed is returned by Validate when any source is unreadable
// or holds an invalid level.
var ErrValidationFailed = errors.New("level validation failed")

// UI is the presentation side of the workflow.
type UI interface {
	DisplayLevels(ctx context.Context, levels []m.LevelSummary) error
	DisplayValidation(ctx context.Context, reports []m.ValidationReport) error
	DisplayReplay(ctx context.Context, report m.ReplayReport) error
	Play(ctx context.Context, session *Session) error
}

// SourceArgs selects where levels come from.
type SourceArgs struct {
	Files   []string
	Builtin bool
}

// LevelsArgs contains the arguments for listing levels.
type LevelsArgs struct {
	SourceArgs
	Export string // when set, the listed levels are also written to this file
}

// ValidateArgs contains the arguments for validating level files.
type ValidateArgs struct {
	SourceArgs
	Parallel int
}

// ReplayArgs contains the arguments for replaying a move list.
type ReplayArgs struct {
	SourceArgs
	Level string
	Moves []m.GridPosition
	Drag  bool // use touch semantics instead of strict AddPosition
}

// PlayArgs contains the arguments for an interactive game.
type PlayArgs struct {
	SourceArgs
	Level string
}

// Workflow exposes the command-line use-cases.
type Workflow interface {
	Levels(ctx context.Context, args LevelsArgs) error
	Validate(ctx context.Context, args ValidateArgs) error
	Replay(ctx context.Context, args ReplayArgs) error
	Play(ctx context.Context, args PlayArgs) error
}

type workflow struct {
	store    adapter.LevelStore
	ui       UI
	defaults func() []m.Level
}

// NewWorkflow creates a Workflow reading level files through store and
// reporting through ui. builtin supplies the levels shipped with the binary.
func NewWorkflow(store adapter.LevelStore, ui UI, builtin func() []m.Level) Workflow {
	if builtin == nil {
		builtin = func() []m.Level { return DefaultLevels() }
	}

	return &workflow{
		store:    store,
		ui:       ui,
		defaults: builtin,
	}
}

func (w *workflow) Levels(ctx context.Context, args LevelsArgs) error {
	summaries, err := w.loadSummaries(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayLevels(ctx, summaries); err != nil {
		return err
	}

	if args.Export == "" {
		return nil
	}

	levels := make([]m.Level, 0, len(summaries))
	for _, s := range summaries {
		levels = append(levels, s.Level)
	}

	if err := w.store.Save(ctx, args.Export, levels); err != nil {
		return fmt.Errorf("export levels: %w", err)
	}

	slog.Info("exported levels", "path", args.Export, "levels", len(levels))

	return nil
}

func (w *workflow) Validate(ctx context.Context, args ValidateArgs) error {
	reports := make([]m.ValidationReport, len(args.Files))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i, path := range args.Files {
		i, path := i, path
		group.Go(func() error {
			reports[i] = w.validateFile(groupCtx, path)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if args.Builtin {
		reports = append([]m.ValidationReport{{
			Source: m.BuiltinSource,
			Levels: summarize(m.BuiltinSource, w.defaults()),
		}}, reports...)
	}

	if err := w.ui.DisplayValidation(ctx, reports); err != nil {
		return err
	}

	failed := 0

	for _, report := range reports {
		if !report.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d source(s)", ErrValidationFailed, failed, len(reports))
	}

	return nil
}

func (w *workflow) validateFile(ctx context.Context, path string) m.ValidationReport {
	levels, err := w.store.Load(ctx, path)
	if err != nil {
		slog.Warn("failed to load level file", "path", path, "error", err)
		return m.ValidationReport{Source: path, LoadErr: err}
	}

	report := m.ValidationReport{Source: path, Levels: summarize(path, levels)}
	slog.Info("validated level file", "path", path, "levels", len(levels), "invalid", report.Invalid())

	return report
}

func (w *workflow) Replay(ctx context.Context, args ReplayArgs) error {
	session, err := w.openSession(ctx, args.SourceArgs, args.Level)
	if err != nil {
		return err
	}

	report := replay(ctx, session, args.Moves, args.Drag)

	return w.ui.DisplayReplay(ctx, report)
}

func (w *workflow) Play(ctx context.Context, args PlayArgs) error {
	session, err := w.openSession(ctx, args.SourceArgs, args.Level)
	if err != nil {
		return err
	}

	return w.ui.Play(ctx, session)
}

func (w *workflow) openSession(ctx context.Context, args SourceArgs, ref string) (*Session, error) {
	levels, err := w.loadLevels(ctx, args)
	if err != nil {
		return nil, err
	}

	catalog := NewCatalog(levels)

	if ref != "" {
		index, ok := catalog.Find(ref)
		if !ok {
			return nil, fmt.Errorf("level %q not found", ref)
		}

		catalog.Select(index)
	}

	return NewSession(catalog)
}

func (w *workflow) loadSummaries(ctx context.Context, args SourceArgs) ([]m.LevelSummary, error) {
	var summaries []m.LevelSummary

	if args.Builtin {
		summaries = append(summaries, summarize(m.BuiltinSource, w.defaults())...)
	}

	for _, path := range args.Files {
		levels, err := w.store.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("load levels: %w", err)
		}

		summaries = append(summaries, summarize(path, levels)...)
	}

	return summaries, nil
}

func (w *workflow) loadLevels(ctx context.Context, args SourceArgs) ([]m.Level, error) {
	summaries, err := w.loadSummaries(ctx, args)
	if err != nil {
		return nil, err
	}

	levels := make([]m.Level, 0, len(summaries))
	for _, s := range summaries {
		levels = append(levels, s.Level)
	}

	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	return levels, nil
}

func summarize(source string, levels []m.Level) []m.LevelSummary {
	summaries := make([]m.LevelSummary, 0, len(levels))

	for i, level := range levels {
		summaries = append(summaries, m.LevelSummary{
			Index:  i + 1,
			Source: source,
			Level:  level,
			Err:    level.Check(),
		})
	}

	return summaries
}

func replay(ctx context.Context, session *Session, moves []m.GridPosition, drag bool) m.ReplayReport {
	report := m.ReplayReport{Level: session.Level()}

	for i, pos := range moves {
		if ctx.Err() != nil {
			break
		}

		step := m.ReplayStep{Index: i + 1, Position: pos}

		if drag {
			result := session.Touch(pos)
			step.Outcome = result.Outcome.String()
			step.Err = result.Err
		} else if err := session.AddPosition(pos); err != nil {
			step.Outcome = TouchRejected.String()
			step.Err = err
		} else {
			step.Outcome = TouchExtended.String()
		}

		state := session.State()
		step.CurrentNumber = state.CurrentNumber()
		step.PathLength = state.Len()
		step.Complete = state.IsComplete()

		report.Steps = append(report.Steps, step)
	}

	state := session.State()
	report.Path = state.CurrentPath()
	report.Current = state.CurrentNumber()
	report.Complete = state.IsComplete()

	return report
}
