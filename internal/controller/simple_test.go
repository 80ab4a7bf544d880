package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sequence.dev/pkg/sequence/internal/domain"
	m "sequence.dev/pkg/sequence/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return cmd, &out
}

func TestSimpleUI_DisplayLevels(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	broken := m.NewLevel("Broken", 3, map[int]m.GridPosition{2: m.Pos(0, 0)}, m.WithID("broken"))
	levels := []m.LevelSummary{
		{Index: 1, Source: m.BuiltinSource, Level: tutorialLevel()},
		{Index: 1, Source: "extra.yaml", Level: broken, Err: broken.Check()},
	}

	require.NoError(t, ui.DisplayLevels(context.Background(), levels))

	output := out.String()
	assert.Contains(t, output, "Tutorial")
	assert.Contains(t, output, "4x4")
	assert.Contains(t, output, "built-in")
	assert.Contains(t, output, "extra.yaml")
	assert.Contains(t, output, "invalid: node numbers are not sequential from 1")
}

func TestSimpleUI_DisplayLevelsEmpty(t *testing.T) {
	cmd, out := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayLevels(context.Background(), nil))
	assert.Equal(t, "No levels found\n", out.String())
}

func TestSimpleUI_DisplayValidation(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	reports := []m.ValidationReport{
		{Source: "good.yaml", Levels: []m.LevelSummary{{Index: 1, Source: "good.yaml", Level: tutorialLevel()}}},
		{Source: "gone.yaml", LoadErr: errors.New("no such file")},
	}

	require.NoError(t, ui.DisplayValidation(context.Background(), reports))

	output := out.String()
	assert.Contains(t, output, "1. Tutorial")
	assert.Contains(t, output, "unreadable: no such file")
}

func TestSimpleUI_DisplayReplay(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	report := m.ReplayReport{
		Level: tutorialLevel(),
		Steps: []m.ReplayStep{
			{Index: 1, Position: m.Pos(0, 0), Outcome: "extended", CurrentNumber: 1, PathLength: 1},
			{Index: 2, Position: m.Pos(2, 2), Outcome: "rejected", Err: m.ErrNotAdjacent, CurrentNumber: 1, PathLength: 1},
		},
		Path:    []m.GridPosition{m.Pos(0, 0)},
		Current: 1,
	}

	require.NoError(t, ui.DisplayReplay(context.Background(), report))

	output := out.String()
	assert.Contains(t, output, "Level: Tutorial (4x4, 3 nodes)")
	assert.Contains(t, output, "rejected (Can only move to adjacent cells)")
	assert.Contains(t, output, "Path: (0,0)")
	assert.Contains(t, output, "Reached 1/3, 1 rejected move(s), incomplete")
}

func TestSimpleUI_Play(t *testing.T) {
	cmd, out := newTestCommand()

	session, err := domain.NewSession(domain.NewCatalog([]m.Level{tutorialLevel()}))
	require.NoError(t, err)

	err = NewSimpleUI(cmd).Play(context.Background(), session)
	require.ErrorIs(t, err, ErrNotInteractive)
	assert.Contains(t, out.String(), " 1  ·  ·  2 ")
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplayLevels(ctx, nil), context.Canceled)
	require.ErrorIs(t, ui.DisplayValidation(ctx, nil), context.Canceled)
	require.ErrorIs(t, ui.DisplayReplay(ctx, m.ReplayReport{}), context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
}

func TestIsTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTTY(&buf))
}
