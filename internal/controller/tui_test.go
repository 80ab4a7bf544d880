package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sequence.dev/pkg/sequence/internal/domain"
	m "sequence.dev/pkg/sequence/internal/model"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) playModel {
	t.Helper()

	session, err := domain.NewSession(domain.NewCatalog(domain.DefaultLevels()))
	require.NoError(t, err)

	return newPlayModel(session, plainStyles())
}

func press(t *testing.T, pm playModel, msgs ...tea.KeyMsg) playModel {
	t.Helper()

	for _, msg := range msgs {
		next, _ := pm.Update(msg)

		var ok bool
		pm, ok = next.(playModel)
		require.True(t, ok)
	}

	return pm
}

func TestPlayModel_StartsOnNodeOne(t *testing.T) {
	pm := newTestModel(t)

	assert.Equal(t, m.Pos(0, 0), pm.cursor)
	assert.Nil(t, pm.Init())
	assert.Contains(t, pm.View(), "Tutorial")
	assert.Contains(t, pm.View(), "level 1/4")
}

func TestPlayModel_TouchAndReject(t *testing.T) {
	pm := newTestModel(t)

	pm = press(t, pm, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, m.Pos(1, 0), pm.cursor)
	assert.True(t, pm.failed)
	assert.Equal(t, m.ErrMustStartAtOne.Error(), pm.message)
	assert.Empty(t, pm.session.Snapshot().Path)

	pm = press(t, pm, runes("k"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, pm.failed)
	assert.Len(t, pm.session.Snapshot().Path, 1)
	assert.Equal(t, 1, pm.view.changes)
	assert.Equal(t, pm.session.Snapshot(), pm.view.snapshot)
}

func TestPlayModel_CursorStaysOnGrid(t *testing.T) {
	pm := newTestModel(t)

	pm = press(t, pm, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, m.Pos(0, 0), pm.cursor)
}

func TestPlayModel_DrawToCompletion(t *testing.T) {
	pm := newTestModel(t)

	pm = press(t, pm, runes("d"))
	assert.True(t, pm.drawing)

	pm = press(t, pm,
		runes("l"), runes("l"), runes("l"),
		runes("j"), runes("j"), runes("j"),
	)

	snap := pm.session.Snapshot()
	assert.True(t, snap.Complete)
	assert.Len(t, snap.Path, 7)
	assert.True(t, pm.finished)
	assert.False(t, pm.drawing)

	view := pm.View()
	assert.Contains(t, view, "Level Complete!")
	assert.Contains(t, view, "n: next level")
	assert.Contains(t, view, "mode: touch")

	pm = press(t, pm, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, m.Pos(3, 3), pm.cursor, "movement is ignored once complete")

	pm = press(t, pm, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.False(t, pm.finished)
	assert.Equal(t, m.Pos(2, 3), pm.cursor)
	assert.Len(t, pm.session.Snapshot().Path, 6)
}

func TestPlayModel_DrawTruncates(t *testing.T) {
	pm := newTestModel(t)

	pm = press(t, pm, runes("d"), runes("l"), runes("l"), runes("h"))

	assert.Equal(t, []m.GridPosition{m.Pos(0, 0), m.Pos(0, 1)}, pm.session.Snapshot().Path)
	assert.Contains(t, pm.message, "Path cut back to (0,1)")

	pm = press(t, pm, runes("d"))
	assert.False(t, pm.drawing)
}

func TestPlayModel_ResetAndLevels(t *testing.T) {
	pm := newTestModel(t)

	pm = press(t, pm, tea.KeyMsg{Type: tea.KeyEnter}, runes("r"))
	assert.Empty(t, pm.session.Snapshot().Path)
	assert.Equal(t, "Path cleared", pm.message)

	pm = press(t, pm, runes("p"))
	assert.Equal(t, "Tutorial", pm.session.Level().Name)

	pm = press(t, pm, runes("l"), runes("n"))
	assert.Equal(t, "Classic", pm.session.Level().Name)
	assert.Equal(t, m.Pos(0, 0), pm.cursor)
	assert.Contains(t, pm.View(), "level 2/4")

	pm = press(t, pm, runes("n"), runes("n"), runes("n"))
	assert.Equal(t, "Corners", pm.session.Level().Name)
}

func TestPlayModel_HelpAndQuit(t *testing.T) {
	pm := newTestModel(t)

	pm = press(t, pm, runes("?"))
	assert.True(t, pm.help.ShowAll)

	next, _ := pm.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	pm = next.(playModel)
	assert.Equal(t, 80, pm.width)

	next, cmd := pm.Update(runes("q"))
	pm = next.(playModel)
	require.NotNil(t, cmd)
	assert.True(t, pm.quitting)
	assert.Empty(t, pm.View())
}

func TestPlayModel_RendersObservedSnapshot(t *testing.T) {
	pm := newTestModel(t)

	pm = press(t, pm, runes("d"), runes("l"), runes("l"))
	assert.Len(t, pm.view.snapshot.Path, 3)
	assert.Contains(t, pm.View(), "3 cells | 3 changes")

	pm = press(t, pm, runes("n"))
	assert.Equal(t, "Classic", pm.view.snapshot.LevelName)
	assert.Empty(t, pm.view.snapshot.Path)
	assert.Contains(t, pm.View(), "0 cells | 4 changes")
}
