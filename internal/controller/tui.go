package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"sequence.dev/pkg/sequence/internal/domain"
	m "sequence.dev/pkg/sequence/internal/model"
)

// TUI implements domain.UI using Bubble Tea for interactive play. Listings
// and reports are printed the same way SimpleUI prints them.
type TUI struct {
	*SimpleUI
	options []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command, options ...tea.ProgramOption) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		options:  options,
	}
}

// Play runs the interactive game until the player quits or ctx is done.
func (t *TUI) Play(ctx context.Context, session *domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newPlayModel(session, colorStyles())

	options := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithAltScreen(),
	}, t.options...)

	program := tea.NewProgram(model, options...)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// playView holds what the session observer last published. It is shared
// by every copy of the model, and View renders from it.
type playView struct {
	snapshot domain.Snapshot
	changes  int
}

// StateChanged implements domain.Observer.
func (v *playView) StateChanged(snapshot domain.Snapshot) {
	v.snapshot = snapshot
	v.changes++
}

// playModel represents the Bubble Tea model for one game session.
type playModel struct {
	session  *domain.Session
	view     *playView
	keys     keyMap
	help     help.Model
	styles   boardStyles
	cursor   m.GridPosition
	drawing  bool
	message  string
	failed   bool
	finished bool
	quitting bool
	width    int
	height   int
}

func newPlayModel(session *domain.Session, styles boardStyles) playModel {
	view := &playView{snapshot: session.Snapshot()}
	session.Subscribe(view)

	pm := playModel{
		session: session,
		view:    view,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  styles,
	}

	return pm.placeCursor()
}

func (pm playModel) Init() tea.Cmd {
	return nil
}

func (pm playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.help.Width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

//nolint:cyclop // Key handling requires multiple cases for play controls
func (pm playModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pm.keys.Quit):
		pm.quitting = true
		return pm, tea.Quit

	case key.Matches(msg, pm.keys.Help):
		pm.help.ShowAll = !pm.help.ShowAll
		return pm, nil

	case key.Matches(msg, pm.keys.Next):
		return pm.changeLevel(pm.session.NextLevel), nil

	case key.Matches(msg, pm.keys.Previous):
		return pm.changeLevel(pm.session.PreviousLevel), nil

	case key.Matches(msg, pm.keys.Reset):
		pm.session.Reset()
		pm.finished = false
		pm.setMessage("Path cleared", false)

		return pm, nil

	case key.Matches(msg, pm.keys.Undo):
		pm.session.RemoveLastPosition()
		pm.finished = pm.session.State().IsComplete()

		if last, ok := pm.session.State().Last(); ok {
			pm.cursor = last
		}

		pm.setMessage("Step undone", false)

		return pm, nil
	}

	if pm.finished {
		return pm, nil
	}

	switch {
	case key.Matches(msg, pm.keys.Up):
		return pm.moveCursor(m.DirectionUp), nil
	case key.Matches(msg, pm.keys.Down):
		return pm.moveCursor(m.DirectionDown), nil
	case key.Matches(msg, pm.keys.Left):
		return pm.moveCursor(m.DirectionLeft), nil
	case key.Matches(msg, pm.keys.Right):
		return pm.moveCursor(m.DirectionRight), nil
	case key.Matches(msg, pm.keys.Touch):
		return pm.touch(pm.cursor), nil
	case key.Matches(msg, pm.keys.Draw):
		pm.drawing = !pm.drawing
		if pm.drawing {
			return pm.touch(pm.cursor), nil
		}

		pm.setMessage("Draw mode off", false)

		return pm, nil
	}

	return pm, nil
}

func (pm playModel) moveCursor(d m.Direction) playModel {
	next := pm.cursor.Neighbor(d)
	if !next.IsWithinBounds(pm.session.Level().GridSize) {
		return pm
	}

	pm.cursor = next

	if pm.drawing {
		return pm.touch(next)
	}

	return pm
}

func (pm playModel) touch(pos m.GridPosition) playModel {
	result := pm.session.Touch(pos)

	switch result.Outcome {
	case domain.TouchRejected:
		pm.setMessage(result.Err.Error(), true)
	case domain.TouchTruncated:
		pm.setMessage(fmt.Sprintf("Path cut back to %s", pos), false)
	case domain.TouchExtended, domain.TouchIgnored:
		pm.setMessage("", false)
	}

	if pm.session.State().IsComplete() {
		pm.finished = true
		pm.drawing = false
	}

	return pm
}

func (pm playModel) changeLevel(move func() (bool, error)) playModel {
	moved, err := move()
	if err != nil {
		pm.setMessage(err.Error(), true)
		return pm
	}

	if moved {
		pm.finished = false
		pm.drawing = false
		pm.setMessage("", false)

		return pm.placeCursor()
	}

	return pm
}

// placeCursor puts the cursor on node 1 of the current level.
func (pm playModel) placeCursor() playModel {
	if start, ok := pm.session.Level().Position(1); ok {
		pm.cursor = start
	}

	return pm
}

func (pm *playModel) setMessage(message string, failed bool) {
	pm.message = message
	pm.failed = failed
}

func (pm playModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	level := pm.session.Level()
	snap := pm.view.snapshot
	catalog := pm.session.Catalog()

	fmt.Fprintf(&b, "%s  %s\n\n",
		pm.styles.title.Render(level.Name),
		pm.styles.faint.Render(fmt.Sprintf("level %d/%d", catalog.Index()+1, catalog.Len())))
	b.WriteString(renderProgress(snap.MaxNodeNumber, snap.CurrentNumber, pm.styles))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(level, snap, &pm.cursor, pm.styles))
	b.WriteString("\n\n")

	mode := "touch"
	if pm.drawing {
		mode = "draw"
	}

	fmt.Fprintf(&b, "%s\n", pm.styles.faint.Render(fmt.Sprintf("mode: %s | cell %s | %d cells | %d changes",
		mode, pm.cursor, len(snap.Path), pm.view.changes)))

	if pm.message != "" {
		style := pm.styles.faint
		if pm.failed {
			style = pm.styles.failure
		}

		fmt.Fprintf(&b, "%s\n", style.Render(pm.message))
	}

	if pm.finished {
		b.WriteString("\n")
		b.WriteString(pm.completionPanel(level, catalog.HasNext()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pm.help.View(pm.keys))
	b.WriteString("\n")

	return b.String()
}

func (pm playModel) completionPanel(level m.Level, hasNext bool) string {
	lines := []string{
		pm.styles.success.Render("Level Complete!"),
		level.Name,
		"",
	}

	if hasNext {
		lines = append(lines, "n: next level")
	}

	lines = append(lines, "r: replay", "q: quit")

	return pm.styles.panel.Render(strings.Join(lines, "\n"))
}
