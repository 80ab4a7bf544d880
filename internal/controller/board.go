package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"sequence.dev/pkg/sequence/internal/domain"
	m "sequence.dev/pkg/sequence/internal/model"
)

// terminal colours for the node palette
var paletteColors = map[m.PaletteColor]lipgloss.Color{
	m.ColorBlue:   lipgloss.Color("33"),
	m.ColorRed:    lipgloss.Color("196"),
	m.ColorGreen:  lipgloss.Color("40"),
	m.ColorOrange: lipgloss.Color("208"),
	m.ColorPurple: lipgloss.Color("129"),
	m.ColorPink:   lipgloss.Color("205"),
	m.ColorYellow: lipgloss.Color("226"),
	m.ColorCyan:   lipgloss.Color("51"),
}

type boardStyles struct {
	empty    lipgloss.Style
	path     lipgloss.Style
	head     lipgloss.Style
	cursor   lipgloss.Style
	title    lipgloss.Style
	faint    lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	panel    lipgloss.Style
	node     func(number int, reached bool) lipgloss.Style
	progress func(number int, reached bool) lipgloss.Style
}

func colorStyles() boardStyles {
	pathColor := paletteColors[m.PaletteColorFor(1)]

	return boardStyles{
		empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		path:    lipgloss.NewStyle().Foreground(pathColor),
		head:    lipgloss.NewStyle().Foreground(pathColor).Bold(true),
		cursor:  lipgloss.NewStyle().Reverse(true),
		title:   lipgloss.NewStyle().Bold(true),
		faint:   lipgloss.NewStyle().Faint(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("40")).
			Padding(0, 2),
		node: func(number int, reached bool) lipgloss.Style {
			color := paletteColors[m.PaletteColorFor(number)]
			if reached {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(color)
			}

			return lipgloss.NewStyle().Bold(true).Foreground(color)
		},
		progress: func(number int, reached bool) lipgloss.Style {
			if reached {
				return lipgloss.NewStyle().Foreground(paletteColors[m.PaletteColorFor(number)])
			}

			return lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		},
	}
}

func plainStyles() boardStyles {
	plain := lipgloss.NewStyle()

	return boardStyles{
		empty:    plain,
		path:     plain,
		head:     plain,
		cursor:   plain,
		title:    plain,
		faint:    plain,
		success:  plain,
		failure:  plain,
		panel:    plain,
		node:     func(int, bool) lipgloss.Style { return plain },
		progress: func(int, bool) lipgloss.Style { return plain },
	}
}

const (
	emptyGlyph = " · "
	pathGlyph  = " • "
	headGlyph  = " ● "
)

// connectorGlyphs draws a path cell from the directions of its two path
// neighbours. Keys are ordered Up, Down, Left, Right.
var connectorGlyphs = map[[2]m.Direction]string{
	{m.DirectionLeft, m.DirectionRight}: "───",
	{m.DirectionUp, m.DirectionDown}:    " │ ",
	{m.DirectionUp, m.DirectionRight}:   " └─",
	{m.DirectionUp, m.DirectionLeft}:    "─┘ ",
	{m.DirectionDown, m.DirectionRight}: " ┌─",
	{m.DirectionDown, m.DirectionLeft}:  "─┐ ",
}

// renderBoard draws the grid. cursor may be nil.
func renderBoard(level m.Level, snap domain.Snapshot, cursor *m.GridPosition, st boardStyles) string {
	order := make(map[m.GridPosition]int, len(snap.Path))
	for i, pos := range snap.Path {
		order[pos] = i
	}

	var b strings.Builder

	for row := 0; row < level.GridSize; row++ {
		for col := 0; col < level.GridSize; col++ {
			pos := m.Pos(row, col)

			text, style := cellGlyph(level, snap, order, pos, st)
			if cursor != nil && *cursor == pos {
				style = style.Inherit(st.cursor)
			}

			b.WriteString(style.Render(text))
		}

		if row < level.GridSize-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func cellGlyph(level m.Level, snap domain.Snapshot, order map[m.GridPosition]int, pos m.GridPosition, st boardStyles) (string, lipgloss.Style) {
	if number, ok := level.NodeNumber(pos); ok {
		return fmt.Sprintf("%2d ", number), st.node(number, number <= snap.CurrentNumber)
	}

	if !snap.IsVisited(pos) {
		return emptyGlyph, st.empty
	}

	switch index := order[pos]; {
	case index == len(snap.Path)-1:
		return headGlyph, st.head
	default:
		return connectorGlyph(snap.Path, index), st.path
	}
}

// connectorGlyph picks the line piece joining path[index] to the cells
// before and after it.
func connectorGlyph(path []m.GridPosition, index int) string {
	if index <= 0 || index >= len(path)-1 {
		return pathGlyph
	}

	in, okIn := path[index].DirectionTo(path[index-1])
	out, okOut := path[index].DirectionTo(path[index+1])

	if !okIn || !okOut {
		return pathGlyph
	}

	if out < in {
		in, out = out, in
	}

	if glyph, ok := connectorGlyphs[[2]m.Direction{in, out}]; ok {
		return glyph
	}

	return pathGlyph
}

// renderProgress draws one marker per node, filled once reached.
func renderProgress(maxNumber, current int, st boardStyles) string {
	markers := make([]string, 0, maxNumber)

	for number := 1; number <= maxNumber; number++ {
		glyph := "○"
		if number <= current {
			glyph = "●"
		}

		markers = append(markers, st.progress(number, number <= current).Render(glyph))
	}

	return strings.Join(markers, " ")
}
