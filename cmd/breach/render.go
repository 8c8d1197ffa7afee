package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/breach/puzzle"
	"github.com/katalvlaran/breach/solution"
	"github.com/katalvlaran/breach/solve"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	pickedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Padding(0, 1)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// renderHeader prints the file name and search statistics.
func renderHeader(file string, stats solve.Stats) string {
	line := fmt.Sprintf("%s  (%d nodes, %s)", file, stats.Nodes, stats.Elapsed.Round(100*time.Microsecond))
	if stats.TimedOut {
		line += "  [time limit hit, best incumbent shown]"
	}

	return titleStyle.Render(line)
}

// renderSolution draws the grid with the winning path highlighted and
// step-numbered, then the buffer, the daemon report and the score.
func renderSolution(p *puzzle.Puzzle, s solution.Solution) string {
	order := make(map[puzzle.Coord]int, s.Len())
	for i, c := range s.Path() {
		order[c] = i + 1
	}

	var b strings.Builder
	for r := 0; r < p.Rows(); r++ {
		cells := make([]string, 0, p.Cols())
		for c := 0; c < p.Cols(); c++ {
			coord := puzzle.Coord{Row: r, Col: c}
			label := p.At(coord).String()
			if step, ok := order[coord]; ok {
				cells = append(cells, pickedStyle.Render(fmt.Sprintf("%s·%d", label, step)))
			} else {
				cells = append(cells, cellStyle.Render(label))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteByte('\n')
	}

	b.WriteString("buffer:")
	for _, sym := range s.BufferSequence() {
		b.WriteByte(' ')
		b.WriteString(pickedStyle.Render(sym.String()))
	}
	b.WriteByte('\n')

	active := s.ActiveDaemons()
	for i := 0; i < p.DaemonCount(); i++ {
		labels := make([]string, 0, p.DaemonLen(i))
		for _, sym := range p.Daemon(i) {
			labels = append(labels, sym.String())
		}
		mark := idleStyle.Render("✘")
		if active[i] {
			mark = activeStyle.Render("✔")
		}
		fmt.Fprintf(&b, "%s daemon %d: %s (%d pts)\n", mark, i, strings.Join(labels, " "), p.Cost(i))
	}
	fmt.Fprintf(&b, "total: %s", titleStyle.Render(fmt.Sprintf("%d pts", s.TotalPoints())))

	return b.String()
}

// renderNoSolution reports the absence of a solution with its reason.
func renderNoSolution(n solution.NoSolution) string {
	return faintStyle.Render("no solution: " + n.Reason)
}
