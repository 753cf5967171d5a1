package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/typetheme/internal/corpus"
	"github.com/verte-zerg/typetheme/internal/model"
	"github.com/verte-zerg/typetheme/internal/report"
	"github.com/verte-zerg/typetheme/internal/scoring"
)

var scoreBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder(), true).
	BorderForeground(lipgloss.Color("#C89A3A")).
	Padding(1, 2)

func renderThemes(w io.Writer, pool corpus.Pool) error {
	return report.RenderThemes(w, pool)
}

func renderSamples(w io.Writer, samples []model.Sample) error {
	return report.RenderSamples(w, samples, terminalWidth(w))
}

func writeScore(w io.Writer, sample, typed string, elapsed time.Duration) error {
	result := scoring.Score(sample, typed, elapsed)
	if terminalWidth(w) == 0 {
		return report.RenderResult(w, result)
	}
	var buf bytes.Buffer
	if err := report.RenderResult(&buf, result); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, scoreBoxStyle.Render(strings.TrimRight(buf.String(), "\n")))
	return err
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
