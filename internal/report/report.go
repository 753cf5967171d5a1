package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/typetheme/internal/corpus"
	"github.com/verte-zerg/typetheme/internal/model"
	"github.com/verte-zerg/typetheme/internal/scoring"
)

// ResultLines formats a scored attempt the way it is acknowledged after a round.
func ResultLines(r scoring.Result) []string {
	return []string{
		"Thanks for choosing this platform! 😊",
		"",
		"Your results are:",
		fmt.Sprintf("Accuracy: %.2f%%", r.Accuracy),
		fmt.Sprintf("Words Per Minute: %.2f", r.WPM),
		fmt.Sprintf("Time Taken: %.2f seconds", r.ElapsedSeconds),
		fmt.Sprintf("Feedback: %s", r.Feedback()),
	}
}

// RenderResult prints a scored attempt.
func RenderResult(w io.Writer, r scoring.Result) error {
	for _, line := range ResultLines(r) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderThemes prints the themes of a pool with their sample counts.
func RenderThemes(w io.Writer, pool corpus.Pool) error {
	themes := pool.Themes()
	if len(themes) == 0 {
		_, err := fmt.Fprintln(w, "No themes found.")
		return err
	}
	rows := make([][]string, 0, len(themes))
	for _, theme := range themes {
		samples := pool.Samples(theme)
		shortest, longest := sampleLengths(samples)
		rows = append(rows, []string{
			string(theme),
			fmt.Sprintf("%d", len(samples)),
			fmt.Sprintf("%d", shortest),
			fmt.Sprintf("%d", longest),
		})
	}
	lines := formatTable([]string{"Theme", "Samples", "Shortest", "Longest"}, rows, map[int]bool{1: true, 2: true, 3: true})
	return writeLines(w, lines)
}

// RenderSamples prints stored samples. Text longer than maxWidth is truncated; 0 disables truncation.
func RenderSamples(w io.Writer, samples []model.Sample, maxWidth int) error {
	if len(samples) == 0 {
		_, err := fmt.Fprintln(w, "No samples found.")
		return err
	}
	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.ID),
			string(s.Theme),
			s.CreatedAt.Local().Format("2006-01-02"),
			s.Text,
		})
	}
	headers := []string{"ID", "Theme", "Added", "Text"}
	if maxWidth > 0 {
		used := 0
		for col := 0; col < 3; col++ {
			used += columnWidth(headers, rows, col) + 1
		}
		for _, row := range rows {
			row[3] = truncateCell(row[3], maxWidth-used)
		}
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{0: true}))
}

func columnWidth(headers []string, rows [][]string, col int) int {
	width := displayWidth(headers[col])
	for _, row := range rows {
		if w := displayWidth(row[col]); w > width {
			width = w
		}
	}
	return width
}

func sampleLengths(samples []string) (shortest, longest int) {
	for i, s := range samples {
		n := len([]rune(s))
		if i == 0 || n < shortest {
			shortest = n
		}
		if n > longest {
			longest = n
		}
	}
	return shortest, longest
}

func writeLines(w io.Writer, lines []string) error {
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return err
	}
	return nil
}
