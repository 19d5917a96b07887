package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/desertthunder/shelf/internal/models"
)

// WriteSummary prints the outcome of a successful sync.
func WriteSummary(w io.Writer, p *Palette, stats models.AppendStats) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		p.OK("Successfully completed!"),
		fmt.Sprintf("Provided ISBN: %d", stats.InputList),
		fmt.Sprintf("Fetched Volumes: %d", stats.NewVolumes),
	)
	return err
}

// FormatProgress renders a single progress line as "[step/total] message".
func FormatProgress(p *Palette, step, total int, message string) string {
	return fmt.Sprintf("%s %s", p.Help(fmt.Sprintf("[%d/%d]", step, total)), message)
}

// FormatRun renders a recorded sync run on one line.
func FormatRun(p *Palette, run models.SyncRun) string {
	status := p.OK(string(run.Status))
	if run.Status == models.SyncRunFailed {
		status = p.Err(string(run.Status))
	}

	line := fmt.Sprintf("%s  %s  %s  input=%d new=%d  (%s)",
		run.StartedAt.Local().Format(time.DateTime),
		status,
		run.LibraryPath,
		run.InputList,
		run.NewVolumes,
		run.Duration().Round(time.Millisecond),
	)
	if run.ErrorMessage != "" {
		line += "\n    " + p.Warn(run.ErrorMessage)
	}
	return line
}

// FormatVolume renders a volume on one line for library listings.
func FormatVolume(p *Palette, index int, v models.Volume) string {
	title := v.Title
	if title == "" {
		title = "(untitled)"
	}
	line := fmt.Sprintf("%d. %s", index, p.Title(title))
	if len(v.Authors) > 0 {
		line += fmt.Sprintf(" by %s", joinAuthors(v.Authors))
	}
	return line + " " + p.Help("["+v.ISBN.String()+"]")
}

func joinAuthors(authors []string) string {
	switch len(authors) {
	case 1:
		return authors[0]
	case 2:
		return authors[0] + " & " + authors[1]
	default:
		return fmt.Sprintf("%s et al.", authors[0])
	}
}
