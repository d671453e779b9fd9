package client

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	listBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// startSpinner shows message with a spinner on w until the returned stop
// function is called. Key derivation takes long enough to need one.
func startSpinner(w io.Writer, message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()

	return s.Stop
}

// progressBar renders chunk progress of one or more transfers as a single
// line on w.
type progressBar struct {
	mu    sync.Mutex
	w     io.Writer
	bar   progress.Model
	label string
}

func newProgressBar(w io.Writer, label string) *progressBar {
	return &progressBar{
		w:     w,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		label: label,
	}
}

// Update redraws the bar for done of total chunks.
func (p *progressBar) Update(done, total int) {
	if total <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	percent := float64(done) / float64(total)
	fmt.Fprintf(p.w, "\r%s %s %d/%d", p.label, p.bar.ViewAs(percent), done, total)
	if done == total {
		fmt.Fprintln(p.w)
	}
}

func printOK(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, okStyle.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func printHint(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, helpStyle.Render("→ "+fmt.Sprintf(format, args...)))
}
