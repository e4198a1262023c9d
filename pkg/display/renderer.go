// Package display renders reconciliation reports and store statistics for
// the terminal. Rich formatting is only applied when stdout is a TTY.
package display

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/isaacfidler/cratedig/pkg/reconcile"
	"github.com/isaacfidler/cratedig/pkg/style"
)

// Renderer formats engine output for the terminal.
type Renderer struct {
	rich bool
}

// NewRenderer creates a renderer, detecting whether stdout is a terminal.
func NewRenderer() *Renderer {
	return &Renderer{
		rich: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// RenderReport formats a reconciliation run summary.
func (r *Renderer) RenderReport(report reconcile.Report) string {
	var b strings.Builder

	if report.DryRun {
		b.WriteString(r.muted("[dry run] no changes were made") + "\n")
	}

	line := fmt.Sprintf("%d scanned, %d links created, %d removed",
		report.Scanned, report.Created, report.Removed)
	if report.PrunedSources > 0 {
		line += fmt.Sprintf(", %d sources pruned", report.PrunedSources)
	}
	if report.Failed > 0 {
		line += ", " + r.bad(fmt.Sprintf("%d failed", report.Failed))
	}
	b.WriteString(line + "\n")

	for _, err := range report.Errors {
		b.WriteString("  " + r.bad(err.Error()) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderStats formats per-category link counts grouped by taxonomy branch.
func (r *Renderer) RenderStats(stats reconcile.Stats) string {
	var b strings.Builder

	b.WriteString(r.title("Library statistics") + "\n")
	b.WriteString(fmt.Sprintf("Tracked samples: %d\n", stats.TotalSources))

	byBranch := make(map[string][]reconcile.CategoryCount)
	var branches []string
	for _, cc := range stats.Categories {
		branch := cc.Category.Branch()
		if _, seen := byBranch[branch]; !seen {
			branches = append(branches, branch)
		}
		byBranch[branch] = append(byBranch[branch], cc)
	}
	sort.Strings(branches)

	for _, branch := range branches {
		b.WriteString("\n" + r.title(branch) + "\n")
		rows := pterm.TableData{}
		for _, cc := range byBranch[branch] {
			label := strings.TrimPrefix(cc.Category.String(), branch+"/")
			rows = append(rows, []string{label, strconv.Itoa(cc.Count)})
		}
		rendered, err := pterm.DefaultTable.WithData(rows).Srender()
		if err != nil {
			// Table rendering is cosmetic; fall back to plain rows
			for _, row := range rows {
				b.WriteString("  " + row[0] + ": " + row[1] + "\n")
			}
			continue
		}
		b.WriteString(rendered + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderError formats a fatal error.
func (r *Renderer) RenderError(err error) string {
	return r.bad(fmt.Sprintf("Error: %v", err))
}

func (r *Renderer) title(s string) string {
	if !r.rich {
		return s
	}
	return style.TitleStyle.Render(s)
}

func (r *Renderer) muted(s string) string {
	if !r.rich {
		return s
	}
	return style.MutedStyle.Render(s)
}

func (r *Renderer) bad(s string) string {
	if !r.rich {
		return s
	}
	return style.ErrorStyle.Render(s)
}
