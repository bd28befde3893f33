// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/talentbridge/internal/cvsummary"
	"github.com/jonathan/talentbridge/internal/fetch"
	"github.com/jonathan/talentbridge/internal/health"
	"github.com/jonathan/talentbridge/internal/pipeline"
	"github.com/jonathan/talentbridge/internal/readiness"
	"github.com/jonathan/talentbridge/internal/techstack"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Widths count runes so
// umlauts keep the frame aligned.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	if utf8.RuneCountInString(s) > width {
		runes := []rune(s)
		return string(runes[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}

// PrintExpose outputs the exposé readiness with its badge and gaps.
func (p *Printer) PrintExpose(r readiness.ExposeResult) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score:  %d%%\n", r.Score)
	fmt.Fprintf(&sb, "Badge:  %s (%s)", r.Badge, r.Level)
	writeList(&sb, "Fehlt:", r.MissingFields)

	p.printBox("EXPOSÉ READINESS", sb.String())
}

// PrintCompanyCompleteness outputs the company profile completeness.
func (p *Printer) PrintCompanyCompleteness(r readiness.CompanyResult) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score:     %d%%\n", r.Score)
	fmt.Fprintf(&sb, "Complete:  %t", r.Complete)
	writeList(&sb, "Fehlt:", r.MissingFields)

	p.printBox("COMPANY PROFILE", sb.String())
}

// PrintHealth outputs a scored health result under title.
func (p *Printer) PrintHealth(title string, r health.Result) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score:  %d (%s)\n", r.Score, r.Level)
	sb.WriteString(r.Message)
	writeList(&sb, "Issues:", r.Issues)

	p.printBox(title, sb.String())
}

// PrintRecruiting outputs the client recruiting health.
func (p *Printer) PrintRecruiting(r health.RecruitingResult) {
	title := "RECRUITING HEALTH"
	if r.CandidatesPerJob != nil {
		title = fmt.Sprintf("RECRUITING HEALTH (%.1f candidates/job)", *r.CandidatesPerJob)
	}
	p.PrintHealth(title, r.Result)
}

// PrintBottlenecks outputs the slowest stages.
func (p *Printer) PrintBottlenecks(bottlenecks []health.Bottleneck) {
	if len(bottlenecks) == 0 {
		p.printBox("BOTTLENECKS", "No stage above the dwell threshold")
		return
	}

	var sb strings.Builder
	count := min(len(bottlenecks), maxItemsToShow)
	for i := 0; i < count; i++ {
		b := bottlenecks[i]
		fmt.Fprintf(&sb, "%-18s %-8s %5.1f days  (%d)\n", b.Stage, b.Severity, b.AvgDays, b.Count)
	}
	if len(bottlenecks) > maxItemsToShow {
		fmt.Fprintf(&sb, "... and %d more\n", len(bottlenecks)-maxItemsToShow)
	}

	p.printBox("BOTTLENECKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFunnel outputs reached counts and step conversions.
func (p *Printer) PrintFunnel(steps []health.FunnelStep) {
	if len(steps) == 0 {
		return
	}

	var sb strings.Builder
	for _, step := range steps {
		conversion := "-"
		if step.Conversion != nil {
			conversion = fmt.Sprintf("%.1f%%", *step.Conversion)
		}
		fmt.Fprintf(&sb, "%-18s %5d  %s\n", step.Stage, step.Reached, conversion)
	}

	p.printBox("FUNNEL", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobStatus outputs the classified pipeline stage.
func (p *Printer) PrintJobStatus(s pipeline.JobStatus) {
	content := fmt.Sprintf("Stage:   %s\nHealth:  %s", s.Stage, s.Health)
	p.printBox("PIPELINE", content)
}

// PrintDescriptor outputs an anonymized company descriptor. Long descriptors wrap at
// the separators.
func (p *Printer) PrintDescriptor(descriptor string) {
	parts := strings.Split(descriptor, " | ")
	p.printBox("COMPANY DESCRIPTOR", strings.Join(parts, " |\n"))
}

// PrintSkillMatch outputs matched and missing skills.
func (p *Printer) PrintSkillMatch(m techstack.SkillMatch) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score:  %d%%", m.Score)
	writeList(&sb, "Matched:", m.Matched)
	writeList(&sb, "Missing:", m.Missing)

	p.printBox("SKILL MATCH", sb.String())
}

// PrintGroups outputs normalized labels by display bucket.
func (p *Printer) PrintGroups(groups []techstack.Group) {
	if len(groups) == 0 {
		return
	}

	var sb strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&sb, "%s: %s\n", g.Name, strings.Join(g.Labels, ", "))
	}
	p.printBox("TECH STACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCVSummary outputs the generated summary and bullets.
func (p *Printer) PrintCVSummary(r *cvsummary.Result) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(r.Summary)
	writeList(&sb, "Highlights:", r.Bullets)

	p.printBox("CV SUMMARY", sb.String())
}

// PrintEnrichment outputs what the website enrichment found and filled.
func (p *Printer) PrintEnrichment(s *fetch.Suggestion) {
	if s == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "URL:       %s\n", s.URL)
	if s.Meta.Title != "" {
		fmt.Fprintf(&sb, "Title:     %s\n", s.Meta.Title)
	}
	if s.Meta.LinkedInURL != "" {
		fmt.Fprintf(&sb, "LinkedIn:  %s\n", s.Meta.LinkedInURL)
	}
	fmt.Fprintf(&sb, "Rendered:  %t", s.Rendered)
	writeList(&sb, "Filled:", s.Filled)

	p.printBox("COMPANY ENRICHMENT", sb.String())
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n\n%s\n", heading)
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s", items[i])
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(items) > maxItemsToShow {
		fmt.Fprintf(sb, "\n  ... and %d more", len(items)-maxItemsToShow)
	}
}
