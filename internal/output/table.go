// Package output provides terminal output utilities for bundlescope.
//
// This package includes:
//   - Table rendering for modules, dependencies, recommendations, and
//     recorded report history
//   - Summary and footer lines for analysis results
//   - Human-readable formatting for sizes and dates
//
// All rendering uses ASCII characters and ANSI color codes for terminal
// output. Colors are suppressed when stdout is not a TTY or NO_COLOR is set.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/bundlescope/internal/analyzer"
	"github.com/blackwell-systems/bundlescope/internal/store"
)

// ANSI color codes for tier display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderModuleTable renders a table of classified modules.
// Note: does not sort - expects records pre-sorted by the analyzer.
func RenderModuleTable(modules []analyzer.ModuleRecord) string {
	if len(modules) == 0 {
		return "No modules found.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-32s %-9s %-9s %-12s %-6s %s\n",
		"Module", "Size", "Gzip Est", "Category", "Split", "Potential"))
	sb.WriteString(strings.Repeat("─", 80))
	sb.WriteString("\n")

	for _, m := range modules {
		split := "no"
		if m.Splittable {
			split = "yes"
		}

		potential := colorize(getPotentialColor(m.Potential), m.Potential)

		sb.WriteString(fmt.Sprintf("%-32s %-9s %-9s %-12s %-6s %s\n",
			truncate(m.Name, 32),
			formatSize(m.SizeBytes),
			formatSize(m.CompressedEstimate),
			m.Category,
			split,
			potential))
	}

	return sb.String()
}

// RenderDependencyTable renders a table of assessed dependencies.
// Note: does not sort - expects records pre-sorted by the analyzer.
func RenderDependencyTable(deps []analyzer.DependencyRecord) string {
	if len(deps) == 0 {
		return "No dependencies declared.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-24s %-12s %-9s %-7s %-5s %s\n",
		"Package", "Version", "Est Size", "Usage", "Dev", "Alternatives"))
	sb.WriteString(strings.Repeat("─", 84))
	sb.WriteString("\n")

	for _, d := range deps {
		dev := "no"
		if d.DevOnly {
			dev = "yes"
		}

		alts := "—"
		if d.Replaceable && len(d.Alternatives) > 0 {
			alts = strings.Join(d.Alternatives, ", ")
		}

		sb.WriteString(fmt.Sprintf("%-24s %-12s %-9s %-7s %-5s %s\n",
			truncate(d.Name, 24),
			truncate(d.Version, 12),
			formatSize(d.SizeBytes),
			d.Usage,
			dev,
			truncate(alts, 30)))
	}

	return sb.String()
}

// RenderRecommendationTable renders the ranked recommendation list.
// Note: does not sort - expects recommendations pre-sorted by the analyzer.
func RenderRecommendationTable(recs []analyzer.Recommendation) string {
	if len(recs) == 0 {
		return "No recommendations.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-4s %-24s %-9s %-9s %-11s %s\n",
		"#", "Kind", "Savings", "Priority", "Difficulty", "Description"))
	sb.WriteString(strings.Repeat("─", 100))
	sb.WriteString("\n")

	for i, rec := range recs {
		priority := colorize(getPriorityColor(rec.Priority), fmt.Sprintf("%-9s", rec.Priority))

		sb.WriteString(fmt.Sprintf("%-4d %-24s %-9s %s %-11s %s\n",
			i+1,
			rec.Kind,
			formatSize(rec.EstimatedSavings),
			priority,
			rec.Difficulty,
			truncate(rec.Description, 44)))
	}

	return sb.String()
}

// RenderRecommendationDetail renders each recommendation with its full
// step-by-step instructions.
func RenderRecommendationDetail(recs []analyzer.Recommendation) string {
	if len(recs) == 0 {
		return "No recommendations.\n"
	}

	var sb strings.Builder

	for i, rec := range recs {
		if i > 0 {
			sb.WriteString("\n")
		}

		priority := colorize(getPriorityColor(rec.Priority), strings.ToUpper(rec.Priority))
		sb.WriteString(fmt.Sprintf("%d. %s (%s priority, %s, saves ~%s)\n",
			i+1, rec.Description, priority, rec.Difficulty, formatSize(rec.EstimatedSavings)))

		for _, step := range rec.Steps {
			sb.WriteString(fmt.Sprintf("   - %s\n", step))
		}
	}

	return sb.String()
}

// RenderReportSummary renders the one-line totals header for a report.
// Format: "Bundle: 1.2 MB raw · 370 KB gzip est · 5 modules · 13 dependencies"
func RenderReportSummary(report *analyzer.Report) string {
	return fmt.Sprintf("Bundle: %s raw · %s gzip est · %d modules · %d dependencies",
		formatSize(report.TotalSizeBytes),
		formatSize(report.TotalCompressedBytes),
		len(report.Modules),
		len(report.Dependencies))
}

// RenderSavingsFooter renders the potential-savings summary line.
func RenderSavingsFooter(report *analyzer.Report) string {
	total := report.EstimatedSavings()
	if IsColorEnabled() {
		return fmt.Sprintf("Potential savings: %s%s%s across %d recommendations",
			colorGreen, formatSize(total), colorReset, len(report.Recommendations))
	}
	return fmt.Sprintf("Potential savings: %s across %d recommendations",
		formatSize(total), len(report.Recommendations))
}

// RenderHistoryTable renders recorded analysis runs, newest first.
func RenderHistoryTable(reports []*store.ReportSummary) string {
	if len(reports) == 0 {
		return "No recorded analyses. Run 'bundlescope analyze' first.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-17s %-9s %-9s %-8s %-6s %s\n",
		"ID", "Created", "Raw", "Gzip Est", "Modules", "Deps", "Savings"))
	sb.WriteString(strings.Repeat("─", 72))
	sb.WriteString("\n")

	for _, r := range reports {
		sb.WriteString(fmt.Sprintf("%-5d %-17s %-9s %-9s %-8d %-6d %s\n",
			r.ID,
			formatRelativeTime(r.CreatedAt),
			formatSize(r.TotalSizeBytes),
			formatSize(r.TotalCompressedBytes),
			r.ModuleCount,
			r.DependencyCount,
			formatSize(r.EstimatedSavingsBytes)))
	}

	return sb.String()
}

// formatSize converts bytes to human-readable size (GB, MB, KB).
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.0f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// formatRelativeTime converts a timestamp to relative time (e.g., "2 days ago").
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	case diff < 30*24*time.Hour:
		weeks := int(diff.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	default:
		months := int(diff.Hours() / 24 / 30)
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	}
}

// getPotentialColor returns the ANSI color for an optimization-potential
// tier. High potential is highlighted as the place to spend effort.
func getPotentialColor(potential string) string {
	switch strings.ToLower(potential) {
	case "high":
		return colorRed
	case "medium":
		return colorYellow
	case "low":
		return colorGreen
	default:
		return colorGray
	}
}

// getPriorityColor returns the ANSI color for a recommendation priority.
func getPriorityColor(priority string) string {
	switch strings.ToLower(priority) {
	case "high":
		return colorGreen
	case "medium":
		return colorYellow
	default:
		return colorGray
	}
}

// truncate truncates a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
