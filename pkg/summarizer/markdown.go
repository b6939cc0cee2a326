package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements the Formatter interface.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder

	b.WriteString("# Build Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Source\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	fmt.Fprintf(&b, "| Path | %s |\n", s.Source.Path)
	fmt.Fprintf(&b, "| Size | %dx%d |\n\n", s.Source.Width, s.Source.Height)

	b.WriteString("## Settings\n\n")
	b.WriteString("| Item | Value |\n|------|-------|\n")
	fmt.Fprintf(&b, "| Transforms | %s |\n", formatTransforms(s.Settings.Transforms))
	fmt.Fprintf(&b, "| Crop circle | %s |\n", formatCircle(s.Settings.Circle))
	fmt.Fprintf(&b, "| Ring | %s, %d px |\n", s.Settings.RingColor, s.Settings.RingWidth)
	if s.Settings.NativeSize {
		b.WriteString("| Output size | Native |\n")
	} else {
		b.WriteString("| Output size | 64x64 |\n")
	}
	fmt.Fprintf(&b, "| Backup | %s |\n\n", yesNo(s.Settings.Backup))

	b.WriteString("## Orbs\n\n")
	if len(s.Orbs) == 0 {
		b.WriteString("No orbs were written.\n")
		return b.String()
	}
	b.WriteString("| Orb | File | Size | File Size | Backup |\n")
	b.WriteString("|-----|------|------|-----------|--------|\n")
	for _, o := range s.Orbs {
		backup := o.BackupPath
		if backup == "" {
			backup = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %dx%d | %s | %s |\n",
			o.Name, o.Path, o.Width, o.Height, formatBytes(o.FileSize), backup)
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", formatBytes(s.TotalBytes()))

	return b.String()
}

func formatTransforms(ops []string) string {
	if len(ops) == 0 {
		return "None"
	}
	return strings.Join(ops, ", ")
}

func formatCircle(c *CircleInfo) string {
	if c == nil {
		return "Centered square"
	}
	return fmt.Sprintf("center (%d, %d) radius %d", c.X, c.Y, c.Radius)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatBytes(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

var _ Formatter = (*MarkdownFormatter)(nil)
