package extract

import (
	"fmt"
	"strings"
)

// composeReport assembles the multi-section report text. Section order and
// labels are part of the observable contract; the 3D variant opens the CDP
// range onto its own line and appends the inline/crossline block.
func composeReport(r *Report) string {
	var b strings.Builder

	b.WriteString("DETAILED INFORMATION OF THE SEG-Y FILE\n")
	b.WriteString("INFORMATION CONTAINED IN THE ASCII HEADER:\n")
	fmt.Fprintf(&b, "ASCII_header: %s", r.TextHeader)

	b.WriteString("BASIC INFORMATION:\n")
	fmt.Fprintf(&b, "Recording Time: %s s\n", r.Basic.RecordingTime)
	fmt.Fprintf(&b, "Distance Between Shot Points: %s m\n", r.Basic.ShotPointDistance)
	fmt.Fprintf(&b, "Plot Direction: %s\n", r.Basic.PlotDirection)
	fmt.Fprintf(&b, "Offset Range: %s - %s m\n", r.Basic.MinOffset, r.Basic.MaxOffset)
	fmt.Fprintf(&b, "Number of Channels: %s\n", r.Basic.NumChannels)
	fmt.Fprintf(&b, "CDP Range: %s - %s\n", r.Basic.FirstCDP, r.Basic.LastCDP)

	b.WriteString("\nBINARY HEADER INFORMATION:\n")
	b.WriteString(formatBinaryEntries(r.Binary))

	b.WriteString("\nGEOMETRY INFORMATION:\n")
	fmt.Fprintf(&b, "Total Traces: %d\n", r.Geometry.TotalTraces)
	fmt.Fprintf(&b, "Total Shots: %d\n", r.Geometry.TotalShots)
	b.WriteString("Coordinates:\n")
	fmt.Fprintf(&b, "  X: %s - %s\n", r.Geometry.XMin, r.Geometry.XMax)
	fmt.Fprintf(&b, "  Y: %s - %s\n", r.Geometry.YMin, r.Geometry.YMax)

	b.WriteString("\nACQUISITION INFORMATION:\n")
	fmt.Fprintf(&b, "Average Fold: %s\n", r.Acquisition.AverageFold)
	fmt.Fprintf(&b, "Maximum Fold: %s\n", r.Acquisition.MaximumFold)
	fmt.Fprintf(&b, "Minimum Fold: %s\n", r.Acquisition.MinimumFold)

	text := b.String()
	if r.Is3D {
		text = strings.Replace(text, "CDP Range:", "CDP Range:\n", 1)
		text += fmt.Sprintf("Inline Range: %s - %s\n", r.Basic.FirstInline, r.Basic.LastInline)
		text += fmt.Sprintf("Crossline Range: %s - %s\n", r.Basic.FirstCrossline, r.Basic.LastCrossline)
		text += fmt.Sprintf("Inline Dimensions: %d\n", r.Geometry.InlineDimensions)
		text += fmt.Sprintf("Crossline Dimensions: %d\n", r.Geometry.CrosslineDimensions)
		text += fmt.Sprintf("Inline Spacing: %s\n", r.Acquisition.InlineSpacing)
		text += fmt.Sprintf("Crossline Spacing: %s\n", r.Acquisition.CrosslineSpacing)
	}
	return text
}

// formatBinaryEntries renders the retained binary-header fields one per
// line under their display labels.
func formatBinaryEntries(entries []BinEntry) string {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("%s: %s", displayLabel(entry.Key), entry.Value)
	}
	return strings.Join(lines, "\n")
}

// displayLabel looks up the fixed label for a canonical name, falling back
// to a capitalized, underscore-free rendering of the name itself.
func displayLabel(key string) string {
	if label, ok := readableNames[key]; ok {
		return label
	}
	label := strings.ToLower(strings.ReplaceAll(key, "_", " "))
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
