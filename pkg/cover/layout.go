// layout.go — Text layout engine: wrapping, font plan selection, and
// vertical line placement for the title/subtitle block.
//
// All budgets are measured in runes, not bytes, so Persian titles wrap the
// same way their visual length suggests.
package cover

import (
	"strings"
	"unicode/utf8"
)

// Wrap budgets per field, in runes per line.
const (
	TitleWrapBudget    = 25
	SubtitleWrapBudget = 45
)

// Title block placement: lines advance by fontSize+titleLinePitch, the
// subtitle block starts subtitleBlockGap below the last title line, and
// subtitle lines advance by fontSize+subtitleLinePitch.
const (
	titleLinePitch    = 10
	subtitleBlockGap  = 15
	subtitleLinePitch = 8
)

// FontPlan holds the selected font sizes for the title and subtitle blocks.
// Sizes come from a fixed lookup keyed on line counts; they are design
// constants, not computed values.
type FontPlan struct {
	TitleSize    int
	SubtitleSize int
}

// Wrap splits text on whitespace and greedily packs tokens into lines of at
// most maxCharsPerLine runes (tokens joined by single spaces). A token longer
// than the budget is placed alone on its own line, never split. Empty input
// yields a single empty line so downstream offset math always has at least
// one line to anchor on.
func Wrap(text string, maxCharsPerLine int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current []string
	for _, word := range words {
		joined := strings.Join(append(current, word), " ")
		if utf8.RuneCountInString(joined) <= maxCharsPerLine {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// WrapTitle wraps a title at the title budget.
func WrapTitle(title string) []string {
	return Wrap(title, TitleWrapBudget)
}

// WrapSubtitle wraps a subtitle at the subtitle budget. An absent subtitle
// produces zero lines — not one blank line — so the subtitle block collapses
// entirely and contributes nothing to the layout.
func WrapSubtitle(subtitle string) []string {
	if strings.TrimSpace(subtitle) == "" {
		return nil
	}
	return Wrap(subtitle, SubtitleWrapBudget)
}

// SelectFontSizes picks font sizes from the line counts of the wrapped title
// and subtitle. Both axes are monotonically non-increasing: more lines never
// yields a larger font.
func SelectFontSizes(titleLines, subtitleLines int) FontPlan {
	var plan FontPlan

	switch {
	case titleLines <= 1:
		plan.TitleSize = 86
	case titleLines == 2:
		plan.TitleSize = 76
	case titleLines == 3:
		plan.TitleSize = 66
	default:
		plan.TitleSize = 56
	}

	switch {
	case subtitleLines == 0:
		plan.SubtitleSize = 0
	case subtitleLines == 1:
		plan.SubtitleSize = 48
	case subtitleLines == 2:
		plan.SubtitleSize = 42
	default:
		plan.SubtitleSize = 36
	}

	return plan
}

// TitleLineY returns the y offset of title line i within the text block.
func (p FontPlan) TitleLineY(i int) float64 {
	return float64(i * (p.TitleSize + titleLinePitch))
}

// SubtitleStartY returns the y offset at which the subtitle block begins,
// below titleLines stacked title lines.
func (p FontPlan) SubtitleStartY(titleLines int) float64 {
	return float64(titleLines*(p.TitleSize+titleLinePitch) + subtitleBlockGap)
}

// SubtitleLineY returns the y offset of subtitle line i within the text
// block, given the number of title lines above it.
func (p FontPlan) SubtitleLineY(titleLines, i int) float64 {
	return p.SubtitleStartY(titleLines) + float64(i*(p.SubtitleSize+subtitleLinePitch))
}
