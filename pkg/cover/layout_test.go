package cover_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mucteba/podcover/pkg/cover"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "short text stays on one line",
			text:  "Deep Work",
			limit: 25,
			want:  []string{"Deep Work"},
		},
		{
			name:  "breaks at word boundaries",
			text:  "The Art of Doing Nothing At All",
			limit: 25,
			want:  []string{"The Art of Doing Nothing", "At All"},
		},
		{
			name:  "empty text yields one empty line",
			text:  "",
			limit: 25,
			want:  []string{""},
		},
		{
			name:  "single word longer than the limit overflows its line",
			text:  "Antidisestablishmentarianism",
			limit: 25,
			want:  []string{"Antidisestablishmentarianism"},
		},
		{
			name:  "persian text counts runes not bytes",
			text:  "گفتگو درباره تمرکز عمیق",
			limit: 25,
			want:  []string{"گفتگو درباره تمرکز عمیق"},
		},
		{
			name:  "collapses runs of whitespace",
			text:  "one   two\t three",
			limit: 45,
			want:  []string{"one two three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cover.Wrap(tt.text, tt.limit))
		})
	}
}

func TestWrapSubtitle(t *testing.T) {
	assert.Nil(t, cover.WrapSubtitle(""))
	assert.Nil(t, cover.WrapSubtitle("   "))
	assert.Equal(t, []string{"a closer look"}, cover.WrapSubtitle("a closer look"))
}

func TestSelectFontSizes(t *testing.T) {
	tests := []struct {
		titleLines    int
		subtitleLines int
		wantTitle     int
		wantSubtitle  int
	}{
		{1, 0, 86, 0},
		{1, 1, 86, 48},
		{2, 2, 76, 42},
		{3, 3, 66, 36},
		{4, 5, 56, 36},
		{7, 1, 56, 48},
	}

	for _, tt := range tests {
		plan := cover.SelectFontSizes(tt.titleLines, tt.subtitleLines)
		assert.Equal(t, tt.wantTitle, plan.TitleSize, "title size for %d lines", tt.titleLines)
		assert.Equal(t, tt.wantSubtitle, plan.SubtitleSize, "subtitle size for %d lines", tt.subtitleLines)
	}
}

func TestFontPlanOffsets(t *testing.T) {
	plan := cover.SelectFontSizes(2, 2)

	// Title lines advance by size+10.
	assert.Equal(t, 0.0, plan.TitleLineY(0))
	assert.Equal(t, 86.0, plan.TitleLineY(1))

	// Subtitle block starts below the full title block plus a gap, then
	// advances by size+8.
	start := plan.SubtitleStartY(2)
	assert.Equal(t, 2*86.0+15, start)
	assert.Equal(t, start, plan.SubtitleLineY(2, 0))
	assert.Equal(t, start+50, plan.SubtitleLineY(2, 1))
}

func TestWrapTitleBudget(t *testing.T) {
	lines := cover.WrapTitle("word word word word word word word word")
	for _, line := range lines {
		words := strings.Fields(line)
		assert.NotEmpty(t, words)
		assert.LessOrEqual(t, len([]rune(line)), cover.TitleWrapBudget)
	}
}
