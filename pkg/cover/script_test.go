package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mucteba/podcover/pkg/cover"
)

func TestContainsArabic(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  bool
	}{
		{"latin only", []string{"Deep Work", "a closer look"}, false},
		{"persian title", []string{"تمرکز عمیق"}, true},
		{"one persian rune among latin", []string{"Deep Work", "قsomething"}, true},
		{"persian in later field only", []string{"Deep Work", "", "وبسایت"}, true},
		{"empty", []string{"", ""}, false},
		{"persian digits count as arabic block", []string{"۴۲"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cover.ContainsArabic(tt.texts...))
		})
	}
}

func TestDigitLocalization(t *testing.T) {
	assert.Equal(t, "۴۲", cover.LocalizeDigits("42"))
	assert.Equal(t, "۱۲۳۴۵۶۷۸۹۰", cover.LocalizeDigits("1234567890"))
	assert.Equal(t, "۷a", cover.LocalizeDigits("7a"))
	assert.Equal(t, "", cover.LocalizeDigits(""))
}

func TestDigitRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "42", "1234567890", "ep 12"} {
		assert.Equal(t, s, cover.LatinizeDigits(cover.LocalizeDigits(s)))
	}
	assert.Equal(t, "42", cover.LatinizeDigits("۴۲"))
}
