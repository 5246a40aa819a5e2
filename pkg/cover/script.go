// script.go — Script-direction detection and digit localization.
package cover

import "strings"

// Arabic/Persian Unicode block boundaries.
const (
	arabicBlockLo = '\u0600'
	arabicBlockHi = '\u06ff'
)

// localizeDigits maps ASCII digits to their Eastern Arabic-Indic numerals.
var localizeDigits = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

// latinizeDigits is the reverse mapping, used to recover the original
// episode number from a localized string.
var latinizeDigits = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

// ContainsArabic reports whether any rune of the given strings falls in the
// Arabic/Persian block U+0600–U+06FF. One matching rune anywhere flips the
// whole text block to right-to-left rendering; the flag is never per-field.
func ContainsArabic(texts ...string) bool {
	for _, text := range texts {
		for _, r := range text {
			if r >= arabicBlockLo && r <= arabicBlockHi {
				return true
			}
		}
	}
	return false
}

// LocalizeDigits converts every ASCII digit to its Persian equivalent.
// Non-digit characters pass through unchanged, so "7a" becomes "۷a" rather
// than an error.
func LocalizeDigits(s string) string {
	return localizeDigits.Replace(s)
}

// LatinizeDigits reverses LocalizeDigits.
func LatinizeDigits(s string) string {
	return latinizeDigits.Replace(s)
}
