// Package kana normalizes phonetic name readings to full-width katakana.
package kana

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const hiraganaToKatakanaOffset = 0x60

// katakanaPattern accepts full-width katakana (ァ..ヺ) and the prolonged sound mark.
var katakanaPattern = regexp.MustCompile(`^[\x{30A1}-\x{30FA}\x{30FC}]+$`)

// ToKatakana trims the input, folds it with NFKC (half-width katakana become
// full-width with voiced marks composed) and shifts hiragana (ぁ..ゖ) into the
// katakana block. Other runes are left for IsKatakana to reject.
func ToKatakana(input string) string {
	folded := norm.NFKC.String(strings.TrimSpace(input))

	return strings.Map(func(r rune) rune {
		if r >= 'ぁ' && r <= 'ゖ' {
			return r + hiraganaToKatakanaOffset
		}

		return r
	}, folded)
}

// IsKatakana reports whether s is non-empty and made only of full-width katakana.
func IsKatakana(s string) bool {
	return katakanaPattern.MatchString(s)
}
