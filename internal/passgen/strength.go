package passgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StrengthLevel represents the overall password strength.
type StrengthLevel int

const (
	StrengthVeryWeak StrengthLevel = iota // red
	StrengthWeak                          // orange
	StrengthMedium                        // yellow
	StrengthStrong                        // blue
	StrengthVeryStrong                    // green
)

// Strength is a label with a 0–100 score for a progress bar.
type Strength struct {
	Label string
	Score int
}

var strengthTable = [...]Strength{
	StrengthVeryWeak:   {Label: "Very Weak", Score: 10},
	StrengthWeak:       {Label: "Weak", Score: 30},
	StrengthMedium:     {Label: "Medium", Score: 55},
	StrengthStrong:     {Label: "Strong", Score: 75},
	StrengthVeryStrong: {Label: "Very Strong", Score: 95},
}

// Level maps the rating back to its StrengthLevel.
func (s Strength) Level() StrengthLevel {
	for i, v := range strengthTable {
		if v == s {
			return StrengthLevel(i)
		}
	}
	return StrengthVeryWeak
}

// digitForms holds the characters outside category Nd whose Unicode
// numeric type is Digit, such as superscripts and circled digits.
var digitForms = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(digitForms, r)
}

// EstimateStrength rates a password from its character variety (0–4) plus
// a length bonus (0–2). It is a heuristic, not an entropy measurement.
func EstimateStrength(password string) Strength {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		if unicode.IsLower(r) {
			hasLower = true
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if isDigit(r) {
			hasDigit = true
		}
		if strings.ContainsRune(SymbolChars, r) {
			hasSymbol = true
		}
	}

	score := 0
	for _, ok := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if ok {
			score++
		}
	}

	switch n := utf8.RuneCountInString(password); {
	case n >= 12:
		score += 2
	case n >= 8:
		score++
	}

	switch {
	case score <= 1:
		return strengthTable[StrengthVeryWeak]
	case score == 2:
		return strengthTable[StrengthWeak]
	case score == 3:
		return strengthTable[StrengthMedium]
	case score == 4:
		return strengthTable[StrengthStrong]
	default:
		return strengthTable[StrengthVeryStrong]
	}
}
