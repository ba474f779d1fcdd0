package passgen

import (
	"fmt"
	"strings"
)

// Class is one of the fixed character categories a password can draw from.
type Class uint8

const (
	Uppercase Class = iota
	Lowercase
	Digits
	Symbols
)

// classOrder is the enumeration order used for pool construction and for
// the forced picks when diversity is enforced.
var classOrder = [...]Class{Uppercase, Lowercase, Digits, Symbols}

// Canonical alphabets. SymbolChars is the 32 printable ASCII punctuation
// characters; strength scoring and pool construction both depend on it.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

func (c Class) String() string {
	switch c {
	case Uppercase:
		return "Uppercase"
	case Lowercase:
		return "Lowercase"
	case Digits:
		return "Digits"
	case Symbols:
		return "Symbols"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

func (c Class) noun() string {
	switch c {
	case Digits:
		return "digit"
	case Symbols:
		return "symbol"
	}
	return strings.ToLower(c.String())
}

// Alphabet returns the canonical alphabet of the class.
func (c Class) Alphabet() string {
	switch c {
	case Uppercase:
		return UppercaseChars
	case Lowercase:
		return LowercaseChars
	case Digits:
		return DigitChars
	case Symbols:
		return SymbolChars
	}
	return ""
}

// ParseClass accepts a class name (case-insensitive) or its short flag
// letter: U, L, N or S.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uppercase", "upper", "u":
		return Uppercase, nil
	case "lowercase", "lower", "l":
		return Lowercase, nil
	case "digits", "digit", "numbers", "n":
		return Digits, nil
	case "symbols", "symbol", "special", "s":
		return Symbols, nil
	}
	return 0, fmt.Errorf("unknown character class %q", name)
}

// ClassSet is a set of enabled classes.
type ClassSet uint8

// AllClasses enables every class.
const AllClasses = ClassSet(1<<Uppercase | 1<<Lowercase | 1<<Digits | 1<<Symbols)

// NewClassSet builds a set from the given classes.
func NewClassSet(classes ...Class) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

func (s ClassSet) With(c Class) ClassSet    { return s | 1<<c }
func (s ClassSet) Without(c Class) ClassSet { return s &^ (1 << c) }
func (s ClassSet) Has(c Class) bool         { return s&(1<<c) != 0 }

// Classes lists the enabled classes in enumeration order.
func (s ClassSet) Classes() []Class {
	var out []Class
	for _, c := range classOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s ClassSet) Len() int { return len(s.Classes()) }

// BuildPool concatenates the alphabets of the enabled classes and removes
// every excluded character. The class alphabets are disjoint so no
// deduplication is needed. An empty pool is a valid result.
func BuildPool(classes ClassSet, exclude string) string {
	var sb strings.Builder
	for _, c := range classes.Classes() {
		sb.WriteString(BuildClassPool(c, exclude))
	}
	return sb.String()
}

// BuildClassPool filters a single class alphabet by the exclusion set.
func BuildClassPool(c Class, exclude string) string {
	alphabet := c.Alphabet()
	if exclude == "" {
		return alphabet
	}
	var sb strings.Builder
	sb.Grow(len(alphabet))
	for _, r := range alphabet {
		if !strings.ContainsRune(exclude, r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
