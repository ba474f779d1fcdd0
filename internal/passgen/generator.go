// Package passgen builds random passwords from character-class constraints
// and rates the result with a coarse strength heuristic.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

var (
	ErrInvalidLength      = errors.New("password length must be a number of at least 1")
	ErrNoCharacterClasses = errors.New("no character class selected")
	ErrEmptyPool          = errors.New("exclusions removed every candidate character")
	ErrClassExhausted     = errors.New("character class exhausted by exclusions")
)

// ClassExhaustedError reports an enabled class whose whole alphabet was
// excluded while diversity is enforced.
type ClassExhaustedError struct {
	Class Class
}

func (e *ClassExhaustedError) Error() string {
	return fmt.Sprintf("exclusions removed all %s characters", e.Class.noun())
}

func (e *ClassExhaustedError) Is(target error) bool { return target == ErrClassExhausted }

// Message turns a generation error into the text shown to the user.
func Message(err error) string {
	var ce *ClassExhaustedError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidLength):
		return "Please enter a valid number for length (at least 1)."
	case errors.Is(err, ErrNoCharacterClasses):
		return "Select at least one character type."
	case errors.Is(err, ErrEmptyPool):
		return "Exclude characters removed every candidate character. Remove some exclusions."
	case errors.As(err, &ce):
		return fmt.Sprintf("You've excluded all %s characters but %s is selected.", ce.Class.noun(), ce.Class)
	}
	return err.Error()
}

// Config holds the settings of a single generation call.
type Config struct {
	Length           int
	Classes          ClassSet
	Exclude          string
	EnforceDiversity bool
}

// Summary renders the settings column stored next to each history entry.
// Excluded characters are counted, not listed.
func (c Config) Summary() string {
	s := fmt.Sprintf("len=%d,U=%t,L=%t,N=%t,S=%t,enforce=%t",
		c.Length,
		c.Classes.Has(Uppercase), c.Classes.Has(Lowercase),
		c.Classes.Has(Digits), c.Classes.Has(Symbols),
		c.EnforceDiversity)
	if c.Exclude != "" {
		s += fmt.Sprintf(",exclude=%d", len([]rune(c.Exclude)))
	}
	return s
}

// Password is a generated password and its rating.
type Password struct {
	Value    string
	Strength Strength
}

// ParseLength reads the length field as typed by the user.
func ParseLength(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return 0, ErrInvalidLength
	}
	return n, nil
}

// Generator draws every random choice from its entropy source.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorWithReader uses r as the entropy source. r must be a
// cryptographically secure source outside of tests.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{rand: r}
}

var defaultGenerator = NewGenerator()

// Generate builds a password with the default crypto/rand generator.
func Generate(cfg Config) (Password, error) {
	return defaultGenerator.Generate(cfg)
}

// Generate validates cfg, draws the characters and shuffles them.
//
// With EnforceDiversity one character is drawn from each enabled class in
// class order before the rest is filled from the combined pool. When Length
// is smaller than the number of enabled classes only the first Length forced
// picks are kept, so the result misses the trailing classes.
func (g *Generator) Generate(cfg Config) (Password, error) {
	if cfg.Length < 1 {
		return Password{}, ErrInvalidLength
	}
	classes := cfg.Classes.Classes()
	if len(classes) == 0 {
		return Password{}, ErrNoCharacterClasses
	}
	// Per-class pools are checked first so a fully excluded class is
	// reported by name even when it also empties the combined pool.
	var forcedPools [][]rune
	if cfg.EnforceDiversity {
		for _, c := range classes {
			sub := []rune(BuildClassPool(c, cfg.Exclude))
			if len(sub) == 0 {
				return Password{}, &ClassExhaustedError{Class: c}
			}
			forcedPools = append(forcedPools, sub)
		}
	}
	pool := []rune(BuildPool(cfg.Classes, cfg.Exclude))
	if len(pool) == 0 {
		return Password{}, ErrEmptyPool
	}

	chars := make([]rune, 0, max(cfg.Length, len(forcedPools)))
	for _, sub := range forcedPools {
		ch, err := g.pick(sub)
		if err != nil {
			return Password{}, err
		}
		chars = append(chars, ch)
	}
	if len(chars) > cfg.Length {
		chars = chars[:cfg.Length]
	}

	for len(chars) < cfg.Length {
		ch, err := g.pick(pool)
		if err != nil {
			return Password{}, err
		}
		chars = append(chars, ch)
	}

	if err := g.shuffle(chars); err != nil {
		return Password{}, err
	}

	value := string(chars)
	return Password{Value: value, Strength: EstimateStrength(value)}, nil
}

func (g *Generator) pick(pool []rune) (rune, error) {
	idx, err := g.intn(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[idx], nil
}

// shuffle is a Fisher-Yates permutation driven by the entropy source.
func (g *Generator) shuffle(chars []rune) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}

// intn returns a uniform random int in [0, n).
func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
