package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"rpg/internal/passgen"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const strengthBarWidth = 20

// strengthMeter keeps references to text views that display a password
// strength bar.
type strengthMeter struct {
	views []*tview.TextView
}

func newStrengthMeter() *strengthMeter {
	return &strengthMeter{}
}

func (m *strengthMeter) NewTextView() *tview.TextView {
	tv := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)
	m.views = append(m.views, tv)
	return tv
}

// Update evaluates the password and refreshes every attached view.
func (m *strengthMeter) Update(password string) {
	bar := formatStrengthBar(password)
	for _, tv := range m.views {
		tv.SetText(bar)
	}
}

func strengthColor(level passgen.StrengthLevel) string {
	switch level {
	case passgen.StrengthWeak:
		return "orange"
	case passgen.StrengthMedium:
		return "yellow"
	case passgen.StrengthStrong:
		return "blue"
	case passgen.StrengthVeryStrong:
		return "green"
	}
	return "red"
}

// formatStrengthBar builds the colored bar for password, followed by the
// rating label and the character count.
func formatStrengthBar(password string) string {
	if password == "" {
		return ""
	}

	s := passgen.EstimateStrength(password)
	color := strengthColor(s.Level())

	filled := s.Score * strengthBarWidth / 100
	if filled < 1 {
		filled = 1
	}
	empty := strengthBarWidth - filled

	return fmt.Sprintf("[%s]%s[gray]%s[-]  [%s]%s[-] (%d chars)",
		color, strings.Repeat("━", filled),
		strings.Repeat("━", empty),
		color, s.Label, utf8.RuneCountInString(password),
	)
}

// makeStrengthDisplayRow creates a Flex row with a label and the meter's
// TextView.
func makeStrengthDisplayRow(meter *strengthMeter) (*tview.Flex, *tview.TextView) {
	tv := meter.NewTextView()
	f := tview.NewFlex().SetDirection(tview.FlexColumn)
	lbl := tview.NewTextView().SetText("Strength:").SetTextColor(tcell.ColorDimGray)
	f.AddItem(lbl, 11, 0, false)
	f.AddItem(tv, 0, 1, false)
	return f, tv
}
