package ui

import (
	"strings"

	"github.com/skip2/go-qrcode"
)

// renderQRCode draws text as a QR code using half-block characters, two
// bitmap rows per line. It returns the markup and the number of lines.
func renderQRCode(text string) (string, int) {
	qr, err := qrcode.New(text, qrcode.Low)
	if err != nil {
		return "", 0
	}

	bmp := qr.Bitmap()
	rows := len(bmp)
	if rows == 0 {
		return "", 0
	}
	cols := len(bmp[0])

	var buf strings.Builder
	lines := 0
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			top := bmp[y][x]
			bot := y+1 < rows && bmp[y+1][x]

			switch {
			case top && bot:
				buf.WriteString("[black:black] [-:-]")
			case top && !bot:
				buf.WriteString("[black:white]▀[-:-]")
			case !top && bot:
				buf.WriteString("[white:black]▀[-:-]")
			default:
				buf.WriteString("[white:white] [-:-]")
			}
		}
		buf.WriteString("\n")
		lines++
	}
	return buf.String(), lines
}

// toggleQRCode shows or hides the QR code of the current password.
func toggleQRCode() {
	if uiQRView.GetText(false) != "" {
		uiQRView.SetText("")
		return
	}
	if uiLastPassword.Value == "" {
		showInfo("No password", "Generate a password first.")
		return
	}
	code, _ := renderQRCode(uiLastPassword.Value)
	uiQRView.SetText(code)
}
