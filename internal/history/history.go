// Package history keeps the passwords generated during a session and
// exports them as CSV.
package history

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"rpg/internal/crypto"
)

// TimeLayout is the timestamp format used on screen and in exports.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultLimit caps a Log created with a non-positive limit.
const DefaultLimit = 500

var ErrEmpty = errors.New("no passwords in history")

// Entry is one generated password with the settings that produced it.
type Entry struct {
	Timestamp time.Time
	Password  string
	Settings  string
}

// Log is a bounded, append-only record. Once full, each Add evicts the
// oldest entry.
type Log struct {
	mu    sync.Mutex
	buf   []Entry
	start int
	n     int
}

func New(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{buf: make([]Entry, limit)}
}

func (l *Log) Add(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.n < len(l.buf) {
		l.buf[(l.start+l.n)%len(l.buf)] = e
		l.n++
		return
	}
	l.buf[l.start] = e
	l.start = (l.start + 1) % len(l.buf)
}

// Record appends an entry stamped with the current time.
func (l *Log) Record(password, settings string) Entry {
	e := Entry{Timestamp: time.Now(), Password: password, Settings: settings}
	l.Add(e)
	return e
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.n
}

func (l *Log) Limit() int { return len(l.buf) }

// Entries returns a copy, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, l.n)
	for i := range out {
		out[i] = l.buf[(l.start+i)%len(l.buf)]
	}
	return out
}

// Latest returns at most n entries, newest first.
func (l *Log) Latest(n int) []Entry {
	all := l.Entries()
	if n > len(all) || n < 0 {
		n = len(all)
	}
	out := make([]Entry, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		out = append(out, all[i])
	}
	return out
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.buf {
		l.buf[i] = Entry{}
	}
	l.start, l.n = 0, 0
}

// String formats the entry as shown in the history list.
func (e Entry) String() string {
	return fmt.Sprintf("%s | %s | %s", e.Timestamp.Format(TimeLayout), e.Password, e.Settings)
}

// WriteCSV writes a header row followed by every entry, oldest first.
func (l *Log) WriteCSV(w io.Writer) error {
	entries := l.Entries()
	if len(entries) == 0 {
		return ErrEmpty
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "password", "settings"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Timestamp.Format(TimeLayout), e.Password, e.Settings}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export writes the CSV to path, readable only by the owner.
func (l *Log) Export(path string) error {
	var buf bytes.Buffer
	if err := l.WriteCSV(&buf); err != nil {
		return err
	}
	return writeExport(path, buf.Bytes())
}

// ExportSealed writes the CSV encrypted under passphrase. The file can be
// read back with crypto.OpenExport.
func (l *Log) ExportSealed(path, passphrase string) error {
	var buf bytes.Buffer
	if err := l.WriteCSV(&buf); err != nil {
		return err
	}
	sealed, err := crypto.SealExport(passphrase, buf.Bytes())
	crypto.WipeBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("sealing export: %w", err)
	}
	return writeExport(path, sealed)
}

func writeExport(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// DefaultFileName names an export taken at t.
func DefaultFileName(t time.Time) string {
	return "rpg-history-" + t.Format("20060102-150405") + ".csv"
}
