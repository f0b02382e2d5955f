// Package logger provides the central application log. Entries are tagged
// with the subsystem that produced them and identical consecutive entries
// are collapsed into a repeat count. The overlay's log window reads the
// entry list back through Tail.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Entry represents a single line in the log
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// maximum number of entries kept in the central log
const maxCentral = 256

// one central log for the entire application
var central = &log{}

type log struct {
	entries []Entry
	echo    io.Writer
}

func (l *log) add(tag, detail string) {
	// newlines would break the one-entry-per-line format
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	if n := len(l.entries); n > 0 {
		last := &l.entries[n-1]
		if last.Tag == tag && last.Detail == detail {
			last.Repeated++
			last.Timestamp = time.Now()
			return
		}
	}

	l.entries = append(l.entries, Entry{
		Timestamp: time.Now(),
		Tag:       tag,
		Detail:    detail,
	})

	if len(l.entries) > maxCentral {
		l.entries = l.entries[len(l.entries)-maxCentral:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

// SetEcho mirrors every new entry to the writer as it arrives. A nil writer
// disables echoing.
func SetEcho(output io.Writer) {
	central.echo = output
}

// Log adds an entry to the central log
func Log(tag, detail string) {
	central.add(tag, detail)
}

// Logf adds a formatted entry to the central log
func Logf(tag, format string, args ...any) {
	central.add(tag, fmt.Sprintf(format, args...))
}

// Clear removes all entries from the central log
func Clear() {
	central.entries = central.entries[:0]
}

// Write writes the contents of the central log to output
func Write(output io.Writer) {
	for _, e := range central.entries {
		io.WriteString(output, e.String())
	}
}

// Tail returns a copy of the last number entries, most recent last
func Tail(number int) []Entry {
	if number > len(central.entries) {
		number = len(central.entries)
	}
	tail := make([]Entry, number)
	copy(tail, central.entries[len(central.entries)-number:])
	return tail
}
