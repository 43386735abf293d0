package wikitext

import (
	"io"
	"strings"
)

// Heading is a section line such as "===Verb===".
type Heading struct {
	Level   int // leading '=' count
	Closing int // trailing '=' count
	Name    string
}

// IsSection reports whether h is a well formed heading of the given level,
// e.g. "==English==" for level 2.
func (h Heading) IsSection(level int) bool {
	return h.Level == level && h.Closing == level && !strings.Contains(h.Name, "=")
}

// ParseHeading reads a "==Name==" line. ok is false for lines that do not
// start with '='.
func ParseHeading(line string) (h Heading, ok bool) {
	reader := strings.NewReader(line)
	nameBuilder := strings.Builder{}
	readingFirstPart := true

	for {
		r, _, err := reader.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return h, false
		}

		if r == '=' && readingFirstPart {
			h.Level += 1
			continue
		}

		readingFirstPart = false
		nameBuilder.WriteRune(r)
	}

	if h.Level == 0 {
		return h, false
	}

	name := nameBuilder.String()
	trimmed := strings.TrimRight(name, "=")
	h.Closing = len(name) - len(trimmed)
	h.Name = strings.TrimSpace(trimmed)

	return h, true
}
