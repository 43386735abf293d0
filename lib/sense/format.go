package sense

import (
	"fmt"
	"strings"
)

// SensesToString renders senses with their examples and quotations for
// debugging and tests.
func SensesToString(senses []Sense) string {
	strBuilder := strings.Builder{}

	for _, s := range senses {
		strBuilder.WriteString(fmt.Sprintf("%s (%s, %d)\n", s.Word, s.POS, s.Depth))
		strBuilder.WriteString("d: " + s.Gloss + "\n")

		if len(s.Tags) > 0 {
			strBuilder.WriteString("\tt: " + strings.Join(s.Tags, ", ") + "\n")
		}
		for _, e := range s.Examples {
			strBuilder.WriteString("\te: " + e + "\n")
		}
		for _, q := range s.Quotations {
			strBuilder.WriteString("\tq: " + q.Text + "\n")
		}
		if len(s.Synonyms) > 0 {
			strBuilder.WriteString("\ts: " + strings.Join(s.Synonyms, ", ") + "\n")
		}
	}

	return strBuilder.String()
}
