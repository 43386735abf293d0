package sense

import (
	"regexp"
	"strings"

	"go-wiktionary-wsd/lib/wikitext"

	"golang.org/x/exp/slices"
)

var (
	wikiRef      = regexp.MustCompile(`(?:&lt;|<)ref(?:\s[^&>]*)?(?:&gt;|>)(.*?)(?:&lt;|<)/ref(?:&gt;|>)`)
	passageFlags = []string{"passage=", "text="}
)

// quotationShape is the layout of a compressed quotation line.
type quotationShape int

const (
	// "#* attribution || QUOTE=passage", built by CompressLines
	shapeContinued quotationShape = iota
	// passage with the citation in a <ref> element
	shapeRef
	// a {{quote-*}} style template holding both
	shapeTemplate
	// free text, the passage usually in double quotes
	shapePlain
)

func classifyQuotation(line string) quotationShape {
	switch {
	case strings.Contains(line, QuoteSeparator):
		return shapeContinued
	case wikiRef.MatchString(line):
		return shapeRef
	}

	if _, ok := wikitext.FindSpan(line, wikitext.TemplateOpen, wikitext.TemplateClose); ok {
		return shapeTemplate
	}
	return shapePlain
}

// ProcessQuotation splits a compressed "#* ..." line into the quoted passage
// and its attribution.
func ProcessQuotation(line string) (Quotation, error) {
	line = wikiQuotePrefix.ReplaceAllString(line, "")

	if strings.Contains(strings.ToLower(line), "seemorecites") {
		return Quotation{}, ErrSeeMore
	}

	var q Quotation
	var err error
	switch classifyQuotation(line) {
	case shapeContinued:
		q = continuedQuotation(line)
	case shapeRef:
		q = refQuotation(line)
	case shapeTemplate:
		q, err = templateQuotation(line)
	default:
		q = plainQuotation(line)
	}
	if err != nil {
		return Quotation{}, err
	}

	q.Text = strings.TrimSpace(q.Text)
	if err := checkText(q.Text); err != nil {
		return Quotation{}, err
	}
	return q, nil
}

func continuedQuotation(line string) Quotation {
	parts := strings.Split(line, QuoteSeparator)
	text := strings.Join(parts[1:], "/ ")

	if _, ok := wikitext.FindSpan(text, wikitext.TemplateOpen, wikitext.TemplateClose); ok {
		text = wikitext.LastField(text, wikitext.TemplateOpen, wikitext.TemplateClose)
		for _, flag := range passageFlags {
			text = strings.ReplaceAll(text, flag, "")
		}
	}

	return Quotation{Text: text, Attribution: Attribution{strings.TrimSpace(parts[0])}}
}

func refQuotation(line string) Quotation {
	ref := wikiRef.FindStringSubmatch(line)
	return Quotation{
		Text:        wikiRef.ReplaceAllString(line, ""),
		Attribution: Attribution{strings.TrimSpace(ref[1])},
	}
}

func templateQuotation(line string) (Quotation, error) {
	fields := wikitext.TemplateFields(line)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if i := slices.IndexFunc(fields, isPassage); i >= 0 {
		text := trimPassageFlag(fields[i])
		attribution := slices.DeleteFunc(fields, isPassage)
		return Quotation{Text: text, Attribution: attribution}, nil
	}

	// no passage= field: the passage is the last positional field
	i := lastIndexFunc(fields, func(f string) bool { return !strings.Contains(f, "=") })
	if i < 0 {
		return Quotation{}, ErrUnparseable
	}

	text := fields[i]
	attribution := slices.DeleteFunc(fields, func(f string) bool { return f == text })
	return Quotation{Text: text, Attribution: attribution}, nil
}

func plainQuotation(line string) Quotation {
	line = wikitext.DoubleQuotePairs(line)

	sp, ok := wikitext.FindSpan(line, `"`, `"`)
	if !ok {
		return Quotation{Text: line}
	}

	text := strings.ReplaceAll(sp.Text(line), `"`, "")
	rest := strings.TrimSpace(sp.Replace(line, ""))
	q := Quotation{Text: text}
	if rest != "" {
		q.Attribution = Attribution{rest}
	}
	return q
}

func isPassage(field string) bool {
	lower := strings.ToLower(field)
	for _, flag := range passageFlags {
		if strings.HasPrefix(lower, flag) {
			return true
		}
	}
	return false
}

func trimPassageFlag(field string) string {
	lower := strings.ToLower(field)
	for _, flag := range passageFlags {
		if strings.HasPrefix(lower, flag) {
			return field[len(flag):]
		}
	}
	return field
}

func lastIndexFunc(s []string, f func(string) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if f(s[i]) {
			return i
		}
	}
	return -1
}
