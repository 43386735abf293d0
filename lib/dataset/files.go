package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go-wiktionary-wsd/lib/sense"
)

const (
	SensesFile     = "senses.txt"
	ExamplesFile   = "examples.txt"
	QuotationsFile = "quotations.txt"

	listSeparator  = ", "
	fieldSeparator = "\t"
	keySeparator   = ":\t"
)

// Save writes the three collections into dir, creating it if needed.
func Save(dir string, d Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := writeFile(filepath.Join(dir, SensesFile), func(w io.Writer) error {
		return WriteSenses(w, d.Senses)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, ExamplesFile), func(w io.Writer) error {
		return WriteExamples(w, d.Examples)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, QuotationsFile), func(w io.Writer) error {
		return WriteQuotations(w, d.Quotations)
	})
}

// Load reads back a directory written by Save.
func Load(dir string) (Dataset, error) {
	d := Dataset{}
	var err error

	if err = readFile(filepath.Join(dir, SensesFile), func(r io.Reader) error {
		d.Senses, err = ReadSenses(r)
		return err
	}); err != nil {
		return d, err
	}
	if err = readFile(filepath.Join(dir, ExamplesFile), func(r io.Reader) error {
		d.Examples, err = ReadExamples(r)
		return err
	}); err != nil {
		return d, err
	}
	err = readFile(filepath.Join(dir, QuotationsFile), func(r io.Reader) error {
		d.Quotations, err = ReadQuotations(r)
		return err
	})
	return d, err
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// WriteSenses writes one blank line terminated record of "key:\tvalue" lines
// per sense.
func WriteSenses(w io.Writer, senses []sense.Sense) error {
	for _, s := range senses {
		_, err := fmt.Fprintf(w,
			"sense_id:\t%s\nword:\t%s\ngloss:\t%s\ntags:\t%s\ndepth:\t%d\nsynonyms:\t%s\n\n",
			s.SenseID,
			s.Word,
			s.Gloss,
			strings.Join(s.Tags, listSeparator),
			s.Depth,
			strings.Join(s.Synonyms, listSeparator),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteExamples writes "text\tsense_id" lines.
func WriteExamples(w io.Writer, examples []ExampleRecord) error {
	for _, e := range examples {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Text, e.SenseID); err != nil {
			return err
		}
	}
	return nil
}

// WriteQuotations writes "text\tsense_id\tattribution" lines.
func WriteQuotations(w io.Writer, quotations []QuotationRecord) error {
	for _, q := range quotations {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", q.Text, q.SenseID, q.Attribution); err != nil {
			return err
		}
	}
	return nil
}

// ReadSenses parses the output of WriteSenses. The part of speech is taken
// from the sense identifier, so proper nouns read back as nouns.
func ReadSenses(r io.Reader) ([]sense.Sense, error) {
	var senses []sense.Sense
	current := sense.Sense{}
	started := false

	scanner := newScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if started {
				senses = append(senses, current)
			}
			current = sense.Sense{}
			started = false
			continue
		}

		key, value, ok := strings.Cut(line, keySeparator)
		if !ok {
			// an empty value loses its tab to the trim
			key = strings.TrimSuffix(line, ":")
		}
		started = true

		switch key {
		case "sense_id":
			current.SenseID = value
			if parts := strings.Split(value, "."); len(parts) > 2 {
				current.POS = sense.PartOfSpeech(parts[len(parts)-2])
			}
		case "word":
			current.Word = value
		case "gloss":
			current.Gloss = value
		case "tags":
			current.Tags = splitList(value)
		case "depth":
			depth, err := strconv.Atoi(value)
			if err != nil {
				return senses, fmt.Errorf("sense %s: %w", current.SenseID, err)
			}
			current.Depth = depth
		case "synonyms":
			current.Synonyms = splitList(value)
		default:
			return senses, fmt.Errorf("unknown sense field %q", key)
		}
	}
	if started {
		senses = append(senses, current)
	}

	return senses, scanner.Err()
}

func ReadExamples(r io.Reader) ([]ExampleRecord, error) {
	var examples []ExampleRecord

	scanner := newScanner(r)
	for scanner.Scan() {
		fields := strings.Split(strings.TrimSpace(scanner.Text()), fieldSeparator)
		if len(fields) < 2 {
			return examples, fmt.Errorf("malformed example line %q", scanner.Text())
		}
		examples = append(examples, ExampleRecord{Text: fields[0], SenseID: fields[1]})
	}

	return examples, scanner.Err()
}

func ReadQuotations(r io.Reader) ([]QuotationRecord, error) {
	var quotations []QuotationRecord

	scanner := newScanner(r)
	for scanner.Scan() {
		// the attribution may be empty, so only the leading space is trimmed
		fields := strings.SplitN(strings.TrimLeft(scanner.Text(), " "), fieldSeparator, 3)
		if len(fields) < 2 {
			return quotations, fmt.Errorf("malformed quotation line %q", scanner.Text())
		}

		q := QuotationRecord{Text: fields[0], SenseID: fields[1]}
		if len(fields) > 2 {
			q.Attribution = fields[2]
		}
		quotations = append(quotations, q)
	}

	return quotations, scanner.Err()
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, listSeparator)
}

// newScanner allows lines up to 16MB; long pages put whole quotations on one
// line.
func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return scanner
}
