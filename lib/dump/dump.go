package dump

import (
	"bufio"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go-wiktionary-wsd/lib/sense"

	"github.com/gosuri/uiprogress"
	"github.com/macdub/go-colorlog"
)

const (
	PageOpen  = "<page>"
	PageClose = "</page>"

	// MaxLineSize bounds a single dump line; whole quotations can sit on one.
	// A longer line stops the whole run with bufio.ErrTooLong.
	MaxLineSize = 16 * 1024 * 1024
)

var Logger = colorlog.New(colorlog.Linfo)

var pageErrors = []error{
	sense.ErrNoTitle,
	sense.ErrNamespacePage,
	sense.ErrEmptyPage,
	sense.ErrNoLanguage,
	sense.ErrNoSenses,
}

// Stats counts pages by outcome.
type Stats struct {
	Pages    int
	Parsed   int
	Senses   int
	Rejected map[error]int
}

func newStats() Stats {
	return Stats{Rejected: map[error]int{}}
}

func (s *Stats) reject(err error) {
	for _, reason := range pageErrors {
		if errors.Is(err, reason) {
			s.Rejected[reason]++
			return
		}
	}
	s.Rejected[err]++
}

func (s Stats) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%d pages, %d parsed, %d senses", s.Pages, s.Parsed, s.Senses))
	for _, reason := range pageErrors {
		if n := s.Rejected[reason]; n > 0 {
			b.WriteString(fmt.Sprintf(", %d rejected: %v", n, reason))
		}
	}
	return b.String()
}

// ScanPages calls visit with the non-empty, trimmed lines between each
// <page> and </page> line of r. Lines outside of pages are ignored.
func ScanPages(r io.Reader, visit func(lines []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var page []string
	inPage := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == PageOpen:
			inPage = true
			page = nil
		case line == PageClose:
			if inPage {
				if err := visit(page); err != nil {
					return err
				}
			}
			inPage = false
			page = nil
		case inPage && line != "":
			page = append(page, line)
		}
	}

	return scanner.Err()
}

// Parse reads every page of r in document order and collects the senses of
// the given language section.
func Parse(r io.Reader, language string) ([]sense.Sense, Stats, error) {
	var senses []sense.Sense
	stats := newStats()

	err := ScanPages(r, func(lines []string) error {
		stats.Pages++

		s, err := sense.ParsePage(lines, language)
		if err != nil {
			Logger.Debug("rejected page: %v\n", err)
			stats.reject(err)
			return nil
		}

		stats.Parsed++
		stats.Senses += len(s)
		senses = append(senses, s...)
		return nil
	})

	return senses, stats, err
}

// Options control how a dump file is opened.
type Options struct {
	Language string
	// Progress renders a bar of the share of the file read so far.
	Progress bool
}

// ParseFile parses a dump file, decompressing it first when its name ends
// in .bz2.
func ParseFile(path string, opts Options) ([]sense.Sense, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newStats(), err
	}
	defer f.Close()

	var src io.Reader = f
	if opts.Progress {
		info, err := f.Stat()
		if err != nil {
			return nil, newStats(), err
		}
		bar := newProgressReader(f, info.Size())
		defer bar.Stop()
		src = bar
	}

	if strings.HasSuffix(path, ".bz2") {
		src = bzip2.NewReader(src)
	}

	language := opts.Language
	if language == "" {
		language = sense.DefaultLanguage
	}

	return Parse(src, language)
}

// progressReader advances a percentage bar as the underlying file is read.
type progressReader struct {
	r     io.Reader
	read  int64
	total int64
	bar   *uiprogress.Bar
}

var _ io.Reader = (*progressReader)(nil)

func newProgressReader(r io.Reader, total int64) *progressReader {
	uiprogress.Start()
	bar := uiprogress.AddBar(100)
	bar.AppendCompleted()
	bar.PrependElapsed()

	return &progressReader{r: r, total: total, bar: bar}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.total > 0 {
		p.bar.Set(int(p.read * 100 / p.total))
	}
	return n, err
}

func (p *progressReader) Stop() {
	p.bar.Set(100)
	uiprogress.Stop()
}
