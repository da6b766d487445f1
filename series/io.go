package series

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"
)

// SnappySuffix marks series files stored as a snappy framed stream.
const SnappySuffix = ".sz"

// Loader reads series from line-oriented text sources: one decimal
// number per line. Lines which do not parse are skipped and reported.
type Loader struct {
	// Log receives a warning for every skipped line and for missing
	// sources. A nil Log uses slog.Default().
	Log *slog.Logger
}

// DefaultLoader logs to slog.Default().
var DefaultLoader = &Loader{}

func (l *Loader) log() *slog.Logger {
	if l == nil || l.Log == nil {
		return slog.Default()
	}
	return l.Log
}

// Parse reads one number per line from r. Malformed lines (headers,
// blank lines) are skipped and returned as warnings; lines of any
// length are accepted. Values beyond the float64 range are kept as
// ±Inf. An error is returned only if reading r fails; the series read
// so far is returned along with it.
func (l *Loader) Parse(r io.Reader, name string) (Series, []ParseWarning, error) {
	var (
		values   []float64
		warnings []ParseWarning
	)
	br := bufio.NewReader(r)
	line := 0
	for {
		raw, rerr := br.ReadString('\n')
		if raw != "" {
			line++
			text := strings.TrimSpace(raw)
			x, err := strconv.ParseFloat(text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				w := ParseWarning{Source: name, Line: line, Text: clip(text)}
				l.log().Warn("ignored non-numeric line", "source", name, "line", line, "text", w.Text)
				warnings = append(warnings, w)
			} else {
				values = append(values, x)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			s := Series{Name: name, values: values}
			return s, warnings, fmt.Errorf("series: reading %s: %w", name, rerr)
		}
	}
	return Series{Name: name, values: values}, warnings, nil
}

// maxWarnText limits the text kept for a skipped line.
const maxWarnText = 80

func clip(text string) string {
	if len(text) <= maxWarnText {
		return text
	}
	return text[:maxWarnText] + "..."
}

// ReadFile reads the series stored in path. Paths ending in SnappySuffix
// are decompressed on the fly.
//
// If path does not exist the returned error wraps ErrSourceNotFound and
// the series is empty; callers should treat that as "no data".
func (l *Loader) ReadFile(path string) (Series, []ParseWarning, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log().Warn("file not found", "path", path)
			return Series{Name: path}, nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return Series{Name: path}, nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, SnappySuffix) {
		r = snappy.NewReader(file)
	}
	s, warnings, err := l.Parse(r, path)
	l.log().Debug("read series", "path", path, "n", s.Len(), "skipped", len(warnings))
	return s, warnings, err
}

// ReadGroup reads all paths into a group in the given order. Missing
// sources yield empty members; their ErrSourceNotFound errors are
// joined and returned together with the group.
func (l *Loader) ReadGroup(paths ...string) (Group, error) {
	g := make(Group, len(paths))
	var errs []error
	for i, p := range paths {
		s, _, err := l.ReadFile(p)
		if err != nil && !errors.Is(err, ErrSourceNotFound) {
			return nil, err
		}
		if err != nil {
			errs = append(errs, err)
		}
		g[i] = s
	}
	return g, errors.Join(errs...)
}

// ReadFile reads path with the DefaultLoader.
func ReadFile(path string) (Series, []ParseWarning, error) {
	return DefaultLoader.ReadFile(path)
}

// Write writes s to w, one value per line.
func Write(w io.Writer, s Series) error {
	bw := bufio.NewWriter(w)
	for _, x := range s.values {
		bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes s to path in the format ReadFile understands,
// replacing any existing file.
func WriteFile(path string, s Series) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, SnappySuffix) {
		return Write(file, s)
	}
	sw := snappy.NewBufferedWriter(file)
	if err := Write(sw, s); err != nil {
		return err
	}
	return sw.Close()
}
