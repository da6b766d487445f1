package series

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLoader() *Loader {
	return &Loader{Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestParse(t *testing.T) {
	var buf bytes.Buffer
	l := &Loader{Log: slog.New(slog.NewTextHandler(&buf, nil))}

	s, warnings, err := l.Parse(strings.NewReader("1.0\nbad\n2.0\n"), "mem")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, s.Values())
	require.Len(t, warnings, 1)
	assert.Equal(t, ParseWarning{Source: "mem", Line: 2, Text: "bad"}, warnings[0])
	assert.Contains(t, buf.String(), "ignored non-numeric line")
}

func TestParseLenient(t *testing.T) {
	input := "loss\n 0.25 \n\n1e-3\n-4\nnan-ish\n"
	s, warnings, err := quietLoader().Parse(strings.NewReader(input), "log")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.001, -4}, s.Values())
	require.Len(t, warnings, 3)
	assert.Equal(t, 1, warnings[0].Line)
	assert.Equal(t, 3, warnings[1].Line)
	assert.Equal(t, 6, warnings[2].Line)
}

func TestParseLongLine(t *testing.T) {
	input := "1.0\n" + strings.Repeat("x", 70*1024) + "\n2.0\n3.0"
	s, warnings, err := quietLoader().Parse(strings.NewReader(input), "log")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, s.Values())
	require.Len(t, warnings, 1)
	assert.Equal(t, 2, warnings[0].Line)
	assert.Len(t, warnings[0].Text, maxWarnText+3)
}

func TestParseOutOfRange(t *testing.T) {
	s, warnings, err := quietLoader().Parse(strings.NewReader("1e400\n-1e400\n1e-400\n"), "log")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Equal(t, 3, s.Len())
	assert.True(t, math.IsInf(s.At(0), 1))
	assert.True(t, math.IsInf(s.At(1), -1))
	assert.Equal(t, 0.0, s.At(2))
}

type failingReader struct{ after io.Reader }

func (f *failingReader) Read(p []byte) (int, error) {
	n, err := f.after.Read(p)
	if err == io.EOF {
		return n, io.ErrUnexpectedEOF
	}
	return n, err
}

func TestParseReadError(t *testing.T) {
	s, _, err := quietLoader().Parse(&failingReader{strings.NewReader("1\n2\n")}, "broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, []float64{1, 2}, s.Values())
}

func TestReadFileMissing(t *testing.T) {
	s, warnings, err := quietLoader().ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.True(t, s.Empty())
	assert.Empty(t, warnings)
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New("loss", 0.5, 0.0025, 1e-7, 3)

	for _, name := range []string{"loss.txt", "loss.txt" + SnappySuffix} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))
			require.NoError(t, WriteFile(path, s))

			got, warnings, err := quietLoader().ReadFile(path)
			require.NoError(t, err)
			assert.Empty(t, warnings)
			assert.True(t, got.Equal(s), "got %v", got)
			assert.Equal(t, path, got.Name)
		})
	}
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, New("s", 1, 0.25, -3)))
	assert.Equal(t, "1\n0.25\n-3\n", buf.String())
}

func TestReadGroup(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("1\n2\n3\n"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	g, err := quietLoader().ReadGroup(a, missing)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	require.Len(t, g, 2)
	assert.Equal(t, 3, g[0].Len())
	assert.True(t, g[1].Empty())
}
