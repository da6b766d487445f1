package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/paperplot/series"
)

func TestParseWindow(t *testing.T) {
	w, err := parseWindow("10,2")
	require.NoError(t, err)
	assert.Equal(t, series.Window{Size: 10, Step: 2}, w)

	w, err = parseWindow(" 5 ")
	require.NoError(t, err)
	assert.Equal(t, series.Window{Size: 5, Step: 1}, w)

	_, err = parseWindow("0,1")
	assert.ErrorIs(t, err, series.ErrInvalidWindow)
	_, err = parseWindow("a,1")
	assert.Error(t, err)
	_, err = parseWindow("3,b")
	assert.Error(t, err)
}

func TestRunSmooth(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("loss\n1\n2\n3\n4\n5\n"), 0o644))

	var stderr bytes.Buffer
	code := run([]string{"-smooth", "3,1", "-o", out, in}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n4\n4.666666666666667\n5\n", string(data))
	assert.Contains(t, stderr.String(), "ignored non-numeric line")
	assert.Contains(t, stderr.String(), "n=5 mean=3 out_n=5 min=2 max=5")
}

func TestRunSmoothErrors(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.txt")
	require.NoError(t, os.WriteFile(short, []byte("1\n2\n"), 0o644))

	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-smooth", "3,1", short}, &stderr))
	assert.Contains(t, stderr.String(), "needs at least 3 values")

	assert.Equal(t, 1, run([]string{"-smooth", "3,1", filepath.Join(dir, "missing.txt")}, &stderr))
	assert.Equal(t, 2, run([]string{"-smooth", "x", short}, &stderr))
	assert.Equal(t, 2, run([]string{"-smooth", "3", short, short}, &stderr))
}

func TestRunUsage(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stderr))
	assert.Contains(t, stderr.String(), "usage: paperplot")
	assert.Equal(t, 2, run([]string{"-nope"}, &stderr))
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, series.WriteFile(filepath.Join(dir, "a.txt"), series.New("a", 3, 2, 1.5, 1)))
	spec := "output: fig.png\nwidth: 4\nheight: 3\npanels:\n  - {kind: line, series: [{label: a, path: a.txt}]}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fig.yaml"), []byte(spec), 0o644))

	var stderr bytes.Buffer
	code := run([]string{"-v", filepath.Join(dir, "fig.yaml"), filepath.Join(dir, "bad.yaml")}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "bad.yaml")
	assert.Contains(t, stderr.String(), "level=DEBUG")

	_, err := os.Stat(filepath.Join(dir, "fig.png"))
	assert.NoError(t, err)
}
