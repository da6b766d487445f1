package paperplot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/paperplot/series"
)

func TestBrokenAxisCheck(t *testing.T) {
	tests := []struct {
		name string
		b    BrokenAxis
		ok   bool
	}{
		{"ok", BrokenAxis{Lower: [2]float64{0, 1}, Upper: [2]float64{5, 6}}, true},
		{"touching", BrokenAxis{Lower: [2]float64{0, 1}, Upper: [2]float64{1, 6}}, true},
		{"empty lower", BrokenAxis{Lower: [2]float64{1, 1}, Upper: [2]float64{5, 6}}, false},
		{"overlap", BrokenAxis{Lower: [2]float64{0, 3}, Upper: [2]float64{2, 6}}, false},
		{"negative ratio", BrokenAxis{Lower: [2]float64{0, 1}, Upper: [2]float64{5, 6}, Ratio: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.b.check()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestBrokenAxisRender(t *testing.T) {
	var buf bytes.Buffer
	f := &Figure{
		Width:  5 * vg.Inch,
		Height: 4 * vg.Inch,
		Theme:  DefaultTheme,
		Log:    testLogger(&buf),
		Panels: []*Panel{{
			Title:  "Outliers",
			Y:      Axis{Label: "Loss"},
			Legend: true,
			Broken: &BrokenAxis{
				Lower:      [2]float64{0, 3},
				Upper:      [2]float64{40, 60},
				LowerTicks: MultipleTicker{Major: 1},
				UpperTicks: MultipleTicker{Major: 10},
			},
			Layers: []*Layer{{
				Name: "run",
				Data: series.Group{series.New("run", 50, 2.5, 1.5, 1.2, 1)},
				Geom: GeomLine{Style: Style{"shape": "o"}},
			}},
		}},
	}
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, f.Save(path))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))

	f.Panels[0].Broken.Lower = [2]float64{0, 50}
	assert.Error(t, f.Save(path))
}
