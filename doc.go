// Package paperplot draws the figures of a paper from numeric series
// files: training curves, aggregated runs with a ±sd band, histograms
// and bar charts of per-epoch changes, and panels with a broken y axis.
//
// The series themselves are read and prepared by package series. This
// package adds the drawing pipeline, loosely modelled on ggplot2:
//
//	Layer:  series.Group --Stat--> series.Group --Geom--> gonum plotters
//	Panel:  layers + axes (limits, ticks) + optional broken y axis
//	Figure: grid of panels + shared legend, saved as pdf, png, svg, ...
//
// Stats (StatWindow, StatDelta, StatZeroBase, StatSkipStride, StatBand)
// never modify their input. Geoms (GeomLine, GeomBar, GeomHist,
// GeomBand, GeomHLine) take their fixed aesthetics from a Style and the
// Theme.
//
// Figures can be assembled in Go or described in YAML, see Spec,
// LoadSpec and Build.
package paperplot
