// Package chart renders a SampleSeries as a two-panel CPU/MEM image.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/srodi/monitor2plot/pkg/report"
	"github.com/srodi/monitor2plot/pkg/types"
)

const (
	percentLabel = "Percentage (%)"
	threadsLabel = "threads"
)

// Input is everything needed to draw one run.
type Input struct {
	PID         int
	Label       string
	Interval    time.Duration
	CPUTime     float64 // user CPU seconds at the last sample; spans the time axis
	Series      types.SampleSeries
	Theme       Theme
	TotalMemory uint64
}

// Panel holds the derived data of one subplot.
type Panel struct {
	X, Y           []float64
	Ticks          []float64 // major ticks of the left axis
	Secondary      []report.Tick
	SecondaryTitle string
}

// Figure is a built, not yet written, chart.
type Figure struct {
	Title string
	CPU   Panel
	Mem   Panel

	style style
	plots [2]*plot.Plot
}

// Build derives both panels and lays out the plots. It fails with
// types.ErrNoSamples on an empty series.
func Build(in Input) (*Figure, error) {
	if in.Series.Len() == 0 {
		return nil, types.ErrNoSamples
	}
	st := in.Theme.style()
	axis := report.TimeAxis(in.CPUTime, in.Interval)

	fig := &Figure{
		Title: fmt.Sprintf("PID: %d\nCPU TIME: %.2f sec\nCMD: %s", in.PID, in.CPUTime, in.Label),
		style: st,
	}

	fig.CPU.X, fig.CPU.Y = report.Line(axis, in.Series.CPUPercents())
	cpuMax := axisMax(fig.CPU.Y)
	fig.CPU.Ticks = MajorTicks(cpuMax)
	fig.CPU.Secondary = report.ThreadTicks(fig.CPU.Ticks)
	fig.CPU.SecondaryTitle = threadsLabel

	fig.Mem.X, fig.Mem.Y = report.Line(fig.CPU.X, in.Series.MemPercents())
	memMax := axisMax(fig.Mem.Y)
	fig.Mem.Ticks = MajorTicks(memMax)
	fig.Mem.Secondary, fig.Mem.SecondaryTitle = report.MemoryTicks(fig.Mem.Ticks, in.TotalMemory)

	xMax := report.Step(in.Interval)
	if n := len(fig.CPU.X); n > 0 && fig.CPU.X[n-1] > xMax {
		xMax = fig.CPU.X[n-1]
	}

	cpuPlot, err := newPanelPlot(st, fig.CPU, cpuMax, xMax, st.cpu, "CPU")
	if err != nil {
		return nil, fmt.Errorf("building cpu panel: %w", err)
	}
	cpuPlot.Title.Text = fig.Title
	cpuPlot.X.Tick.Marker = plot.ConstantTicks(nil)

	memPlot, err := newPanelPlot(st, fig.Mem, memMax, xMax, st.mem, "MEM")
	if err != nil {
		return nil, fmt.Errorf("building memory panel: %w", err)
	}
	memPlot.X.Label.Text = "sec"

	fig.plots = [2]*plot.Plot{cpuPlot, memPlot}
	return fig, nil
}

func newPanelPlot(st style, panel Panel, yMax, xMax float64, lineColor color.Color, name string) (*plot.Plot, error) {
	p := plot.New()
	applyStyle(p, st)

	xys := make(plotter.XYs, len(panel.X))
	for i := range panel.X {
		xys[i].X = panel.X[i]
		xys[i].Y = panel.Y[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = st.lineWidth
	if len(xys) > 0 {
		p.Add(line)
	}
	p.Legend.Add(name, line)

	p.X.Min, p.X.Max = 0, xMax
	p.Y.Min, p.Y.Max = 0, yMax
	p.Y.Tick.Marker = plot.ConstantTicks(axisTicks(yMax))
	p.Y.Label.Text = percentLabel

	p.Add(rightAxis{
		title: panel.SecondaryTitle,
		ticks: panel.Secondary,
		text:  p.Y.Tick.Label,
		line:  p.Y.Tick.LineStyle,
	})
	return p, nil
}

func applyStyle(p *plot.Plot, st style) {
	p.BackgroundColor = st.background
	p.Title.TextStyle.Color = st.foreground
	p.Title.TextStyle.Font.Size = st.titleSize
	p.Legend.TextStyle.Color = st.foreground
	p.Legend.Top = true
	p.Legend.Left = true
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = st.foreground
		ax.Label.TextStyle.Color = st.foreground
		ax.Label.TextStyle.Font.Size = st.labelSize
		ax.Tick.Label.Color = st.foreground
		ax.Tick.Label.Font.Size = st.tickSize
		ax.Tick.LineStyle.Color = st.foreground
	}
}

// Save writes the figure to path; the format follows the file extension.
// The file appears only once fully written.
func (f *Figure) Save(path string) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}
	c, err := draw.NewFormattedCanvas(f.style.width, f.style.height, format)
	if err != nil {
		return fmt.Errorf("creating %s canvas: %w", format, err)
	}
	dc := draw.New(c)
	dc.FillPolygon(f.style.background, []vg.Point{
		dc.Min,
		{X: dc.Max.X, Y: dc.Min.Y},
		dc.Max,
		{X: dc.Min.X, Y: dc.Max.Y},
	})

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadTop:    vg.Points(8),
		PadBottom: vg.Points(8),
		PadLeft:   vg.Points(8),
		PadRight:  vg.Points(24),
		PadY:      vg.Points(12),
	}
	canvases := plot.Align([][]*plot.Plot{{f.plots[0]}, {f.plots[1]}}, tiles, dc)
	f.plots[0].Draw(canvases[0][0])
	f.plots[1].Draw(canvases[1][0])

	return writeAtomic(path, c)
}

// Render builds the chart for in and writes it to path.
func Render(in Input, path string, log logrus.FieldLogger) error {
	fig, err := Build(in)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"points":  len(fig.CPU.X),
		"threads": len(fig.CPU.Secondary),
		"memUnit": fig.Mem.SecondaryTitle,
	}).Debug("chart built")
	return fig.Save(path)
}

var formats = map[string]string{
	"png":  "png",
	"jpg":  "jpg",
	"jpeg": "jpg",
	"tif":  "tif",
	"tiff": "tif",
	"svg":  "svg",
	"pdf":  "pdf",
	"eps":  "eps",
}

func formatFor(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "png", nil
	}
	format, ok := formats[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image format %q", ext)
	}
	return format, nil
}

func writeAtomic(path string, src io.WriterTo) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".monitor2plot-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := src.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing image: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
