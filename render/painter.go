package render

import (
	"io"

	"github.com/gogpu/gg"
	"github.com/sgostarter/libbezier/bezier"
)

const (
	polygonWidth = 6
	traceWidth   = 3
	dotRadius    = 6
)

type rgba struct {
	r, g, b, a float64
}

var (
	colorPolygon  = rgba{0, 0, 0, 1}
	colorDivision = rgba{0xee / 255.0, 0xee / 255.0, 0xee / 255.0, 1}
	colorTrace    = rgba{0, 0, 1, 0.2}
	colorActive   = rgba{0, 1, 0, 1}
	colorCurrent  = rgba{1, 0, 0, 1}
	colorDot      = rgba{0, 0, 0, 1}
)

// Painter draws frames onto a fresh canvas each time.
type Painter struct {
	width  int
	height int
}

func NewPainter(width, height int) *Painter {
	if width <= 0 || height <= 0 {
		cfg := bezier.DefaultConfig()
		width, height = cfg.Width, cfg.Height
	}

	return &Painter{
		width:  width,
		height: height,
	}
}

func (p *Painter) Paint(frame bezier.Frame) *gg.Context {
	dc := gg.NewContext(p.width, p.height)

	dc.ClearWithColor(gg.White)

	for _, segment := range frame.Segments {
		p.line(dc, segment.Start, segment.End, polygonWidth, colorPolygon)
		p.polyline(dc, segment.Division, polygonWidth, colorDivision)

		if n := len(segment.Division); n > 0 {
			p.dot(dc, segment.Division[n-1], colorDot)
		}

		p.dot(dc, segment.Start, colorDot)
		p.dot(dc, segment.End, colorDot)
	}

	if len(frame.Segments) == 0 {
		for idx := 1; idx < len(frame.ControlPoints); idx++ {
			p.line(dc, frame.ControlPoints[idx-1], frame.ControlPoints[idx], polygonWidth, colorPolygon)
		}
	}

	if len(frame.ControlPoints) >= 3 {
		trace := make([]bezier.Point, 0, len(frame.TraceBefore)+len(frame.TraceFrom))
		trace = append(trace, frame.TraceBefore...)
		trace = append(trace, frame.TraceFrom...)

		p.polyline(dc, trace, traceWidth, colorTrace)
		p.polyline(dc, frame.TraceFrom, traceWidth, colorActive)

		if frame.HasCurrent {
			p.dot(dc, frame.Current, colorCurrent)
		}
	}

	for _, pt := range frame.ControlPoints {
		p.dot(dc, pt, colorDot)
	}

	return dc
}

func (p *Painter) SavePNG(frame bezier.Frame, fileName string) error {
	return p.Paint(frame).SavePNG(fileName)
}

func (p *Painter) EncodePNG(frame bezier.Frame, w io.Writer) error {
	return p.Paint(frame).EncodePNG(w)
}

func (p *Painter) line(dc *gg.Context, start, end bezier.Point, width float64, c rgba) {
	dc.SetRGBA(c.r, c.g, c.b, c.a)
	dc.SetLineWidth(width)
	dc.DrawLine(start.X, start.Y, end.X, end.Y)
	dc.Stroke()
}

func (p *Painter) polyline(dc *gg.Context, points []bezier.Point, width float64, c rgba) {
	if len(points) < 2 {
		return
	}

	for idx := 1; idx < len(points); idx++ {
		p.line(dc, points[idx-1], points[idx], width, c)
	}
}

func (p *Painter) dot(dc *gg.Context, pt bezier.Point, c rgba) {
	dc.SetRGBA(c.r, c.g, c.b, c.a)
	dc.DrawCircle(pt.X, pt.Y, dotRadius)
	dc.Fill()
}
