package chart

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/quillpdf/quill/api"
)

// composeSVG draws a chart config onto an SVG canvas of the given pixel size.
func composeSVG(config api.ChartConfig, theme api.Theme, width, height int) ([]byte, error) {
	if len(config.Series) == 0 {
		return nil, fmt.Errorf("chart has no series")
	}
	maxVal, points := seriesExtent(config.Series)
	if points == 0 {
		return nil, fmt.Errorf("chart series have no values")
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+theme.Background)

	switch config.Type {
	case api.ChartBar:
		drawBars(canvas, config, theme, width, height, maxVal)
	case api.ChartLine:
		drawLines(canvas, config, theme, width, height, maxVal)
	case api.ChartPie:
		if err := drawPie(canvas, config, theme, width, height); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported chart type %q", config.Type)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// seriesExtent returns the largest absolute value and the total point count.
func seriesExtent(series []api.Series) (maxVal float64, points int) {
	for _, s := range series {
		points += len(s.Values)
		for _, v := range s.Values {
			if math.Abs(v) > maxVal {
				maxVal = math.Abs(v)
			}
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	return maxVal, points
}

// plotArea returns the chart area inside the canvas padding.
func plotArea(width, height int) (x, y, w, h int) {
	padX := width / 12
	padY := height / 10
	return padX, padY, width - 2*padX, height - 2*padY
}

func drawAxes(canvas *svg.SVG, theme api.Theme, px, py, pw, ph int) {
	axisStyle := fmt.Sprintf("stroke:%s;stroke-width:1;fill:none", theme.Axis)
	canvas.Line(px, py, px, py+ph, axisStyle)
	canvas.Line(px, py+ph, px+pw, py+ph, axisStyle)
}

func drawBars(canvas *svg.SVG, config api.ChartConfig, theme api.Theme, width, height int, maxVal float64) {
	px, py, pw, ph := plotArea(width, height)
	drawAxes(canvas, theme, px, py, pw, ph)

	groups := 0
	for _, s := range config.Series {
		if len(s.Values) > groups {
			groups = len(s.Values)
		}
	}
	perGroup := len(config.Series)
	slot := float64(pw) / float64(groups)
	barW := slot / float64(perGroup+1)

	for si, s := range config.Series {
		style := fmt.Sprintf("fill:%s;stroke:none", theme.SeriesColor(si))
		for gi, v := range s.Values {
			barH := int(math.Abs(v) / maxVal * float64(ph))
			x := px + int(float64(gi)*slot+barW*float64(si)+barW/2)
			canvas.Rect(x, py+ph-barH, int(barW), barH, style)
		}
	}

	drawGroupLabels(canvas, config.Labels, theme, px, py, pw, ph, groups)
}

func drawLines(canvas *svg.SVG, config api.ChartConfig, theme api.Theme, width, height int, maxVal float64) {
	px, py, pw, ph := plotArea(width, height)
	drawAxes(canvas, theme, px, py, pw, ph)

	for si, s := range config.Series {
		if len(s.Values) == 0 {
			continue
		}
		xs := make([]int, len(s.Values))
		ys := make([]int, len(s.Values))
		step := float64(pw)
		if len(s.Values) > 1 {
			step = float64(pw) / float64(len(s.Values)-1)
		}
		for i, v := range s.Values {
			xs[i] = px + int(float64(i)*step)
			ys[i] = py + ph - int(math.Abs(v)/maxVal*float64(ph))
		}
		style := fmt.Sprintf("stroke:%s;stroke-width:2;fill:none", theme.SeriesColor(si))
		canvas.Polyline(xs, ys, style)
	}

	drawGroupLabels(canvas, config.Labels, theme, px, py, pw, ph, len(config.Labels))
}

func drawPie(canvas *svg.SVG, config api.ChartConfig, theme api.Theme, width, height int) error {
	values := config.Series[0].Values
	total := 0.0
	for _, v := range values {
		if v < 0 {
			return fmt.Errorf("pie chart values must be non-negative")
		}
		total += v
	}
	if total == 0 {
		return fmt.Errorf("pie chart values sum to zero")
	}

	cx, cy := width/2, height/2
	r := height/2 - height/10

	angle := -math.Pi / 2
	for i, v := range values {
		sweep := v / total * 2 * math.Pi
		x1 := float64(cx) + float64(r)*math.Cos(angle)
		y1 := float64(cy) + float64(r)*math.Sin(angle)
		x2 := float64(cx) + float64(r)*math.Cos(angle+sweep)
		y2 := float64(cy) + float64(r)*math.Sin(angle+sweep)
		large := 0
		if sweep > math.Pi {
			large = 1
		}
		d := fmt.Sprintf("M%d,%d L%.2f,%.2f A%d,%d 0 %d,1 %.2f,%.2f Z",
			cx, cy, x1, y1, r, r, large, x2, y2)
		canvas.Path(d, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", theme.SeriesColor(i), theme.Background))
		angle += sweep
	}

	return nil
}

// drawGroupLabels writes x-axis labels under the plot when provided.
func drawGroupLabels(canvas *svg.SVG, labels []string, theme api.Theme, px, py, pw, ph, groups int) {
	if len(labels) == 0 || groups == 0 {
		return
	}
	slot := float64(pw) / float64(groups)
	fontSize := ph / 18
	if fontSize < 8 {
		fontSize = 8
	}
	style := fmt.Sprintf("fill:%s;font-size:%dpx;text-anchor:middle;font-family:sans-serif", theme.Text, fontSize)
	for i, label := range labels {
		if i >= groups {
			break
		}
		x := px + int(float64(i)*slot+slot/2)
		canvas.Text(x, py+ph+fontSize+4, label, style)
	}
}
