package curve

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ukaji3/qpcr-go/pkg/qpcr/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Plot titles.
const (
	Title  = "Viral Titer Standard Curve"
	XLabel = "Log copies/ml"
	YLabel = "CT"
)

// DefaultSize is the default plot width and height in pixels.
const DefaultSize = 600

// Equation returns the fitted line as shown on the plot.
func Equation(c *models.StandardCurve) string {
	return fmt.Sprintf("y = %gx + %g", round4(c.Slope), round4(c.Intercept))
}

// Plot renders the standards as points and the fitted line as a dashed line,
// returning PNG bytes.
func Plot(c *models.StandardCurve, width, height int) ([]byte, error) {
	if len(c.Points) < 2 {
		return nil, fmt.Errorf("need at least 2 points to plot, got %d", len(c.Points))
	}
	if width <= 0 {
		width = DefaultSize
	}
	if height <= 0 {
		height = DefaultSize
	}

	xs := make([]float64, len(c.Points))
	actual := make([]float64, len(c.Points))
	predicted := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.LogCopies
		actual[i] = p.CT
		predicted[i] = c.Predict(p.LogCopies)
	}

	minY, maxY := actual[0], actual[0]
	for i := range actual {
		minY = math.Min(minY, math.Min(actual[i], predicted[i]))
		maxY = math.Max(maxY, math.Max(actual[i], predicted[i]))
	}
	pad := math.Max((maxY-minY)*0.15, 1)

	midX := xs[len(xs)/2]
	graph := chart.Chart{
		Title:  Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: XLabel,
		},
		YAxis: chart.YAxis{
			Name:  YLabel,
			Range: &chart.ContinuousRange{Min: minY - pad, Max: maxY + pad},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "fit",
				XValues: xs,
				YValues: predicted,
				Style: chart.Style{
					StrokeColor:     drawing.ColorBlue,
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{6, 4},
				},
			},
			chart.ContinuousSeries{
				Name:    "standards",
				XValues: xs,
				YValues: actual,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    drawing.ColorRed,
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{XValue: midX, YValue: maxY + pad*0.6, Label: Equation(c)},
					{XValue: midX, YValue: maxY + pad*0.2, Label: fmt.Sprintf("r^2 = %g", round4(c.RSquared))},
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
