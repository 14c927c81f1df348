package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/nesaboz/finance/internal/domain"
)

var (
	chartTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartAxisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	chartSeriesStyle = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
	chartSeriesChars = []rune{'●', '■'}
)

// ChartFormatter plots the investment and cumulative profit series as
// an ASCII line chart against the shared year axis.
type ChartFormatter struct{}

func (ChartFormatter) Name() string { return "chart" }

func (ChartFormatter) Format(proj *domain.Projection) ([]byte, error) {
	chart := lineChart{
		title:  "Projection",
		width:  72,
		height: 16,
	}
	chart.addSeries("Investments", decimalPoints(proj.Investments))
	chart.addSeries("Cumulative profit", decimalPoints(proj.Profit))
	for _, year := range proj.Years {
		chart.labels = append(chart.labels, fmt.Sprintf("%d", year))
	}
	return []byte(chart.render()), nil
}

func decimalPoints(series []decimal.Decimal) []float64 {
	points := make([]float64, len(series))
	for i, v := range series {
		points[i] = v.InexactFloat64()
	}
	return points
}

type chartSeries struct {
	name   string
	points []float64
}

type lineChart struct {
	title  string
	series []chartSeries
	labels []string
	width  int
	height int
}

func (c *lineChart) addSeries(name string, points []float64) {
	c.series = append(c.series, chartSeries{name: name, points: points})
}

func (c *lineChart) render() string {
	if len(c.series) == 0 || len(c.series[0].points) == 0 {
		return "no data to display\n"
	}

	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(c.title))
	b.WriteString("\n\n")

	minVal, maxVal := c.bounds()
	b.WriteString(c.renderGrid(minVal, maxVal))

	b.WriteString("\n")
	for i, s := range c.series {
		style := chartSeriesStyle[i%len(chartSeriesStyle)]
		marker := chartSeriesChars[i%len(chartSeriesChars)]
		b.WriteString(style.Render(fmt.Sprintf("%c %s", marker, s.name)))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	return b.String()
}

// bounds finds the global min/max across all series with 10% padding
// so lines never touch the frame.
func (c *lineChart) bounds() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, s := range c.series {
		for _, p := range s.points {
			minVal = math.Min(minVal, p)
			maxVal = math.Max(maxVal, p)
		}
	}
	if minVal == maxVal {
		// Flat data still needs a non-zero value range to map onto rows.
		minVal--
		maxVal++
	}
	padding := (maxVal - minVal) * 0.1
	return minVal - padding, maxVal + padding
}

func (c *lineChart) renderGrid(minVal, maxVal float64) string {
	const yAxisWidth = 10
	chartWidth := c.width - yAxisWidth

	grid := make([][]rune, c.height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for seriesIdx, s := range c.series {
		marker := chartSeriesChars[seriesIdx%len(chartSeriesChars)]
		prevX, prevY := -1, -1
		for i, p := range s.points {
			x := 0
			if len(s.points) > 1 {
				x = i * (chartWidth - 1) / (len(s.points) - 1)
			}
			y := c.height - 1 - int((p-minVal)/(maxVal-minVal)*float64(c.height-1))
			if prevX >= 0 {
				drawLine(grid, prevX, prevY, x, y, marker)
			}
			if y >= 0 && y < c.height {
				grid[y][x] = marker
			}
			prevX, prevY = x, y
		}
	}

	var b strings.Builder
	valueRange := maxVal - minVal
	for i, row := range grid {
		yValue := maxVal - float64(i)/float64(c.height-1)*valueRange
		b.WriteString(chartAxisStyle.Render(fmt.Sprintf("%*s", yAxisWidth, chartValueLabel(yValue))))
		b.WriteString(" │ ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", yAxisWidth))
	b.WriteString(" └")
	b.WriteString(strings.Repeat("─", chartWidth))
	b.WriteString("\n")

	if len(c.labels) > 0 {
		b.WriteString(strings.Repeat(" ", yAxisWidth+3))
		b.WriteString(chartAxisStyle.Render(c.labels[0]))
		if len(c.labels) > 1 {
			last := c.labels[len(c.labels)-1]
			gap := chartWidth - len(c.labels[0]) - len(last)
			if gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
				b.WriteString(chartAxisStyle.Render(last))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func chartValueLabel(value float64) string {
	switch {
	case math.Abs(value) >= 1e6:
		return fmt.Sprintf("$%.1fM", value/1e6)
	case math.Abs(value) >= 1e3:
		return fmt.Sprintf("$%.0fK", value/1e3)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}

// drawLine connects two grid points with Bresenham's algorithm,
// filling only empty cells so plotted markers stay visible.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, marker rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] == ' ' {
			grid[y][x] = marker
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
