package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/zenmoney/zenmoney-cli/internal/models"
)

// RenderCashflowChart renders a PNG line chart of monthly income vs expense.
// Two series: Income (teal solid) and Expense (rose dashed).
// Returns raw PNG bytes.
func RenderCashflowChart(points []CashflowPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	incomeY := make([]float64, len(points))
	expenseY := make([]float64, len(points))

	for i, p := range points {
		xValues[i] = p.Month
		incomeY[i] = p.Income.InexactFloat64()
		expenseY[i] = p.Expense.InexactFloat64()
	}

	incomeSeries := chart.TimeSeries{
		Name: "Income",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("14b8a6"), // teal-500
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: incomeY,
	}

	expenseSeries := chart.TimeSeries{
		Name: "Expense",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("f43f5e"), // rose-500
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: expenseY,
	}

	graph := chart.Chart{
		Title:  "Monthly Cashflow",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			incomeSeries,
			expenseSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderBalanceChart renders a PNG bar chart of balances per account.
// Returns raw PNG bytes.
func RenderBalanceChart(banks []models.Bank) ([]byte, error) {
	if len(banks) == 0 {
		return nil, fmt.Errorf("no accounts to chart")
	}

	bars := make([]chart.Value, len(banks))
	for i, b := range banks {
		style := chart.Style{FillColor: drawing.ColorFromHex("14b8a6")}
		if b.Overdrawn() {
			style = chart.Style{FillColor: drawing.ColorFromHex("f43f5e")}
		}
		bars[i] = chart.Value{
			Label: b.Name,
			Value: b.Balance.InexactFloat64(),
			Style: style,
		}
	}

	graph := chart.BarChart{
		Title:  "Account Balances",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
