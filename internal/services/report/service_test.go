package report

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenmoney/zenmoney-cli/internal/clients/zenapi"
	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

type noCreds struct{}

func (noCreds) Token() string { return "" }

func newService(t *testing.T, banksHandler, txHandler http.HandlerFunc) *Service {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/banks", banksHandler)
	mux.HandleFunc("/transaction", txHandler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewService(zenapi.NewClient(srv.URL, noCreds{}), common.NewSilentLogger())
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

func TestSummarize(t *testing.T) {
	svc := newService(t,
		func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"banks":[{"id":1,"name":"A","account_type":"checking","balance":1500},{"id":2,"name":"B","account_type":"savings","balance":-250.5}]}`)
		},
		func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"transactions":[
				{"id":1,"type":"income","amount":4000,"date":"2026-08-01T00:00:00Z","description":"Pay"},
				{"id":2,"type":"expense","amount":1200,"date":"2026-08-12T00:00:00Z","description":"Rent"},
				{"id":3,"type":"expense","amount":90,"date":"2026-07-03T00:00:00Z","description":"Old"}
			]}`)
		},
	)

	svc.Load(context.Background())
	require.Empty(t, svc.Err())

	summary := svc.Summarize(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "1249.5", summary.TotalBalance.String())
	assert.Equal(t, "4000", summary.MonthlyIncome.String())
	assert.Equal(t, "1200", summary.MonthlyExpense.String())
	assert.Equal(t, 2, summary.Accounts)
	assert.Equal(t, 3, summary.Transactions)
}

func TestLoadPartialFailure(t *testing.T) {
	svc := newService(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
		func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `[{"id":1,"type":"income","amount":10,"date":"2026-08-01T00:00:00Z","description":"x"}]`)
		},
	)

	svc.Load(context.Background())

	assert.Empty(t, svc.Banks(), "failed slot contributes an empty collection")
	assert.Len(t, svc.Transactions(), 1, "healthy slot survives the other's failure")
	assert.NotEmpty(t, svc.Err())
}

func TestMonthlyCashflowBuckets(t *testing.T) {
	svc := newService(t,
		func(w http.ResponseWriter, r *http.Request) { writeJSON(w, `[]`) },
		func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `[
				{"id":1,"type":"income","amount":4000,"date":"2026-08-01T00:00:00Z","description":"Pay"},
				{"id":2,"type":"expense","amount":900,"date":"2026-07-15T00:00:00Z","description":"Rent"}
			]`)
		},
	)
	svc.Load(context.Background())

	ref := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	points := svc.MonthlyCashflow(ref, 3)

	require.Len(t, points, 3)
	assert.Equal(t, time.June, points[0].Month.Month())
	assert.True(t, points[0].Income.IsZero())
	assert.Equal(t, "900", points[1].Expense.String())
	assert.Equal(t, "4000", points[2].Income.String())
}

func TestRenderCashflowChartPNG(t *testing.T) {
	points := []CashflowPoint{
		{Month: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), Income: decimal.NewFromInt(4000), Expense: decimal.NewFromInt(2400)},
		{Month: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Income: decimal.NewFromInt(4200), Expense: decimal.NewFromInt(2800)},
		{Month: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Income: decimal.NewFromInt(4500), Expense: decimal.NewFromInt(3200)},
	}

	png, err := RenderCashflowChart(points)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "output is not a PNG")
}

func TestRenderCashflowChartTooFewPoints(t *testing.T) {
	_, err := RenderCashflowChart([]CashflowPoint{{Month: time.Now()}})
	require.Error(t, err)
}

func TestRenderBalanceChartPNG(t *testing.T) {
	banks := []models.Bank{
		{ID: 1, Name: "Everyday", AccountType: models.AccountChecking, Balance: decimal.NewFromInt(1200)},
		{ID: 2, Name: "Overdraft", AccountType: models.AccountChecking, Balance: decimal.NewFromInt(-300)},
	}

	png, err := RenderBalanceChart(banks)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = RenderBalanceChart(nil)
	require.Error(t, err)
}
