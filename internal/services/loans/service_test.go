package loans

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenmoney/zenmoney-cli/internal/clients/zenapi"
	"github.com/zenmoney/zenmoney-cli/internal/common"
)

type noCreds struct{}

func (noCreds) Token() string { return "" }

func newService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(zenapi.NewClient(srv.URL, noCreds{}), common.NewSilentLogger())
}

func TestLoadAndDebtTotals(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"car","name":"Car Loan","emi":450,"remainingBalance":12000,"interestRate":6.5,"totalDurationMonths":48,"paidMonths":12},
			{"id":"home","name":"Mortgage","emi":1800,"remainingBalance":250000,"interestRate":4.1,"totalDurationMonths":360,"paidMonths":24}
		]`))
	})
	svc.Load(context.Background())

	require.Len(t, svc.Items(), 2)

	debt, emi := svc.DebtTotals()
	assert.Equal(t, "262000", debt.String())
	assert.Equal(t, "2250", emi.String())

	car := svc.Items()[0]
	assert.Equal(t, 25.0, car.Progress())
	assert.Equal(t, 36, car.RemainingMonths())
}

func TestEditFormSeeding(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"car","name":"Car Loan","emi":450.75,"remainingBalance":12000,"interestRate":6.5,"totalDurationMonths":48,"paidMonths":12}]`))
	})
	svc.Load(context.Background())

	loan := svc.Items()[0]
	form := svc.OpenForm(&loan)

	assert.Equal(t, "Car Loan", form.Fields["name"])
	assert.Equal(t, "450.75", form.Fields["emi"])
	assert.Equal(t, "12000", form.Fields["balance"])
	assert.Equal(t, "6.5", form.Fields["rate"])
	assert.Equal(t, "48", form.Fields["total_months"])
	assert.Equal(t, "12", form.Fields["paid_months"])
}

func TestCreateFormDefaults(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {})

	form := svc.OpenForm(nil)
	assert.Equal(t, "0", form.Fields["emi"])
	assert.Equal(t, "12", form.Fields["total_months"])
	assert.Equal(t, "0", form.Fields["paid_months"])
}

func TestSubmitCreatePayload(t *testing.T) {
	var payload map[string]any
	var path string
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			path = r.URL.Path
			json.NewDecoder(r.Body).Decode(&payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	form := svc.OpenForm(nil)
	form.Set("name", "Bike")
	form.Set("emi", "120.5")
	form.Set("balance", "2400")
	form.Set("rate", "8.9")
	form.Set("total_months", "24")
	form.Set("paid_months", "4")

	require.NoError(t, svc.Submit(context.Background(), form))

	assert.Equal(t, "/loan/add", path)
	assert.Equal(t, "Bike", payload["name"])
	assert.Equal(t, 120.5, payload["emi"])
	assert.Equal(t, float64(2400), payload["remainingBalance"])
	assert.Equal(t, 8.9, payload["interestRate"])
	assert.Equal(t, float64(24), payload["totalDurationMonths"])
	assert.Equal(t, float64(4), payload["paidMonths"])
}

func TestSubmitRejectsNegativeMonths(t *testing.T) {
	called := false
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	form := svc.OpenForm(nil)
	form.Set("name", "Bad")
	form.Set("paid_months", "-3")

	require.Error(t, svc.Submit(context.Background(), form))
	assert.False(t, called)
}
