package banks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenmoney/zenmoney-cli/internal/clients/zenapi"
	"github.com/zenmoney/zenmoney-cli/internal/common"
	"github.com/zenmoney/zenmoney-cli/internal/models"
)

type noCreds struct{}

func (noCreds) Token() string { return "" }

func newService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := zenapi.NewClient(srv.URL, noCreds{})
	return NewService(client, common.NewSilentLogger()), srv
}

func TestEditFormSeedsFromRecord(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {})

	bank := models.Bank{
		ID:          3,
		Name:        "Chase Checking",
		Balance:     decimal.RequireFromString("1250.5"),
		AccountType: models.AccountChecking,
	}

	form := svc.OpenForm(&bank)

	assert.Equal(t, "Chase Checking", form.Fields["name"])
	assert.Equal(t, "1250.5", form.Fields["balance"])
	assert.Equal(t, "checking", form.Fields["account_type"])
}

func TestCreateFormDefaults(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {})

	form := svc.OpenForm(nil)

	assert.Equal(t, "", form.Fields["name"])
	assert.Equal(t, "0", form.Fields["balance"])
	assert.Equal(t, "checking", form.Fields["account_type"])
}

func TestSubmitCreatePayload(t *testing.T) {
	var payloads []map[string]any
	var paths []string
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var p map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			payloads = append(payloads, p)
			paths = append(paths, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	form := svc.OpenForm(nil)
	form.Set("name", "  Everyday  ")
	form.Set("balance", "-120.25")

	require.NoError(t, svc.Submit(context.Background(), form))

	require.Len(t, payloads, 1, "exactly one POST expected")
	assert.Equal(t, []string{"/banks/add"}, paths)
	assert.Equal(t, "Everyday", payloads[0]["name"])
	assert.Equal(t, -120.25, payloads[0]["balance"], "overdraft balances are legal")
	assert.Equal(t, "checking", payloads[0]["account_type"])
	assert.NotContains(t, payloads[0], "id")
	assert.True(t, form.Closed())
}

func TestSubmitEditIncludesID(t *testing.T) {
	var gotMethod, gotPath string
	var payload map[string]any
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			gotMethod, gotPath = r.Method, r.URL.Path
			json.NewDecoder(r.Body).Decode(&payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	bank := models.Bank{ID: 7, Name: "Chase Checking", Balance: decimal.NewFromInt(100), AccountType: models.AccountSavings}
	form := svc.OpenForm(&bank)
	form.Set("balance", "250")

	require.NoError(t, svc.Submit(context.Background(), form))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/banks/update", gotPath)
	assert.Equal(t, float64(7), payload["id"])
}

func TestSubmitRejectsBadFields(t *testing.T) {
	called := false
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	form := svc.OpenForm(nil)
	form.Set("name", "Acct")
	form.Set("balance", "not-a-number")

	err := svc.Submit(context.Background(), form)
	require.Error(t, err)
	assert.False(t, called, "invalid form must not reach the network")

	form2 := svc.OpenForm(nil)
	form2.Set("name", "Acct")
	form2.Set("account_type", "offshore")
	require.Error(t, svc.Submit(context.Background(), form2))
}

func TestTotalBalanceAggregate(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"banks":[{"id":1,"name":"A","account_type":"checking","balance":1000.5},{"id":2,"name":"B","account_type":"savings","balance":-200}]}`))
	})

	svc.Load(context.Background())

	require.Len(t, svc.Items(), 2)
	assert.True(t, svc.TotalBalance().Equal(decimal.RequireFromString("800.5")))
}
