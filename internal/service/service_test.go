package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/api"
	"github.com/mmynk/splitledger/internal/events"
	"github.com/mmynk/splitledger/internal/storage/memory"
)

// recorder keeps every published event.
type recorder struct {
	mu     sync.Mutex
	events []events.LedgerUpdated
	err    error
}

func (r *recorder) Publish(_ context.Context, e events.LedgerUpdated) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *recorder) Close() error { return nil }

func (r *recorder) actions() []events.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Action, len(r.events))
	for i, e := range r.events {
		out[i] = e.Action
	}
	return out
}

type testServer struct {
	url        string
	settlement *api.SettlementServiceClient
	ledgers    *api.LedgerServiceClient
	events     *recorder
}

// setupTestServer serves both services over httptest with an in-memory store.
func setupTestServer(t *testing.T) testServer {
	t.Helper()

	store := memory.New()
	rec := &recorder{}

	settlementPath, settlementHandler := api.NewSettlementServiceHandler(NewSettlementService())
	ledgerPath, ledgerHandler := api.NewLedgerServiceHandler(NewLedgerService(store, rec))

	mux := http.NewServeMux()
	mux.Handle(settlementPath, settlementHandler)
	mux.Handle(ledgerPath, ledgerHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return testServer{
		url:        server.URL,
		settlement: api.NewSettlementServiceClient(http.DefaultClient, server.URL),
		ledgers:    api.NewLedgerServiceClient(http.DefaultClient, server.URL),
		events:     rec,
	}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, amount(want).Equal(got), "want %s, got %s", want, got)
}

func assertCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}

func createLedger(t *testing.T, ts testServer, people ...string) string {
	t.Helper()
	resp, err := ts.ledgers.CreateLedger(context.Background(), connect.NewRequest(&api.CreateLedgerRequest{
		Name:   "Trip",
		People: people,
	}))
	require.NoError(t, err)
	return resp.Msg.Ledger.ID
}
