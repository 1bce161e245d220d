package tezos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/tzmcp/internal/config"
	"github.com/jpl-au/tzmcp/internal/validate"
)

const (
	tz1 = "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"
	kt1 = "KT1PWx2mnDueood7fEmfbBDKx1D9BAnnXitn"
)

func mustAddress(t *testing.T, raw string) validate.Identifier {
	t.Helper()
	id, err := validate.Address(raw)
	require.NoError(t, err)
	return id
}

// fakeBackend serves fixed bodies by request path and records request URIs.
func fakeBackend(t *testing.T, routes map[string]string) (*httptest.Server, func() []string) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.URL.RequestURI())
		mu.Unlock()
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return slices.Clone(seen)
	}
}

func newTestClient(srv *httptest.Server) *Client {
	return New(validate.Ghostnet, Endpoints{Node: srv.URL, Indexer: srv.URL}, 5*time.Second)
}

func TestBalance(t *testing.T) {
	srv, _ := fakeBackend(t, map[string]string{
		"/chains/main/blocks/head/context/contracts/" + tz1 + "/balance": `"1234567890"`,
	})
	got, err := newTestClient(srv).Balance(context.Background(), mustAddress(t, tz1))
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), got)
}

func TestBalance_BadFormat(t *testing.T) {
	srv, _ := fakeBackend(t, map[string]string{
		"/chains/main/blocks/head/context/contracts/" + tz1 + "/balance": `"12.5"`,
	})
	_, err := newTestClient(srv).Balance(context.Background(), mustAddress(t, tz1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid balance format")
}

func TestContractStorage(t *testing.T) {
	srv, _ := fakeBackend(t, map[string]string{
		"/chains/main/blocks/head/context/contracts/" + kt1 + "/storage": `{"prim":"Pair","args":[{"int":"1"},{"string":"x"}]}`,
	})
	got, err := newTestClient(srv).ContractStorage(context.Background(), mustAddress(t, kt1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"prim":"Pair","args":[{"int":"1"},{"string":"x"}]}`, string(got))
}

func TestBlockHeader(t *testing.T) {
	header := `{"protocol":"PtParis","chain_id":"NetXnHfVqm9iesp","hash":"BLockHash","level":42,"timestamp":"2026-01-02T03:04:05Z","payload_producer":"tz1Baker"}`
	srv, seen := fakeBackend(t, map[string]string{
		"/chains/main/blocks/head/header": header,
		"/chains/main/blocks/42/header":   header,
	})
	c := newTestClient(srv)

	h, err := c.BlockHeader(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), h.Level)
	assert.Equal(t, "PtParis", h.Protocol)
	assert.Equal(t, "tz1Baker", h.Producer())

	level := int64(42)
	_, err = c.BlockHeader(context.Background(), &level)
	require.NoError(t, err)
	assert.Equal(t, []string{"/chains/main/blocks/head/header", "/chains/main/blocks/42/header"}, seen())
}

func TestConstants(t *testing.T) {
	srv, _ := fakeBackend(t, map[string]string{
		"/chains/main/blocks/head/context/constants": `{"minimal_block_delay":"8","consensus_threshold_size":4667,"cost_per_byte":"250"}`,
	})
	consts, err := newTestClient(srv).Constants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "8", consts.Get("minimal_block_delay"))
	assert.Equal(t, "4667", consts.Get("consensus_threshold_size"))
	assert.Equal(t, "N/A", consts.Get("hard_gas_limit_per_operation"))
}

func TestOperations(t *testing.T) {
	srv, seen := fakeBackend(t, map[string]string{
		"/v1/accounts/" + tz1 + "/operations": `[
			{"type":"transaction","id":2,"level":10,"hash":"ooA","sender":{"address":"` + tz1 + `"},"target":{"address":"` + kt1 + `"},"amount":1500000,"status":"applied","timestamp":"2026-01-01T00:00:00Z"},
			{"type":"transaction","id":1,"level":9,"hash":"ooB","amount":0,"status":"failed"},
			{"type":"transaction","id":0,"level":8,"hash":"ooC","amount":0,"status":"applied"}
		]`,
	})
	ops, err := newTestClient(srv).Operations(context.Background(), mustAddress(t, tz1), 2)
	require.NoError(t, err)
	require.Len(t, ops, 2, "results beyond limit are dropped")
	assert.Equal(t, "ooA", ops[0].Hash)
	assert.Equal(t, tz1, ops[0].From())
	assert.Equal(t, kt1, ops[0].To())
	assert.Equal(t, "N/A", ops[1].From())
	assert.Equal(t, int64(1500000), ops[0].Amount)

	uris := seen()
	require.Len(t, uris, 1)
	assert.Contains(t, uris[0], "type=transaction")
	assert.Contains(t, uris[0], "limit=2")
}

func TestOperation(t *testing.T) {
	hash := "o" + strings.Repeat("o", 25) + strings.Repeat("9", 25)
	srv, _ := fakeBackend(t, map[string]string{
		"/v1/operations/" + hash: `[{"type":"transaction","hash":"` + hash + `","status":"applied","amount":1}]`,
	})
	ops, err := newTestClient(srv).Operation(context.Background(), hash)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, hash, ops[0].Hash)
}

func TestHTTPError(t *testing.T) {
	srv, _ := fakeBackend(t, nil)
	_, err := newTestClient(srv).Balance(context.Background(), mustAddress(t, tz1))
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, httpErr.NotFound())
	assert.Contains(t, err.Error(), "status 404")
}

func withUserinfo(base string) string {
	return strings.Replace(base, "://", "://admin:hunter2@", 1)
}

func TestHTTPError_HidesUserinfo(t *testing.T) {
	srv, _ := fakeBackend(t, nil)
	c := New(validate.Ghostnet, Endpoints{Node: withUserinfo(srv.URL), Indexer: srv.URL}, 5*time.Second)
	_, err := c.Balance(context.Background(), mustAddress(t, tz1))
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.True(t, strings.HasPrefix(httpErr.URL, srv.URL+"/chains/"), httpErr.URL)
	assert.NotContains(t, err.Error(), "hunter2")
	assert.NotContains(t, err.Error(), "admin")
}

func TestTransportError_HidesUserinfo(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := withUserinfo(srv.URL)
	srv.Close()

	c := New(validate.Ghostnet, Endpoints{Node: base, Indexer: base}, 5*time.Second)
	_, err := c.Balance(context.Background(), mustAddress(t, tz1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http request failed")
	assert.NotContains(t, err.Error(), "hunter2")
	assert.NotContains(t, err.Error(), "admin")
}

func TestResponseTooLarge(t *testing.T) {
	big := `"` + strings.Repeat("1", MaxResponseBytes) + `"`
	srv, _ := fakeBackend(t, map[string]string{
		"/chains/main/blocks/head/context/contracts/" + tz1 + "/balance": big,
	})
	_, err := newTestClient(srv).Balance(context.Background(), mustAddress(t, tz1))
	assert.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestMalformedJSON(t *testing.T) {
	srv, _ := fakeBackend(t, map[string]string{
		"/chains/main/blocks/head/header": `{"level":`,
	})
	_, err := newTestClient(srv).BlockHeader(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestContextCancelled(t *testing.T) {
	srv, _ := fakeBackend(t, map[string]string{
		"/chains/main/blocks/head/header": `{}`,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestClient(srv).BlockHeader(ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistry(t *testing.T) {
	t.Setenv("TEZOS_SHADOWNET_NODE", "http://localhost:8732")
	reg, err := NewRegistry(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, validate.Networks(), reg.Networks())

	c, err := reg.Client(validate.Shadownet)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8732", c.Endpoints().Node)
	assert.Equal(t, "https://api.shadownet.tzkt.io", c.Endpoints().Indexer)

	c, err = reg.Client(validate.Mainnet)
	require.NoError(t, err)
	assert.Equal(t, "https://mainnet.api.tez.ie", c.Endpoints().Node)
}

func TestRegistry_FromClients(t *testing.T) {
	c := New(validate.Ghostnet, Endpoints{Node: "http://n", Indexer: "http://i"}, 0)
	reg := NewRegistryFromClients(c)

	got, err := reg.Client(validate.Ghostnet)
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, err = reg.Client(validate.Mainnet)
	assert.Error(t, err)

	var nilReg *Registry
	_, err = nilReg.Client(validate.Mainnet)
	assert.Error(t, err)
}

func TestFormatTez(t *testing.T) {
	tests := []struct {
		mutez int64
		want  string
	}{
		{0, "0.000000 XTZ"},
		{1, "0.000001 XTZ"},
		{1_000_000, "1.000000 XTZ"},
		{1_234_567_890, "1,234.567890 XTZ"},
		{1_000_000_000_000, "1,000,000.000000 XTZ"},
		{-2_500_000, "-2.500000 XTZ"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTez(tt.mutez))
		})
	}
}
