// Package tezos is a read-only client for a Tezos node's RPC interface and a
// TzKT indexer.
//
// Every method takes values that have already passed internal/validate, so
// URL segments built from them need no further checking. Responses are
// read through a size cap and decoded into the types in types.go; anything
// the caller did not ask for is discarded.
package tezos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jpl-au/tzmcp/internal/validate"
	"github.com/jpl-au/tzmcp/internal/version"
)

// MaxResponseBytes bounds how much of a backend response is read.
const MaxResponseBytes = 1 << 20

// ErrResponseTooLarge is returned when a response exceeds MaxResponseBytes.
var ErrResponseTooLarge = errors.New("response too large")

// HTTPError is returned when a backend answers with a non-200 status.
type HTTPError struct {
	Status int
	URL    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http request failed: %s returned status %d", e.URL, e.Status)
}

// NotFound reports whether the backend had no such resource.
func (e *HTTPError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// Endpoints are the base URLs a client talks to.
type Endpoints struct {
	Node    string
	Indexer string
}

// Client queries one network's node and indexer.
type Client struct {
	network   validate.Net
	endpoints Endpoints
	http      *http.Client
}

// New creates a client. A zero timeout means no client-side timeout.
func New(network validate.Net, endpoints Endpoints, timeout time.Duration) *Client {
	return &Client{
		network:   network,
		endpoints: endpoints,
		http:      &http.Client{Timeout: timeout},
	}
}

// Network returns the network this client queries.
func (c *Client) Network() validate.Net {
	return c.network
}

// Endpoints returns the configured base URLs.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// Balance returns the spendable balance of an address in mutez.
func (c *Client) Balance(ctx context.Context, id validate.Identifier) (int64, error) {
	var raw string
	if err := c.get(ctx, c.endpoints.Node, nil, &raw,
		"chains", "main", "blocks", "head", "context", "contracts", id.Raw, "balance"); err != nil {
		return 0, err
	}
	mutez, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid balance format: %q", raw)
	}
	return mutez, nil
}

// ContractStorage returns a contract's current storage as Micheline JSON.
func (c *Client) ContractStorage(ctx context.Context, id validate.Identifier) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, c.endpoints.Node, nil, &raw,
		"chains", "main", "blocks", "head", "context", "contracts", id.Raw, "storage"); err != nil {
		return nil, err
	}
	return raw, nil
}

// BlockHeader returns the header of the block at level, or of the head
// block when level is nil.
func (c *Client) BlockHeader(ctx context.Context, level *int64) (*BlockHeader, error) {
	block := "head"
	if level != nil {
		block = strconv.FormatInt(*level, 10)
	}
	var h BlockHeader
	if err := c.get(ctx, c.endpoints.Node, nil, &h, "chains", "main", "blocks", block, "header"); err != nil {
		return nil, err
	}
	return &h, nil
}

// Constants returns the protocol constants at the head block.
func (c *Client) Constants(ctx context.Context) (Constants, error) {
	var consts Constants
	if err := c.get(ctx, c.endpoints.Node, nil, &consts,
		"chains", "main", "blocks", "head", "context", "constants"); err != nil {
		return nil, err
	}
	return consts, nil
}

// Operations returns the most recent transactions involving an address,
// newest first, from the indexer.
func (c *Client) Operations(ctx context.Context, id validate.Identifier, limit int64) ([]Operation, error) {
	q := url.Values{}
	q.Set("type", "transaction")
	q.Set("limit", strconv.FormatInt(limit, 10))
	q.Set("sort.desc", "id")

	var ops []Operation
	if err := c.get(ctx, c.endpoints.Indexer, q, &ops, "v1", "accounts", id.Raw, "operations"); err != nil {
		return nil, err
	}
	// The indexer honours limit, but a misbehaving one must not widen it.
	if int64(len(ops)) > limit {
		ops = ops[:limit]
	}
	return ops, nil
}

// Operation returns every operation in the group with the given hash.
func (c *Client) Operation(ctx context.Context, hash string) ([]Operation, error) {
	var ops []Operation
	if err := c.get(ctx, c.endpoints.Indexer, nil, &ops, "v1", "operations", hash); err != nil {
		return nil, err
	}
	return ops, nil
}

// get issues a GET for base/segments?query and decodes the JSON body into out.
// Errors name the request URL without its userinfo.
func (c *Client) get(ctx context.Context, base string, query url.Values, out any, segments ...string) error {
	endpoint, err := url.Parse(base)
	if err != nil {
		return errors.New("building request url: invalid base url")
	}
	endpoint = endpoint.JoinPath(segments...)
	endpoint.RawQuery = query.Encode()
	shown := withoutUserinfo(endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", hideURL(err, shown))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tzmcp/"+version.Short())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", hideURL(err, shown))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseBytes))
		return &HTTPError{Status: resp.StatusCode, URL: shown}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if len(body) > MaxResponseBytes {
		return fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, MaxResponseBytes)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// withoutUserinfo renders u with any user and password removed.
func withoutUserinfo(u *url.URL) string {
	clean := *u
	clean.User = nil
	return clean.String()
}

// hideURL replaces the URL carried by a *url.Error in err with shown.
func hideURL(err error, shown string) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = shown
	}
	return err
}
