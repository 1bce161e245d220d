// Package chain implements the caller-facing Tezos operations shared by the
// MCP tools and the CLI.
//
// Every operation takes raw, untrusted arguments exactly as the caller sent
// them. All arguments are validated before any network I/O happens, and a
// failure at any stage comes back as an error for Reply to render.
package chain

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jpl-au/tzmcp/internal/sanitize"
	"github.com/jpl-au/tzmcp/internal/tezos"
	"github.com/jpl-au/tzmcp/internal/validate"
)

// Reply prefixes. Callers use them to tell bad input from backend trouble.
const (
	ValidationPrefix = "validation error: "
	ErrorPrefix      = "error: "
)

// DefaultLimit is the number of operations listed when the caller gives no
// limit.
const DefaultLimit int64 = 10

// Limits are the policy bounds applied to caller-supplied numbers.
type Limits struct {
	MaxLimit  int64
	MaxAmount int64
}

// DefaultLimits returns the built-in policy bounds.
func DefaultLimits() Limits {
	return Limits{MaxLimit: validate.DefaultMaxLimit, MaxAmount: validate.DefaultMaxAmount}
}

// Service runs chain operations against a client registry.
type Service struct {
	registry *tezos.Registry
	limits   Limits
	logger   *slog.Logger
}

// New creates a Service. A nil logger discards process logs. The logger's
// handler is wrapped so failure text is scrubbed before it is written.
func New(registry *tezos.Registry, limits Limits, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = slog.New(sanitize.NewHandler(logger.Handler()))
	return &Service{registry: registry, limits: limits, logger: logger}
}

// Limits returns the policy bounds in force.
func (s *Service) Limits() Limits {
	return s.limits
}

// Reply renders err as caller-facing text. Validation failures carry their
// reason verbatim; anything else is sanitised.
func Reply(err error) string {
	if err == nil {
		return ""
	}
	var verr *validate.Error
	if errors.As(err, &verr) {
		return ValidationPrefix + verr.Reason
	}
	return ErrorPrefix + sanitize.Err(err)
}

// Fail logs err through the process logger and returns its Reply text.
// Backend failures are logged at error level with the full (log-scrubbed)
// text; validation failures at info level.
func (s *Service) Fail(op string, err error) string {
	if validate.IsValidation(err) {
		s.logger.Info("rejected input", "op", op, "error", err)
	} else {
		s.logger.Error("operation failed", "op", op, "error", err)
	}
	return Reply(err)
}

// client validates the network and returns its client.
func (s *Service) client(network string) (*tezos.Client, validate.Net, error) {
	n, err := validate.Network(network)
	if err != nil {
		return nil, "", err
	}
	c, err := s.registry.Client(n)
	if err != nil {
		return nil, "", err
	}
	return c, n, nil
}

// Balance returns the balance of an address.
func (s *Service) Balance(ctx context.Context, address, network string) (string, error) {
	id, err := validate.Address(address)
	if err != nil {
		return "", err
	}
	c, n, err := s.client(network)
	if err != nil {
		return "", err
	}
	mutez, err := c.Balance(ctx, id)
	if err != nil {
		return "", err
	}
	return formatBalance(id, n, mutez), nil
}

// ContractStorage returns the current storage of a KT1 contract.
func (s *Service) ContractStorage(ctx context.Context, address, network string) (string, error) {
	id, err := validate.ContractAddress(address)
	if err != nil {
		return "", err
	}
	c, n, err := s.client(network)
	if err != nil {
		return "", err
	}
	raw, err := c.ContractStorage(ctx, id)
	if err != nil {
		return "", err
	}
	return formatStorage(id, n, raw), nil
}

// Operations lists recent transactions for an address. A nil limit means
// DefaultLimit.
func (s *Service) Operations(ctx context.Context, address string, limit any, network string) (string, error) {
	id, err := validate.Address(address)
	if err != nil {
		return "", err
	}
	if limit == nil {
		limit = min(DefaultLimit, s.limits.MaxLimit)
	}
	n64, err := validate.Limit(limit, s.limits.MaxLimit)
	if err != nil {
		return "", err
	}
	c, n, err := s.client(network)
	if err != nil {
		return "", err
	}
	ops, err := c.Operations(ctx, id, n64)
	if err != nil {
		return "", err
	}
	return formatOperations(id, n, ops), nil
}

// Operation looks up an operation group by hash.
func (s *Service) Operation(ctx context.Context, hash, network string) (string, error) {
	h, err := validate.OperationHash(hash)
	if err != nil {
		return "", err
	}
	c, n, err := s.client(network)
	if err != nil {
		return "", err
	}
	ops, err := c.Operation(ctx, h)
	if err != nil {
		return "", err
	}
	return formatOperation(h, n, ops), nil
}

// BlockInfo describes the block at level, or the head block when level is
// nil.
func (s *Service) BlockInfo(ctx context.Context, level any, network string) (string, error) {
	var lvl *int64
	if level != nil {
		v, err := validate.Level(level)
		if err != nil {
			return "", err
		}
		lvl = &v
	}
	c, n, err := s.client(network)
	if err != nil {
		return "", err
	}
	h, err := c.BlockHeader(ctx, lvl)
	if err != nil {
		return "", err
	}
	return formatBlock(n, h), nil
}

// NetworkInfo describes the current protocol and its main constants.
func (s *Service) NetworkInfo(ctx context.Context, network string) (string, error) {
	c, n, err := s.client(network)
	if err != nil {
		return "", err
	}
	h, err := c.BlockHeader(ctx, nil)
	if err != nil {
		return "", err
	}
	consts, err := c.Constants(ctx)
	if err != nil {
		return "", err
	}
	return formatNetwork(n, h, consts), nil
}

// CheckAddress validates an address without any network access.
func (s *Service) CheckAddress(address string) (string, error) {
	id, err := validate.Address(address)
	if err != nil {
		return "", err
	}
	return formatCheckedAddress(id), nil
}

// FormatAmount validates a mutez amount against the amount policy and
// renders it in tez.
func (s *Service) FormatAmount(amount any) (string, error) {
	mutez, err := validate.Amount(amount, s.limits.MaxAmount)
	if err != nil {
		return "", err
	}
	return formatAmount(mutez), nil
}
