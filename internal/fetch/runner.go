package fetch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fystack/cardano-query/internal/resultstore"
	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/internal/rpc/blockfrost"
	"github.com/fystack/cardano-query/internal/rpc/koios"
	"github.com/fystack/cardano-query/pkg/cardano"
	"github.com/fystack/cardano-query/pkg/common/logger"
	"github.com/fystack/cardano-query/pkg/events"
)

// Queries holds the identifiers looked up by a snapshot.
type Queries struct {
	StakeAddress string
	Address      string
	AssetID      string
	PolicyID     string
	AssetName    string
	TxHash       string
	Page         blockfrost.Page
}

// Result is the outcome of one lookup: Record is set on success, Err otherwise.
type Result struct {
	Provider string
	Kind     string
	ID       string
	Record   any
	Err      error
	Elapsed  time.Duration
}

type Snapshot struct {
	Results []Result
}

// Failed returns the lookups that ended in an error.
func (s *Snapshot) Failed() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the result of a provider/kind lookup.
func (s *Snapshot) Find(provider, kind string) (Result, bool) {
	for _, r := range s.Results {
		if r.Provider == provider && r.Kind == kind {
			return r, true
		}
	}
	return Result{}, false
}

type Option func(*Runner)

// WithStore hands every successful record to the result store.
func WithStore(store *resultstore.Store) Option {
	return func(r *Runner) { r.store = store }
}

// WithEmitter publishes every record and failure.
func WithEmitter(emitter events.Emitter) Option {
	return func(r *Runner) { r.emitter = emitter }
}

// Runner fans out independent lookups on both providers.
type Runner struct {
	blockfrost blockfrost.BlockfrostAPI
	koios      koios.KoiosAPI
	store      *resultstore.Store
	emitter    events.Emitter
}

func NewRunner(bf blockfrost.BlockfrostAPI, ko koios.KoiosAPI, opts ...Option) *Runner {
	r := &Runner{blockfrost: bf, koios: ko}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type lookup struct {
	provider string
	kind     string
	id       string
	run      func(ctx context.Context) (any, error)
}

func typed[T any](fn func(ctx context.Context) (T, error)) func(ctx context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (r *Runner) lookups(q Queries) []lookup {
	pageID := q.Page.String()
	koiosAsset := cardano.AssetID(q.PolicyID, q.AssetName)

	var out []lookup
	if r.blockfrost != nil {
		bf := string(r.blockfrost.GetProvider())
		out = append(out,
			lookup{bf, resultstore.KindAccount, q.StakeAddress, typed(func(ctx context.Context) (*cardano.StakeAccount, error) {
				return r.blockfrost.GetAccount(ctx, q.StakeAddress)
			})},
			lookup{bf, resultstore.KindAccountAddresses, blockfrost.PageKey(q.StakeAddress, q.Page), typed(func(ctx context.Context) ([]cardano.Address, error) {
				return r.blockfrost.GetAccountAddresses(ctx, q.StakeAddress, q.Page)
			})},
			lookup{bf, resultstore.KindAccountAssets, blockfrost.PageKey(q.StakeAddress, q.Page), typed(func(ctx context.Context) ([]cardano.Amount, error) {
				return r.blockfrost.GetAccountAssets(ctx, q.StakeAddress, q.Page)
			})},
			lookup{bf, resultstore.KindAddress, q.Address, typed(func(ctx context.Context) (*cardano.Address, error) {
				return r.blockfrost.GetAddress(ctx, q.Address)
			})},
			lookup{bf, resultstore.KindAssets, pageID, typed(func(ctx context.Context) ([]cardano.AssetSummary, error) {
				return r.blockfrost.ListAssets(ctx, q.Page)
			})},
			lookup{bf, resultstore.KindAsset, q.AssetID, typed(func(ctx context.Context) (*cardano.AssetDetail, error) {
				return r.blockfrost.GetAsset(ctx, q.AssetID)
			})},
			lookup{bf, resultstore.KindTransaction, q.TxHash, typed(func(ctx context.Context) (*cardano.Transaction, error) {
				return r.blockfrost.GetTransaction(ctx, q.TxHash)
			})},
		)
	}
	if r.koios != nil {
		ko := string(r.koios.GetProvider())
		out = append(out,
			lookup{ko, resultstore.KindAccount, q.StakeAddress, typed(func(ctx context.Context) (*cardano.StakeAccount, error) {
				return r.koios.GetAccount(ctx, q.StakeAddress)
			})},
			lookup{ko, resultstore.KindAddress, q.Address, typed(func(ctx context.Context) (*cardano.Address, error) {
				return r.koios.GetAddress(ctx, q.Address)
			})},
			lookup{ko, resultstore.KindAsset, koiosAsset, typed(func(ctx context.Context) (*cardano.AssetDetail, error) {
				return r.koios.GetAssetInfo(ctx, q.PolicyID, q.AssetName)
			})},
			lookup{ko, resultstore.KindTransaction, q.TxHash, typed(func(ctx context.Context) (*cardano.Transaction, error) {
				return r.koios.GetTransaction(ctx, q.TxHash)
			})},
		)
	}
	return out
}

// Snapshot starts every lookup at once and waits for all of them.
// Results keep the lookup order regardless of completion order.
func (r *Runner) Snapshot(ctx context.Context, q Queries) *Snapshot {
	lookups := r.lookups(q)
	snap := &Snapshot{Results: make([]Result, len(lookups))}

	var wg sync.WaitGroup
	wg.Add(len(lookups))
	for i, l := range lookups {
		Go(ctx, func(ctx context.Context) (Result, error) {
			return r.execute(ctx, l), nil
		}).OnComplete(func(res Result, _ error) {
			snap.Results[i] = res
			wg.Done()
		})
	}
	wg.Wait()
	return snap
}

func (r *Runner) execute(ctx context.Context, l lookup) Result {
	start := time.Now()
	record, err := l.run(ctx)
	res := Result{
		Provider: l.provider,
		Kind:     l.kind,
		ID:       l.id,
		Record:   record,
		Err:      err,
		Elapsed:  time.Since(start),
	}

	if err != nil {
		if errors.Is(err, rpc.ErrConfiguration) {
			logger.Warn("Lookup skipped", "provider", l.provider, "kind", l.kind, "error", err)
		} else {
			logger.Error("Lookup failed", "provider", l.provider, "kind", l.kind, "id", l.id, "error", err)
		}
		if r.emitter != nil {
			if emitErr := r.emitter.EmitError(l.provider, l.kind, l.id, err); emitErr != nil {
				logger.Warn("Failed to emit lookup error", "kind", l.kind, "error", emitErr)
			}
		}
		return res
	}

	if r.store != nil {
		if storeErr := r.store.Put(l.provider, l.kind, l.id, record); storeErr != nil {
			logger.Warn("Failed to store result", "kind", l.kind, "error", storeErr)
		}
	}
	if r.emitter != nil {
		if emitErr := r.emitter.EmitRecord(l.provider, l.kind, l.id, record); emitErr != nil {
			logger.Warn("Failed to emit record", "kind", l.kind, "error", emitErr)
		}
	}
	logger.Debug("Lookup completed", "provider", l.provider, "kind", l.kind, "id", l.id, "elapsed", res.Elapsed)
	return res
}
