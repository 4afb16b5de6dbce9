package resultstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fystack/cardano-query/pkg/common/enum"
	"github.com/fystack/cardano-query/pkg/infra"
	"github.com/fystack/cardano-query/pkg/kvstore"
)

// Record kinds
const (
	KindAccount          = "account"
	KindAccountAddresses = "account-addresses"
	KindAccountAssets    = "account-assets"
	KindAddress          = "address"
	KindAssets           = "assets"
	KindAsset            = "asset"
	KindTransaction      = "tx"
)

var ErrNotFound = errors.New("result not found")

// Entry is the latest record fetched for one query.
type Entry struct {
	Provider  string          `json:"provider"`
	Kind      string          `json:"kind"`
	ID        string          `json:"id"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Record    json.RawMessage `json:"record"`
}

// Key identifies a query: provider/kind/id
func Key(provider, kind, id string) string {
	return provider + "/" + kind + "/" + id
}

// Store keeps the latest result per query in memory. A newer result replaces the older one.
type Store struct {
	kv  *kvstore.BadgerStore
	now func() time.Time
}

func New() (*Store, error) {
	kv, err := kvstore.NewBadgerStore("results", infra.JSON)
	if err != nil {
		return nil, fmt.Errorf("open result store: %w", err)
	}
	return &Store{kv: kv, now: time.Now}, nil
}

func (s *Store) Put(provider, kind, id string, record any) error {
	if provider == "" || kind == "" || id == "" {
		return kvstore.ErrKeyEmpty
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", kind, err)
	}
	entry := Entry{
		Provider:  provider,
		Kind:      kind,
		ID:        id,
		FetchedAt: s.now().UTC(),
		Record:    raw,
	}
	return s.kv.SetAny(Key(provider, kind, id), entry)
}

func (s *Store) Get(provider, kind, id string) (*Entry, error) {
	var entry Entry
	found, err := s.kv.GetAny(Key(provider, kind, id), &entry)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", Key(provider, kind, id), ErrNotFound)
	}
	return &entry, nil
}

// Load decodes the stored record of a query into T.
func Load[T any](s *Store, provider, kind, id string) (T, error) {
	var out T
	entry, err := s.Get(provider, kind, id)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(entry.Record, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", Key(provider, kind, id), err)
	}
	return out, nil
}

// List returns the entries of one provider, or of every provider when provider is empty,
// sorted by key.
func (s *Store) List(provider string) ([]Entry, error) {
	providers := []string{provider}
	if provider == "" {
		providers = []string{string(enum.ProviderBlockfrost), string(enum.ProviderKoios)}
	}

	var entries []Entry
	for _, p := range providers {
		pairs, err := s.kv.List(p + "/")
		if err != nil {
			return nil, err
		}
		for _, pair := range pairs {
			var entry Entry
			if err := json.Unmarshal(pair.Value, &entry); err != nil {
				return nil, fmt.Errorf("decode %s: %w", pair.Key, err)
			}
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.Compare(
			Key(entries[i].Provider, entries[i].Kind, entries[i].ID),
			Key(entries[j].Provider, entries[j].Kind, entries[j].ID),
		) < 0
	})
	return entries, nil
}

func (s *Store) Close() error {
	return s.kv.Close()
}
