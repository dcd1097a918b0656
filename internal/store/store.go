// Package store defines the datastore abstraction for medwatch.
// All business logic depends on the Store and FingerprintStore interfaces,
// never on concrete implementations. This enables mock-based testing without
// a running database.
package store

import (
	"context"
	"time"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// Store defines the search configuration operations for medwatch.
type Store interface {
	// Watches
	CreateWatch(ctx context.Context, w *domain.Watch) error
	GetWatch(ctx context.Context, id string) (*domain.Watch, error)
	ListWatches(ctx context.Context, q *WatchQuery) ([]domain.Watch, int, error)
	UpdateWatch(ctx context.Context, w *domain.Watch) error
	DeleteWatch(ctx context.Context, id string) error

	// Medicine searches
	CreateMedicineSearch(ctx context.Context, m *domain.MedicineSearch) error
	GetMedicineSearch(ctx context.Context, id string) (*domain.MedicineSearch, error)
	ListMedicineSearches(ctx context.Context, q *MedicineQuery) ([]domain.MedicineSearch, int, error)
	UpdateMedicineSearch(ctx context.Context, m *domain.MedicineSearch) error
	DeleteMedicineSearch(ctx context.Context, id string) error

	// Searches of either kind
	GetSearch(ctx context.Context, id string) (domain.Search, error)
	ListActiveSearches(ctx context.Context) ([]domain.Search, error)
	SetSearchActive(ctx context.Context, id string, active bool) error
	MarkSearched(ctx context.Context, id string, t time.Time) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

// FingerprintStore persists the fingerprints already reported per search.
// Commits are idempotent: committing a fingerprint twice keeps one entry.
type FingerprintStore interface {
	LoadFingerprints(ctx context.Context, searchID string) ([]domain.Fingerprint, error)
	CommitFingerprints(ctx context.Context, searchID string, fps []domain.Fingerprint) error
	ClearFingerprints(ctx context.Context, searchID string) error
}
