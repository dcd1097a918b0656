package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store and FingerprintStore using pgxpool
// (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

var (
	_ Store            = (*PostgresStore)(nil)
	_ FingerprintStore = (*PostgresStore)(nil)
)

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if !strings.Contains(connString, "pool_max_conns") {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateWatch inserts a new watch, assigning an id when none is set.
func (s *PostgresStore) CreateWatch(ctx context.Context, w *domain.Watch) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return s.pool.QueryRow(ctx, queryCreateWatch, watchArgs(w)).Scan(
		&w.CreatedAt, &w.UpdatedAt,
	)
}

// GetWatch retrieves a watch by its ID.
func (s *PostgresStore) GetWatch(ctx context.Context, id string) (*domain.Watch, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	w := &domain.Watch{}
	if err := scanWatch(s.pool.QueryRow(ctx, queryGetWatch, id), w); err != nil {
		return nil, notFound(err, id)
	}
	return w, nil
}

// ListWatches queries watches with optional filters, returning results and
// the total count.
func (s *PostgresStore) ListWatches(ctx context.Context, q *WatchQuery) ([]domain.Watch, int, error) {
	if q == nil {
		q = &WatchQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting watches: %w", err)
	}

	watches, err := s.queryWatches(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return watches, total, nil
}

// UpdateWatch replaces the stored configuration of a watch.
func (s *PostgresStore) UpdateWatch(ctx context.Context, w *domain.Watch) error {
	err := s.pool.QueryRow(ctx, queryUpdateWatch, watchArgs(w)).Scan(&w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating watch: %w", notFound(err, w.ID))
	}
	return nil
}

// DeleteWatch removes a watch and its fingerprints.
func (s *PostgresStore) DeleteWatch(ctx context.Context, id string) error {
	return s.deleteSearch(ctx, queryDeleteWatch, id)
}

// CreateMedicineSearch inserts a new medicine search, assigning an id when
// none is set.
func (s *PostgresStore) CreateMedicineSearch(ctx context.Context, m *domain.MedicineSearch) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return s.pool.QueryRow(ctx, queryCreateMedicine, medicineArgs(m)).Scan(
		&m.CreatedAt, &m.UpdatedAt,
	)
}

// GetMedicineSearch retrieves a medicine search by its ID.
func (s *PostgresStore) GetMedicineSearch(ctx context.Context, id string) (*domain.MedicineSearch, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m := &domain.MedicineSearch{}
	if err := scanMedicine(s.pool.QueryRow(ctx, queryGetMedicine, id), m); err != nil {
		return nil, notFound(err, id)
	}
	return m, nil
}

// ListMedicineSearches queries medicine searches with optional filters,
// returning results and the total count.
func (s *PostgresStore) ListMedicineSearches(
	ctx context.Context,
	q *MedicineQuery,
) ([]domain.MedicineSearch, int, error) {
	if q == nil {
		q = &MedicineQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting medicine searches: %w", err)
	}

	searches, err := s.queryMedicine(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return searches, total, nil
}

// UpdateMedicineSearch replaces the stored configuration of a medicine search.
func (s *PostgresStore) UpdateMedicineSearch(ctx context.Context, m *domain.MedicineSearch) error {
	err := s.pool.QueryRow(ctx, queryUpdateMedicine, medicineArgs(m)).Scan(&m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating medicine search: %w", notFound(err, m.ID))
	}
	return nil
}

// DeleteMedicineSearch removes a medicine search and its fingerprints.
func (s *PostgresStore) DeleteMedicineSearch(ctx context.Context, id string) error {
	return s.deleteSearch(ctx, queryDeleteMedicine, id)
}

// GetSearch retrieves a search of either kind by its ID.
func (s *PostgresStore) GetSearch(ctx context.Context, id string) (domain.Search, error) {
	w, err := s.GetWatch(ctx, id)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, domain.ErrSearchNotFound) {
		return nil, err
	}
	return s.GetMedicineSearch(ctx, id)
}

// ListActiveSearches returns every active watch followed by every active
// medicine search, each in creation order.
func (s *PostgresStore) ListActiveSearches(ctx context.Context) ([]domain.Search, error) {
	watches, err := s.queryWatches(ctx, queryListActiveWatches)
	if err != nil {
		return nil, err
	}
	medicine, err := s.queryMedicine(ctx, queryListActiveMedicine)
	if err != nil {
		return nil, err
	}

	searches := make([]domain.Search, 0, len(watches)+len(medicine))
	for i := range watches {
		searches = append(searches, &watches[i])
	}
	for i := range medicine {
		searches = append(searches, &medicine[i])
	}
	return searches, nil
}

// SetSearchActive activates or deactivates a search of either kind.
func (s *PostgresStore) SetSearchActive(ctx context.Context, id string, active bool) error {
	if err := s.execEither(ctx, querySetWatchActive, querySetMedicineActive, id, active); err != nil {
		return fmt.Errorf("setting search active: %w", err)
	}
	return nil
}

// MarkSearched records the time a search was last evaluated.
func (s *PostgresStore) MarkSearched(ctx context.Context, id string, t time.Time) error {
	if err := s.execEither(ctx, queryMarkWatchSearched, queryMarkMedicineSearched, id, t); err != nil {
		return fmt.Errorf("marking search evaluated: %w", err)
	}
	return nil
}

// LoadFingerprints returns the fingerprints committed for a search.
func (s *PostgresStore) LoadFingerprints(ctx context.Context, searchID string) ([]domain.Fingerprint, error) {
	rows, err := s.pool.Query(ctx, queryLoadFingerprints, searchID)
	if err != nil {
		return nil, fmt.Errorf("querying fingerprints: %w", err)
	}
	defer rows.Close()

	var fps []domain.Fingerprint
	for rows.Next() {
		var fp domain.Fingerprint
		var dt *time.Time
		if err := rows.Scan(
			&fp.Kind, &fp.Key, &fp.AddressKey, &fp.PostalCode, &fp.Phone,
			&fp.ClinicID, &fp.DoctorID, &dt, &fp.Examination,
		); err != nil {
			return nil, fmt.Errorf("scanning fingerprint: %w", err)
		}
		if dt != nil {
			fp.DateTime = dt.UTC()
		}
		fps = append(fps, fp)
	}
	return fps, rows.Err()
}

// CommitFingerprints stores fingerprints for a search in one batch. Keys
// already present are left untouched.
func (s *PostgresStore) CommitFingerprints(ctx context.Context, searchID string, fps []domain.Fingerprint) error {
	if len(fps) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range fps {
		fp := &fps[i]
		batch.Queue(queryInsertFingerprint, pgx.NamedArgs{
			"search_id":   searchID,
			"key":         fp.Key,
			"kind":        string(fp.Kind),
			"address_key": fp.AddressKey,
			"postal_code": fp.PostalCode,
			"phone":       fp.Phone,
			"clinic_id":   fp.ClinicID,
			"doctor_id":   fp.DoctorID,
			"date_time":   nullTime(fp.DateTime),
			"examination": fp.Examination,
		})
	}

	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("committing fingerprints: %w", err)
	}
	return nil
}

// ClearFingerprints forgets every fingerprint of a search.
func (s *PostgresStore) ClearFingerprints(ctx context.Context, searchID string) error {
	if _, err := s.pool.Exec(ctx, queryClearFingerprints, searchID); err != nil {
		return fmt.Errorf("clearing fingerprints: %w", err)
	}
	return nil
}

func (s *PostgresStore) deleteSearch(ctx context.Context, query, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("search %s: %w", id, domain.ErrSearchNotFound)
		}
		_, err = tx.Exec(ctx, queryClearFingerprints, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("deleting search: %w", err)
	}
	return nil
}

// execEither runs the watch statement and falls back to the medicine
// statement when no watch has the id.
func (s *PostgresStore) execEither(ctx context.Context, watchSQL, medicineSQL, id string, arg any) error {
	if err := checkID(id); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, watchSQL, id, arg)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	tag, err = s.pool.Exec(ctx, medicineSQL, id, arg)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("search %s: %w", id, domain.ErrSearchNotFound)
	}
	return nil
}

func (s *PostgresStore) queryWatches(ctx context.Context, query string, args ...any) ([]domain.Watch, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying watches: %w", err)
	}
	defer rows.Close()

	var watches []domain.Watch
	for rows.Next() {
		var w domain.Watch
		if err := scanWatch(rows, &w); err != nil {
			return nil, fmt.Errorf("scanning watch: %w", err)
		}
		watches = append(watches, w)
	}
	return watches, rows.Err()
}

func (s *PostgresStore) queryMedicine(ctx context.Context, query string, args ...any) ([]domain.MedicineSearch, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying medicine searches: %w", err)
	}
	defer rows.Close()

	var searches []domain.MedicineSearch
	for rows.Next() {
		var m domain.MedicineSearch
		if err := scanMedicine(rows, &m); err != nil {
			return nil, fmt.Errorf("scanning medicine search: %w", err)
		}
		searches = append(searches, m)
	}
	return searches, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanWatch(row scannable, w *domain.Watch) error {
	var (
		start, end            *time.Time
		timeRange, exclusions string
	)
	if err := row.Scan(
		&w.ID, &w.RegionID, &w.City, &w.Specialties, &w.GeneralPractitioner,
		&w.ClinicID, &w.DoctorID, &start, &end, &timeRange, &w.Examination,
		&w.AutoBook, &exclusions, &w.Account, &w.Active, &w.LastSearchAt,
		&w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return err
	}

	if start != nil {
		w.StartDate = *start
	}
	if end != nil {
		w.EndDate = *end
	}

	var err error
	if w.TimeRange, err = domain.ParseTimeRange(timeRange); err != nil {
		return fmt.Errorf("watch %s: %w", w.ID, err)
	}
	if w.Exclusions, err = domain.ParseExclusionSet(exclusions); err != nil {
		return fmt.Errorf("watch %s: %w", w.ID, err)
	}
	return nil
}

func scanMedicine(row scannable, m *domain.MedicineSearch) error {
	var dosage, amount, availability, exclusions string
	if err := row.Scan(
		&m.ID, &m.Name, &dosage, &amount, &m.Location, &m.RadiusKM, &m.MaxPrice,
		&availability, &m.DeactivateAfter, &exclusions, &m.Title, &m.Active,
		&m.LastSearchAt, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return err
	}

	m.Dosage, _ = domain.ParseQuantity(dosage, domain.DosageUnits)
	m.Amount, _ = domain.ParseQuantity(amount, domain.PackageUnits)

	if err := m.MinAvailability.UnmarshalText([]byte(availability)); err != nil {
		return fmt.Errorf("medicine search %s: %w", m.ID, err)
	}
	var err error
	if m.Exclusions, err = domain.ParseExclusionSet(exclusions); err != nil {
		return fmt.Errorf("medicine search %s: %w", m.ID, err)
	}
	return nil
}

func watchArgs(w *domain.Watch) pgx.NamedArgs {
	specialties := w.Specialties
	if specialties == nil {
		specialties = []int64{}
	}
	return pgx.NamedArgs{
		"id":                   w.ID,
		"region_id":            w.RegionID,
		"city":                 w.City,
		"specialties":          specialties,
		"general_practitioner": w.GeneralPractitioner,
		"clinic_id":            w.ClinicID,
		"doctor_id":            w.DoctorID,
		"start_date":           nullTime(w.StartDate),
		"end_date":             nullTime(w.EndDate),
		"time_range":           w.TimeRange.String(),
		"examination":          w.Examination,
		"auto_book":            w.AutoBook,
		"exclusions":           w.Exclusions.String(),
		"account":              w.Account,
		"active":               w.Active,
	}
}

func medicineArgs(m *domain.MedicineSearch) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":               m.ID,
		"name":             m.Name,
		"dosage":           m.Dosage.String(),
		"amount":           m.Amount.String(),
		"location":         m.Location,
		"radius_km":        m.RadiusKM,
		"max_price":        m.MaxPrice,
		"min_availability": m.MinAvailability.String(),
		"deactivate_after": m.DeactivateAfter,
		"exclusions":       m.Exclusions.String(),
		"title":            m.Title,
		"active":           m.Active,
	}
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// checkID rejects ids that cannot name a stored search.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("search %q: %w", id, domain.ErrSearchNotFound)
	}
	return nil
}

// notFound maps pgx.ErrNoRows to domain.ErrSearchNotFound.
func notFound(err error, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("search %s: %w", id, domain.ErrSearchNotFound)
	}
	return err
}
