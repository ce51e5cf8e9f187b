package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsbot/pkg/domain"
)

// SourceRepository handles source-related database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID          int64      `db:"id"`
	URL         string     `db:"url"`
	Kind        string     `db:"kind"`
	Title       string     `db:"title"`
	Active      bool       `db:"is_active"`
	ErrorCount  int        `db:"error_count"`
	CheckCount  int        `db:"check_count"`
	LastChecked *time.Time `db:"last_checked"`
	LastUpdated *time.Time `db:"last_updated"`
	LastError   string     `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// CreateSource inserts a new source
func (r *SourceRepository) CreateSource(ctx context.Context, src *domain.Source) error {
	if src.Kind == "" {
		src.Kind = domain.KindWebsite
	}
	query := `
		INSERT INTO sources (url, kind, title, is_active)
		VALUES (:url, :kind, :title, :is_active)
	`
	result, err := r.db.NamedExecContext(ctx, query, &sourceSQL{
		URL:    src.URL,
		Kind:   string(src.Kind),
		Title:  src.Title,
		Active: src.Active,
	})
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	src.ID = id
	return nil
}

// GetSource retrieves a source by ID
func (r *SourceRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var s sourceSQL
	err := r.db.GetContext(ctx, &s, "SELECT * FROM sources WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get source %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get source %d: %w", id, err)
	}
	return s.toDomain(), nil
}

// GetSources retrieves sources, optionally only the active ones
func (r *SourceRepository) GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
	query := "SELECT * FROM sources"
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY id"

	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	sources := make([]domain.Source, len(rows))
	for i := range rows {
		sources[i] = *rows[i].toDomain()
	}
	return sources, nil
}

// GetActiveSources returns all sources the scheduler should check
func (r *SourceRepository) GetActiveSources(ctx context.Context) ([]domain.Source, error) {
	return r.GetSources(ctx, true)
}

// UpdateSourceCheck stores the bookkeeping of a finished check in a single statement.
// A check can only turn the source off, a source disabled while it was being checked stays disabled.
func (r *SourceRepository) UpdateSourceCheck(ctx context.Context, src *domain.Source) error {
	err := lockRetrier().Do(ctx, func() error {
		query := `
			UPDATE sources
			SET is_active = is_active AND ?,
			    error_count = ?,
			    check_count = ?,
			    last_checked = ?,
			    last_updated = ?,
			    last_error = ?
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, src.Active, src.ErrorCount, src.CheckCount,
			utcPtr(src.LastChecked), utcPtr(src.LastUpdated), src.LastError, src.ID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update source check: %w", err)}
		}
		return nil
	}, errCritical)
	return unwrapCritical(err)
}

// SetSourceActive enables or disables a source, enabling resets the error counter
func (r *SourceRepository) SetSourceActive(ctx context.Context, id int64, active bool) error {
	query := "UPDATE sources SET is_active = ? WHERE id = ?"
	if active {
		query = "UPDATE sources SET is_active = ?, error_count = 0, last_error = '' WHERE id = ?"
	}
	res, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("set source %d active: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("set source %d active: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountSources returns total, active and in-error source numbers
func (r *SourceRepository) CountSources(ctx context.Context) (domain.SourceCounts, error) {
	var counts domain.SourceCounts
	query := `
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(CASE WHEN is_active = 1 THEN 1 ELSE 0 END), 0) AS active,
		       COALESCE(SUM(CASE WHEN error_count > 0 THEN 1 ELSE 0 END), 0) AS in_error
		FROM sources
	`
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return domain.SourceCounts{}, fmt.Errorf("count sources: %w", err)
	}
	return counts, nil
}

func (s *sourceSQL) toDomain() *domain.Source {
	return &domain.Source{
		ID:          s.ID,
		URL:         s.URL,
		Kind:        domain.SourceKind(s.Kind),
		Title:       s.Title,
		Active:      s.Active,
		ErrorCount:  s.ErrorCount,
		CheckCount:  s.CheckCount,
		LastChecked: s.LastChecked,
		LastUpdated: s.LastUpdated,
		LastError:   s.LastError,
		CreatedAt:   s.CreatedAt,
	}
}

// utcPtr normalizes optional timestamps before they hit the database
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
