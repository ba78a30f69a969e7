// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

// resourceRepository is the SQLite-backed implementation of
// [ResourceRepository]. All queries run against the append-only "resources"
// table; "latest" is the row with the greatest created stamp per key.
type resourceRepository struct {
	*DB
	logger *logger.Logger
}

// NewResourceRepository constructs a [ResourceRepository] backed by the
// provided database connection and logger.
func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	return &resourceRepository{
		DB:     db,
		logger: logger,
	}
}

// Latest implements [ResourceRepository].
func (r *resourceRepository) Latest(ctx context.Context, key models.ResourceKey) (*models.ResourceVersion, error) {
	query, args, err := sq.Select("key", "ref", "content", "created").
		From("resources").
		Where(sq.Eq{"key": key.String()}).
		OrderBy("created DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest query: %w", err)
	}

	version, err := r.scanOne(ctx, query, args)
	if err != nil {
		if errors.Is(err, ErrVersionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return version, nil
}

// InsertWithPrecondition implements [ResourceRepository]. The precondition
// check and the insert run in one transaction so two concurrent writers with
// the same expected ref cannot both succeed.
func (r *resourceRepository) InsertWithPrecondition(ctx context.Context, version models.ResourceVersion, expectedRef string) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var latestRef sql.NullString
	row := tx.QueryRowContext(ctx,
		`SELECT ref FROM resources WHERE key = ? ORDER BY created DESC, id DESC LIMIT 1`,
		version.Key.String())
	if err = row.Scan(&latestRef); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("query latest ref: %w", err)
	}

	if !preconditionHolds(expectedRef, latestRef) {
		log.Debug().
			Str("func", "resourceRepository.InsertWithPrecondition").
			Str("key", version.Key.String()).
			Str("expected_ref", expectedRef).
			Msg("write precondition failed")
		return ErrRefMismatch
	}

	query, args, err := sq.Insert("resources").
		Columns("key", "ref", "content", "created").
		Values(version.Key.String(), version.Ref, version.Content, version.Created).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert resource version: %w", err)
	}

	return tx.Commit()
}

// preconditionHolds checks expectedRef against the latest stored ref. An
// empty expectedRef is unconditional; [models.NoneRef] requires that nothing
// is stored yet; any other value must match the latest ref exactly.
func preconditionHolds(expectedRef string, latestRef sql.NullString) bool {
	switch expectedRef {
	case "":
		return true
	case models.NoneRef:
		return !latestRef.Valid
	default:
		return latestRef.Valid && latestRef.String == expectedRef
	}
}

// ListVersions implements [ResourceRepository].
func (r *resourceRepository) ListVersions(ctx context.Context, key models.ResourceKey) ([]models.ResourceVersion, error) {
	query, args, err := sq.Select("key", "ref", "content", "created").
		From("resources").
		Where(sq.Eq{"key": key.String()}).
		OrderBy("created DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resource versions: %w", err)
	}
	defer rows.Close()

	versions := make([]models.ResourceVersion, 0, 16)
	for rows.Next() {
		var v models.ResourceVersion
		var rawKey string
		if err = rows.Scan(&rawKey, &v.Ref, &v.Content, &v.Created); err != nil {
			return nil, fmt.Errorf("scan resource version: %w", err)
		}
		v.Key = models.ResourceKey(rawKey)
		versions = append(versions, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resource versions: %w", err)
	}

	return versions, nil
}

// GetByRef implements [ResourceRepository].
func (r *resourceRepository) GetByRef(ctx context.Context, key models.ResourceKey, ref string) (*models.ResourceVersion, error) {
	query, args, err := sq.Select("key", "ref", "content", "created").
		From("resources").
		Where(sq.Eq{"key": key.String(), "ref": ref}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	return r.scanOne(ctx, query, args)
}

// DeleteKey implements [ResourceRepository].
func (r *resourceRepository) DeleteKey(ctx context.Context, key models.ResourceKey) error {
	query, args, err := sq.Delete("resources").Where(sq.Eq{"key": key.String()}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete resource %s: %w", key, err)
	}
	return nil
}

// DeleteAll implements [ResourceRepository]. Clearing the store rotates the
// session identifier so clients can tell their checkpoints are stale.
func (r *resourceRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM resources`); err != nil {
		return fmt.Errorf("delete all resources: %w", err)
	}
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM store_session`); err != nil {
		return fmt.Errorf("rotate store session: %w", err)
	}
	return nil
}

// Session implements [ResourceRepository].
func (r *resourceRepository) Session(ctx context.Context) (string, error) {
	var session string
	row := r.DB.QueryRowContext(ctx, `SELECT session FROM store_session WHERE id = 1`)
	err := row.Scan(&session)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("query store session: %w", err)
	}

	session = uuid.NewString()
	if _, err = r.DB.ExecContext(ctx,
		`INSERT INTO store_session (id, session) VALUES (1, ?)
		 ON CONFLICT (id) DO NOTHING`, session); err != nil {
		return "", fmt.Errorf("create store session: %w", err)
	}

	// Re-read in case a concurrent writer won the insert race.
	row = r.DB.QueryRowContext(ctx, `SELECT session FROM store_session WHERE id = 1`)
	if err = row.Scan(&session); err != nil {
		return "", fmt.Errorf("reread store session: %w", err)
	}
	return session, nil
}

// LatestRefs implements [ResourceRepository].
func (r *resourceRepository) LatestRefs(ctx context.Context) (map[models.ResourceKey]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT key, ref FROM resources r1
		 WHERE id = (SELECT id FROM resources r2 WHERE r2.key = r1.key ORDER BY created DESC, id DESC LIMIT 1)`)
	if err != nil {
		return nil, fmt.Errorf("query latest refs: %w", err)
	}
	defer rows.Close()

	latest := make(map[models.ResourceKey]string)
	for rows.Next() {
		var rawKey, ref string
		if err = rows.Scan(&rawKey, &ref); err != nil {
			return nil, fmt.Errorf("scan latest ref: %w", err)
		}
		latest[models.ResourceKey(rawKey)] = ref
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate latest refs: %w", err)
	}

	return latest, nil
}

func (r *resourceRepository) scanOne(ctx context.Context, query string, args []any) (*models.ResourceVersion, error) {
	var v models.ResourceVersion
	var rawKey string

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&rawKey, &v.Ref, &v.Content, &v.Created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVersionNotFound
		}
		return nil, fmt.Errorf("scan resource version: %w", err)
	}

	v.Key = models.ResourceKey(rawKey)
	return &v, nil
}
