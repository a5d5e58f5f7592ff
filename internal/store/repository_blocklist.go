package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/models"
)

// blocklistRepository is the SQL-backed implementation of [BlocklistRepository].
// The UNIQUE constraint on civil_id makes the database the single arbiter of
// duplicate inserts.
type blocklistRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewBlocklistRepository(db *DB, logger *logger.Logger) BlocklistRepository {
	logger.Debug().Msg("creating blocklist repository")
	return &blocklistRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// FindByIdentifier looks up a civil id. A missing record is not an error, it
// yields [models.NotFound].
func (r *blocklistRepository) FindByIdentifier(ctx context.Context, civilID string) (models.SearchResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindBlockQuery(r.db.builder, civilID)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.BlockRecord
	err = r.db.retry(ctx, func() error {
		record, err = scanBlock(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.NotFound(), nil
	case err != nil:
		log.Err(err).Str("func", "*blocklistRepository.FindByIdentifier").Msg("error looking up civil id")
		return models.SearchResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return models.Found(record), nil
}

// Insert adds a block record. A civil id that is already blocked results in
// [ErrDuplicateBlock].
func (r *blocklistRepository) Insert(ctx context.Context, record models.BlockRecord) (models.BlockRecord, error) {
	log := logger.FromContext(ctx)

	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now()
	}

	query, args, err := buildInsertBlockQuery(r.db.builder, record)
	if err != nil {
		return models.BlockRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanBlock(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return models.BlockRecord{}, ErrDuplicateBlock
		}
		log.Err(err).Str("func", "*blocklistRepository.Insert").Msg("error inserting block record")
		return models.BlockRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *blocklistRepository) Delete(ctx context.Context, civilID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBlockQuery(r.db.builder, civilID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blocklistRepository.Delete").Msg("error deleting block record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// List returns all block records, newest first.
func (r *blocklistRepository) List(ctx context.Context) ([]models.BlockRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlocksQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blocklistRepository.List").Msg("error querying block records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.BlockRecord, 0)
	for rows.Next() {
		record, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
