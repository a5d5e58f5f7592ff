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

type supportRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

func NewSupportRepository(db *DB, logger *logger.Logger) SupportRepository {
	logger.Debug().Msg("creating support repository")
	return &supportRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *supportRepository) CreateMessage(ctx context.Context, message models.SupportMessage) (models.SupportMessage, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	message.CreatedAt, message.UpdatedAt = now, now

	query, args, err := buildInsertSupportMessageQuery(r.db.builder, message)
	if err != nil {
		return models.SupportMessage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanSupportMessage(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*supportRepository.CreateMessage").Msg("error inserting support message")
		return models.SupportMessage{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListMessages returns support messages newest first.
func (r *supportRepository) ListMessages(ctx context.Context, filter models.SupportFilter) ([]models.SupportMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSupportMessagesQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*supportRepository.ListMessages").Msg("error querying support messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.SupportMessage, 0)
	for rows.Next() {
		message, err := scanSupportMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func (r *supportRepository) UpdateStatus(ctx context.Context, messageID int64, status models.MessageStatus) (models.SupportMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSupportStatusQuery(r.db.builder, messageID, status, r.now())
	if err != nil {
		return models.SupportMessage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	message, err := scanSupportMessage(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SupportMessage{}, ErrMessageNotFound
		}
		log.Err(err).Str("func", "*supportRepository.UpdateStatus").Msg("error updating support message")
		return models.SupportMessage{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return message, nil
}
