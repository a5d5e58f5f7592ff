package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/rental-blocklist/internal/civilid"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/metrics"
	"github.com/MKhiriev/rental-blocklist/internal/quota"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/validators"
	"github.com/MKhiriev/rental-blocklist/models"
)

// blocklistService adds and removes block records. Regular accounts are
// credited bonus searches for every record they contribute.
type blocklistService struct {
	accountRepository   store.AccountRepository
	blocklistRepository store.BlocklistRepository
	activity            ActivityService
	validator           validators.Validator
	quota               *quota.Manager
	metrics             *metrics.Metrics
	now                 func() time.Time

	logger *logger.Logger
}

func NewBlocklistService(
	accountRepository store.AccountRepository,
	blocklistRepository store.BlocklistRepository,
	activity ActivityService,
	validator validators.Validator,
	quotaManager *quota.Manager,
	m *metrics.Metrics,
	logger *logger.Logger,
) BlocklistService {
	return &blocklistService{
		accountRepository:   accountRepository,
		blocklistRepository: blocklistRepository,
		activity:            activity,
		validator:           validator,
		quota:               quotaManager,
		metrics:             m,
		now:                 time.Now,
		logger:              logger,
	}
}

// AddBlock validates the request and the identifier, inserts the record and
// credits the contributor.
//
// Returns store.ErrDuplicateBlock when the identifier is already blocked,
// whether detected by the precheck or by the store on a concurrent insert.
func (s *blocklistService) AddBlock(ctx context.Context, accountID int64, req models.AddBlockRequest) (models.AddBlockResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.AddBlockResponse{}, err
	}

	id, err := civilid.Parse(req.CivilID, s.now())
	if err != nil {
		s.metrics.IncrementValidationFailures(civilid.Reason(err))
		return models.AddBlockResponse{}, err
	}

	existing, err := s.blocklistRepository.FindByIdentifier(ctx, id.Value)
	if err != nil {
		return models.AddBlockResponse{}, fmt.Errorf("error looking up civil id: %w", err)
	}
	if existing.Found {
		return models.AddBlockResponse{}, store.ErrDuplicateBlock
	}

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.AddBlockResponse{}, err
	}

	record, err := s.blocklistRepository.Insert(ctx, models.BlockRecord{
		CivilID:   id.Value,
		Name:      req.Name,
		Reason:    req.Reason,
		CreatedBy: account.Username,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return models.AddBlockResponse{}, err
	}
	s.metrics.IncrementContributions()
	s.activity.Record(ctx, account.Username, models.ActionAddedBlock, id.Value)

	response := models.AddBlockResponse{Record: record}
	if s.quota.Unbounded(account) {
		return response, nil
	}

	remaining, err := s.accountRepository.CreditRemaining(ctx, accountID, s.quota.Bonus())
	if err != nil {
		// the record is stored; report it without the bonus
		log.Err(err).Int64("account_id", accountID).Msg("failed to credit contribution bonus")
		response.RemainingSearches = account.RemainingSearches
		return response, nil
	}
	response.RemainingSearches = remaining
	response.Bonus = s.quota.Bonus()

	return response, nil
}

// RemoveBlock deletes a record. Only the identifier shape is checked, so
// records of customers who have since aged out can still be removed.
func (s *blocklistService) RemoveBlock(ctx context.Context, accountID int64, civilID string) error {
	if err := s.validator.Validate(ctx, models.BlockKey{CivilID: civilID}); err != nil {
		return err
	}

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err = s.blocklistRepository.Delete(ctx, civilID); err != nil {
		return err
	}
	s.activity.Record(ctx, account.Username, models.ActionRemovedBlock, civilID)

	return nil
}

func (s *blocklistService) ListBlocks(ctx context.Context) ([]models.BlockRecord, error) {
	return s.blocklistRepository.List(ctx)
}
