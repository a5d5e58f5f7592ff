package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/rental-blocklist/internal/civilid"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/metrics"
	"github.com/MKhiriev/rental-blocklist/internal/quota"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/models"
)

// searchService runs quota-checked blocklist lookups.
//
// A search is only charged once the identifier is valid, and the charge is
// a single atomic decrement in the account store, so concurrent searches
// by one account can never overdraw its quota.
type searchService struct {
	accountRepository   store.AccountRepository
	blocklistRepository store.BlocklistRepository
	activity            ActivityService
	quota               *quota.Manager
	metrics             *metrics.Metrics
	now                 func() time.Time

	logger *logger.Logger
}

func NewSearchService(
	accountRepository store.AccountRepository,
	blocklistRepository store.BlocklistRepository,
	activity ActivityService,
	quotaManager *quota.Manager,
	m *metrics.Metrics,
	logger *logger.Logger,
) SearchService {
	return &searchService{
		accountRepository:   accountRepository,
		blocklistRepository: blocklistRepository,
		activity:            activity,
		quota:               quotaManager,
		metrics:             m,
		now:                 time.Now,
		logger:              logger,
	}
}

func (s *searchService) Search(ctx context.Context, accountID int64, civilID string) (models.SearchResponse, error) {
	log := logger.FromContext(ctx)

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.SearchResponse{}, err
	}

	// fast fail before validating anything
	if _, err = s.quota.TrySearch(account); err != nil {
		s.metrics.IncrementQuotaRejections()
		return models.SearchResponse{}, err
	}

	id, err := civilid.Parse(civilID, s.now())
	if err != nil {
		s.metrics.IncrementValidationFailures(civilid.Reason(err))
		return models.SearchResponse{}, err
	}

	// unbounded accounts report no counter
	var remaining *int64
	charged := !s.quota.Unbounded(account)
	if charged {
		remaining, err = s.accountRepository.DecrementRemainingIfPositive(ctx, accountID)
		if errors.Is(err, quota.ErrQuotaExceeded) {
			s.metrics.IncrementQuotaRejections()
			return models.SearchResponse{}, err
		}
		if err != nil {
			return models.SearchResponse{}, fmt.Errorf("error charging search: %w", err)
		}
	}

	result, err := s.blocklistRepository.FindByIdentifier(ctx, id.Value)
	if err != nil {
		if charged {
			s.refund(ctx, accountID)
		}
		return models.SearchResponse{}, fmt.Errorf("error looking up civil id: %w", err)
	}

	s.metrics.ObserveSearch(result.Found)
	s.activity.Record(ctx, account.Username, models.ActionSearch, id.Value)
	log.Debug().Int64("account_id", accountID).Bool("found", result.Found).Msg("blocklist search")

	return models.SearchResponse{SearchResult: result, RemainingSearches: remaining}, nil
}

// refund gives back a search that was charged but could not be answered.
func (s *searchService) refund(ctx context.Context, accountID int64) {
	if _, err := s.accountRepository.CreditRemaining(ctx, accountID, 1); err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("failed to refund search")
	}
}
