package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/internal/validators"
	"github.com/MKhiriev/rental-blocklist/models"
)

// accountService implements the profile endpoint and admin account management.
type accountService struct {
	accountRepository  store.AccountRepository
	validator          validators.Validator
	defaultSearchLimit int64

	logger *logger.Logger
}

func NewAccountService(accountRepository store.AccountRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository:  accountRepository,
		validator:          validator,
		defaultSearchLimit: cfg.DefaultSearchLimit,
		logger:             logger,
	}
}

func (s *accountService) Me(ctx context.Context, accountID int64) (models.Account, error) {
	return s.accountRepository.FindByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.accountRepository.ListAccounts(ctx)
}

// CreateAccount creates an account of any role. Admins get no quota, users
// get the requested limit or the configured default.
func (s *accountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Account{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		PhoneNumber:  req.PhoneNumber,
		CompanyName:  req.CompanyName,
	}
	if !account.IsAdmin() {
		limit := s.defaultSearchLimit
		if req.SearchLimit != nil {
			limit = *req.SearchLimit
		}
		account.SearchLimit = models.Int64Ptr(limit)
		account.RemainingSearches = models.Int64Ptr(limit)
	}

	created, err := s.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return created, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, callerID, accountID int64) error {
	if callerID == accountID {
		return ErrCannotDeleteSelf
	}

	return s.accountRepository.DeleteAccount(ctx, accountID)
}

// SetRemainingSearches overrides the quota counter of a regular account.
func (s *accountService) SetRemainingSearches(ctx context.Context, accountID int64, req models.SetSearchesRequest) (models.Account, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Account{}, err
	}

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.Account{}, err
	}
	if account.IsAdmin() {
		return models.Account{}, ErrAdminHasNoQuota
	}

	return s.accountRepository.UpdateRemaining(ctx, accountID, models.Int64Ptr(req.RemainingSearches))
}

// UpdateCredentials changes username and password after re-verifying the
// current password.
func (s *accountService) UpdateCredentials(ctx context.Context, accountID int64, req models.UpdateCredentialsRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Account{}, err
	}

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.Account{}, err
	}

	if err = utils.ComparePassword(account.PasswordHash, req.CurrentPassword); err != nil {
		log.Info().Int64("id", accountID).Msg("credential change rejected: wrong current password")
		return models.Account{}, ErrWrongPassword
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return models.Account{}, err
	}

	return s.accountRepository.UpdateCredentials(ctx, accountID, req.NewUsername, hash)
}
