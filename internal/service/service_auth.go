package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/internal/validators"
	"github.com/MKhiriev/rental-blocklist/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the JWT lifecycle.
type authService struct {
	accountRepository store.AccountRepository
	activity          ActivityService
	validator         validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// defaultSearchLimit is the quota of self-registered accounts.
	defaultSearchLimit int64

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token and quota
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(accountRepository store.AccountRepository, activity ActivityService, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository:  accountRepository,
		activity:           activity,
		validator:          validator,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		defaultSearchLimit: cfg.DefaultSearchLimit,
		logger:             logger,
	}
}

// Register creates a regular account with the default search quota.
//
// Returns the persisted account or:
//   - a *validators.RequestError for malformed input.
//   - store.ErrLoginAlreadyExists if the username is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.Account{}, err
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Username:          req.Username,
		PasswordHash:      hash,
		Role:              models.RoleUser,
		SearchLimit:       models.Int64Ptr(a.defaultSearchLimit),
		RemainingSearches: models.Int64Ptr(a.defaultSearchLimit),
		PhoneNumber:       req.PhoneNumber,
		CompanyName:       req.CompanyName,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return account, nil
}

// Login authenticates an account by username and password and records a
// login activity entry.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Account{}, err
	}

	account, err := a.accountRepository.FindByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoAccountWasFound) {
		log.Info().Str("username", req.Username).Msg("login attempt for unknown account")
		return models.Account{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("account search by username failed")
		return models.Account{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if err = utils.ComparePassword(account.PasswordHash, req.Password); err != nil {
		log.Info().Int64("id", account.AccountID).Str("username", account.Username).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}

	a.activity.Record(ctx, account.Username, models.ActionLogin, "")

	return account, nil
}

// Logout records a logout activity entry. Tokens are stateless, so nothing
// is revoked.
func (a *authService) Logout(ctx context.Context, accountID int64) error {
	account, err := a.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	a.activity.Record(ctx, account.Username, models.ActionLogout, "")

	return nil
}

// CreateToken issues a signed JWT carrying the account ID and role.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.AccountID, account.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Any failure (expired, wrong issuer,
// malformed, unknown role) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return nil
	}

	existing, err := a.accountRepository.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if !existing.IsAdmin() {
			log.Warn().Str("username", username).Msg("bootstrap admin username belongs to a regular account")
			return fmt.Errorf("%w: %s", ErrNotAnAdmin, username)
		}
		return nil
	case !errors.Is(err, store.ErrNoAccountWasFound):
		return fmt.Errorf("error looking up bootstrap admin: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if _, err = a.accountRepository.CreateAccount(ctx, models.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}); err != nil && !errors.Is(err, store.ErrLoginAlreadyExists) {
		return fmt.Errorf("error creating bootstrap admin: %w", err)
	}
	log.Info().Str("username", username).Msg("bootstrap admin account created")

	return nil
}
