package service

import (
	"fmt"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/metrics"
	"github.com/MKhiriev/rental-blocklist/internal/quota"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/validators"
)

type Services struct {
	AuthService      AuthService
	AccountService   AccountService
	SearchService    SearchService
	BlocklistService BlocklistService
	ActivityService  ActivityService
	SupportService   SupportService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()
	quotaManager := quota.NewManager(cfg.App.ContributionBonus)
	activity := NewActivityService(storages.ActivityRepository, m, logger)

	appInfo, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:      NewAuthService(storages.AccountRepository, activity, validator, cfg.App, logger),
		AccountService:   NewAccountService(storages.AccountRepository, validator, cfg.App, logger),
		SearchService:    NewSearchService(storages.AccountRepository, storages.BlocklistRepository, activity, quotaManager, m, logger),
		BlocklistService: NewBlocklistService(storages.AccountRepository, storages.BlocklistRepository, activity, validator, quotaManager, m, logger),
		ActivityService:  activity,
		SupportService:   NewSupportService(storages.SupportRepository, storages.AccountRepository, validator, logger),
		AppInfoService:   appInfo,
	}, nil
}
