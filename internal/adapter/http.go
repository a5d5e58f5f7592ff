package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/models"
)

type httpBlocklistClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlocklistClient returns a REST implementation of [BlocklistClient].
// The address may omit the scheme, "http://" is assumed.
func NewHTTPBlocklistClient(cfg config.ClientAdapter, logger *logger.Logger) (BlocklistClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBlocklistClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlocklistClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlocklistClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBlocklistClient) Login(ctx context.Context, username, password string) (models.Account, error) {
	var account models.Account

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&account).
		Post("/api/user/login")
	if err != nil {
		return models.Account{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Account{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Int64("id", account.AccountID).Msg("logged in")

	return account, nil
}

func (h *httpBlocklistClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpBlocklistClient) Me(ctx context.Context) (models.Account, error) {
	var account models.Account

	resp, err := h.authedRequest(ctx).SetResult(&account).Get("/api/me")
	if err != nil {
		return models.Account{}, fmt.Errorf("me request: %w", err)
	}

	return account, mapHTTPError(resp)
}

func (h *httpBlocklistClient) Search(ctx context.Context, civilID string) (models.SearchResponse, error) {
	var result models.SearchResponse

	resp, err := h.authedRequest(ctx).
		SetBody(models.SearchRequest{CivilID: civilID}).
		SetResult(&result).
		Post("/api/blocklist/search")
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResponse{}, err
	}

	return result, nil
}

func (h *httpBlocklistClient) AddBlock(ctx context.Context, req models.AddBlockRequest) (models.AddBlockResponse, error) {
	var result models.AddBlockResponse

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/blocklist")
	if err != nil {
		return models.AddBlockResponse{}, fmt.Errorf("add block request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AddBlockResponse{}, err
	}

	return result, nil
}

func (h *httpBlocklistClient) SendSupportMessage(ctx context.Context, req models.SupportMessageRequest) (models.SupportMessageResponse, error) {
	var result models.SupportMessageResponse

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/support/messages")
	if err != nil {
		return models.SupportMessageResponse{}, fmt.Errorf("support message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SupportMessageResponse{}, err
	}

	return result, nil
}

func (h *httpBlocklistClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpBlocklistClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
