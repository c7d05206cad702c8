package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/models"
)

type httpCatalogAPI struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPCatalogAPI constructs a resty-backed [CatalogAPI] from cfg.
//
// The client pins the configured API version header on every request, bounds
// each call with cfg.Timeout and retries transient failures (network errors,
// 429, 5xx) up to cfg.RetryCount times with growing wait times. 401/403
// responses are never retried.
func NewHTTPCatalogAPI(cfg config.CatalogAPI, log *logger.Logger) CatalogAPI {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = 0
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})

	if cfg.Version != "" {
		cli.SetHeader("X-Api-Version", cfg.Version)
	}

	return &httpCatalogAPI{client: cli, logger: log, token: strings.TrimSpace(cfg.AccessToken)}
}

func (h *httpCatalogAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCatalogAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// InvalidateToken implements [CatalogAPI]. After an auth failure the cached
// credential is dropped so later calls fail fast instead of hammering the
// remote with a known-bad token.
func (h *httpCatalogAPI) InvalidateToken() {
	h.SetToken("")
}

func (h *httpCatalogAPI) ListCatalog(ctx context.Context, objectTypes []string, cursor string) (models.ListResponse, error) {
	req := h.authedRequest(ctx).
		SetQueryParam("types", strings.Join(objectTypes, ","))
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}

	resp, err := req.Get("/v2/catalog/list")
	if err != nil {
		return models.ListResponse{}, fmt.Errorf("list catalog request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return models.ListResponse{}, err
	}

	var out models.ListResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ListResponse{}, fmt.Errorf("decode list response: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAPI) SearchObjects(ctx context.Context, req models.SearchRequest) (models.SearchResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v2/catalog/search")
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search objects request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return models.SearchResponse{}, err
	}

	var out models.SearchResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SearchResponse{}, fmt.Errorf("decode search response: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAPI) RetrieveObject(ctx context.Context, objectID string, includeRelated bool) (models.RetrieveResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("include_related_objects", fmt.Sprintf("%t", includeRelated)).
		Get("/v2/catalog/object/" + objectID)
	if err != nil {
		return models.RetrieveResponse{}, fmt.Errorf("retrieve object request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return models.RetrieveResponse{}, err
	}

	var out models.RetrieveResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.RetrieveResponse{}, fmt.Errorf("decode retrieve response: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAPI) BatchRetrieve(ctx context.Context, req models.BatchRetrieveRequest) (models.BatchRetrieveResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v2/catalog/batch-retrieve")
	if err != nil {
		return models.BatchRetrieveResponse{}, fmt.Errorf("batch retrieve request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return models.BatchRetrieveResponse{}, err
	}

	var out models.BatchRetrieveResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.BatchRetrieveResponse{}, fmt.Errorf("decode batch retrieve response: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAPI) UpsertObject(ctx context.Context, req models.UpsertRequest) (models.UpsertResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/v2/catalog/object")
	if err != nil {
		return models.UpsertResponse{}, fmt.Errorf("upsert object request: %w", err)
	}
	if err = h.mapHTTPError(resp); err != nil {
		return models.UpsertResponse{}, err
	}

	var out models.UpsertResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.UpsertResponse{}, fmt.Errorf("decode upsert response: %w", err)
	}

	return out, nil
}

func (h *httpCatalogAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// mapHTTPError converts a non-2xx response into one of the package sentinel
// errors, or a generic error carrying the status and the first remote error
// detail.
func (h *httpCatalogAPI) mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := firstAPIError(resp.Body())

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		h.InvalidateToken()
		h.logger.Warn().
			Str("func", "httpCatalogAPI.mapHTTPError").
			Int("status", resp.StatusCode()).
			Msg("auth failure, cached token invalidated")
		return ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound || apiErr.Code == models.APIErrorCodeNotFound:
		return ErrNotFound
	case resp.StatusCode() == http.StatusConflict || apiErr.Code == models.APIErrorCodeVersionMismatch:
		return ErrVersionConflict
	}

	detail := apiErr.Detail
	if detail == "" {
		detail = strings.TrimSpace(string(resp.Body()))
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("catalog api http %d: %s", resp.StatusCode(), detail)
}

func firstAPIError(body []byte) models.APIError {
	var envelope struct {
		Errors []models.APIError `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Errors) == 0 {
		return models.APIError{}
	}
	return envelope.Errors[0]
}
