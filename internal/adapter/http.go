package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// baseURL may omit the scheme, "http://" is assumed then. A zero timeout
// disables the per-request deadline.
func NewHTTPAPIClient(baseURL string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(normalized, timeout),
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

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	return h.request(ctx).SetAuthToken(h.Token())
}

func (h *httpAPIClient) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.request(ctx).SetResult(&info).Get("/api/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

// Register posts to /api/auth/register and keeps the token from the
// Authorization response header.
func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login posts to /api/auth/login and keeps the token from the Authorization
// response header.
func (h *httpAPIClient) Login(ctx context.Context, c models.Credentials) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/login", c)
}

func (h *httpAPIClient) authenticate(ctx context.Context, path string, body any) (models.User, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		token = auth.Token
	}
	if token == "" {
		return models.User{}, ErrNoToken
	}

	h.SetToken(token)
	h.logger.Debug().Int64("user_id", auth.User.UserID).Str("path", path).Msg("session started")
	return auth.User, nil
}

func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAPIClient) Profile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/api/user")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpAPIClient) UpdateName(ctx context.Context, change models.NameChange) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(change).
		SetResult(&user).
		Put("/api/user/name")
	if err != nil {
		return models.User{}, fmt.Errorf("update name request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpAPIClient) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(change).
		Put("/api/user/password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListTransactions sends only the query parameters that are set, leaving
// defaults to the server.
func (h *httpAPIClient) ListTransactions(ctx context.Context, query models.ListQuery) (models.TransactionPage, error) {
	var page models.TransactionPage

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(listQueryValues(query)).
		SetResult(&page).
		Get("/api/transactions")
	if err != nil {
		return models.TransactionPage{}, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TransactionPage{}, err
	}

	return page, nil
}

func listQueryValues(query models.ListQuery) url.Values {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(query.PageSize))
	}
	if query.Filter != "" {
		values.Set("filter", string(query.Filter))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.SortBy != models.SortByDefault {
		values.Set("sortBy", string(query.SortBy))
	}
	if query.SortOrder != "" {
		values.Set("sortOrder", string(query.SortOrder))
	}
	return values
}

func (h *httpAPIClient) CreateTransaction(ctx context.Context, in models.TransactionInput) (models.Transaction, error) {
	var created models.Transaction

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		SetResult(&created).
		Post("/api/transactions")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return created, nil
}

func (h *httpAPIClient) UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (models.Transaction, error) {
	var updated models.Transaction

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(in).
		SetResult(&updated).
		Put("/api/transactions/{id}")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return updated, nil
}

func (h *httpAPIClient) DeleteTransaction(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/transactions/{id}")
	if err != nil {
		return fmt.Errorf("delete transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) DashboardStats(ctx context.Context, filter models.Filter, reportType models.ReportType) (models.DashboardStats, error) {
	var stats models.DashboardStats

	req := h.authedRequest(ctx).SetResult(&stats)
	if filter != "" {
		req.SetQueryParam("filter", string(filter))
	}
	if reportType != "" {
		req.SetQueryParam("reportType", string(reportType))
	}

	resp, err := req.Get("/api/dashboard/stats")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DashboardStats{}, err
	}

	return stats, nil
}
