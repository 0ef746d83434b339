package baserow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goresan/goresan/internal/domain"
)

const (
	DefaultBaseURL = "https://api.baserow.io"
	defaultTimeout = 30 * time.Second
)

// Client reads rows from a Baserow table.
// It implements domain.DoaRepository.
type Client struct {
	baseURL    string
	token      string
	tableID    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Baserow API client
func NewClient(baseURL, token, tableID string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		tableID: tableID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("source", "baserow"),
	}
}

// TablePath returns the list-rows path of a table
func TablePath(tableID string) string {
	return fmt.Sprintf("/api/database/rows/table/%s/", url.PathEscape(tableID))
}

// ListRows performs one authenticated list-rows read and decodes the body into dest.
// There is no retry; any non-200 status is a failure regardless of body.
func (c *Client) ListRows(ctx context.Context, tableID string, dest any) error {
	if c.token == "" || tableID == "" {
		return domain.ErrNotConfigured
	}

	query := url.Values{}
	query.Set("user_field_names", "true")
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, TablePath(tableID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("baserow request", "table", tableID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.logger.Error("baserow request failed", "error", err)
		return fmt.Errorf("%w: %v", domain.ErrOffline, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.logger.Error("baserow rejected token", "status", resp.StatusCode)
		return fmt.Errorf("%w (status %d)", domain.ErrAuthFailed, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("baserow request error", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// FetchAll returns every doa row of the configured table, in table order
func (c *Client) FetchAll(ctx context.Context) ([]domain.Doa, error) {
	var resp RowsResponse
	if err := c.ListRows(ctx, c.tableID, &resp); err != nil {
		return nil, err
	}

	records := MapDoas(resp.Results)
	c.logger.Info("loaded doa rows", "count", len(records))
	return records, nil
}

// FetchCreatives returns the rows of a house-ad table
func (c *Client) FetchCreatives(ctx context.Context, tableID string) ([]CreativeRow, error) {
	var resp CreativesResponse
	if err := c.ListRows(ctx, tableID, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}
