// Package api implements the HTTP JSON client for the two remote
// consultation endpoints: the question/answer endpoint and the corpus
// sync endpoint.
//
// Error taxonomy: a non-success HTTP status with a decodable error payload
// is reported as *ProtocolError; everything else (connection failures,
// timeouts, malformed response bodies) is returned as a plain wrapped error
// and should be treated as a transport failure by the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/legalassist/internal/client/models"
	"github.com/dmitrijs2005/legalassist/internal/common"
)

// CorpusCodes lists the legal codes the corpus endpoints understand.
var CorpusCodes = []string{"GK", "TK", "UK", "KoAP", "SK", "ZPP"}

// ProtocolError is a non-success response from the remote endpoint with the
// server-provided error message (possibly empty).
type ProtocolError struct {
	StatusCode int
	Message    string
}

func (e *ProtocolError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// QueryResponse is the success payload of the question endpoint.
type QueryResponse struct {
	Answer  string          `json:"answer"`
	Sources []models.Source `json:"sources"`
}

// SyncResult is the payload of the corpus sync endpoint.
type SyncResult struct {
	Success        bool   `json:"success"`
	ArticlesLoaded int    `json:"articles_loaded"`
	Error          string `json:"error"`
}

// CodeStats is one per-code row in the informational stats report.
type CodeStats struct {
	Code          string `json:"code"`
	ArticlesCount int    `json:"articles_count"`
}

// StatsReport is the payload of the read-only GET on the sync endpoint.
type StatsReport struct {
	Stats []CodeStats `json:"stats"`
}

type Client struct {
	httpc    *http.Client
	queryURL string
	syncURL  string
	userID   string
}

func New(queryURL, syncURL string, timeout time.Duration, userID string) *Client {
	return &Client{
		httpc:    &http.Client{Timeout: timeout},
		queryURL: queryURL,
		syncURL:  syncURL,
		userID:   userID,
	}
}

// Ask submits one trimmed, non-empty question and returns the generated
// answer with its citations.
func (c *Client) Ask(ctx context.Context, question string) (*QueryResponse, error) {
	body, err := c.post(ctx, c.queryURL, map[string]string{"question": question})
	if err != nil {
		return nil, err
	}

	var resp QueryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed answer payload: %w", err)
	}
	return &resp, nil
}

// SyncCorpus triggers a full refresh of the legal-article corpus. A response
// with success=false is reported as common.ErrSyncRejected.
func (c *Client) SyncCorpus(ctx context.Context) (*SyncResult, error) {
	return c.postSync(ctx, map[string]string{})
}

// LoadCode refreshes the articles of a single legal code (e.g. "GK", "TK").
func (c *Client) LoadCode(ctx context.Context, code string) (*SyncResult, error) {
	return c.postSync(ctx, map[string]string{"code": code})
}

// Stats fetches the informational per-code corpus statistics.
func (c *Client) Stats(ctx context.Context) (*StatsReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.syncURL, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var report StatsReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("malformed stats payload: %w", err)
	}
	return &report, nil
}

func (c *Client) postSync(ctx context.Context, payload any) (*SyncResult, error) {
	body, err := c.post(ctx, c.syncURL, payload)
	if err != nil {
		return nil, err
	}

	var res SyncResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("malformed sync payload: %w", err)
	}
	if !res.Success {
		if res.Error != "" {
			return nil, fmt.Errorf("%w: %s", common.ErrSyncRejected, res.Error)
		}
		return nil, common.ErrSyncRejected
	}
	return &res, nil
}

func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Content-Type", "application/json")
	if c.userID != "" {
		req.Header.Set(common.UserIDHeaderName, c.userID)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ep struct {
			Error string `json:"error"`
		}
		// тело может быть не-JSON, тогда сообщение остаётся пустым
		_ = json.Unmarshal(body, &ep)
		return nil, &ProtocolError{StatusCode: resp.StatusCode, Message: ep.Error}
	}

	return body, nil
}
