package kirka

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/i-am-called-glitchy/kirka-bot-go/internal/constants"
	"github.com/i-am-called-glitchy/kirka-bot-go/pkg/errors"
	"go.uber.org/zap"
)

// Client is a thin typed wrapper over the game's HTTP API. Authenticated
// endpoints use the bearer token the client was constructed with; failures
// surface as *errors.APIError and never panic into callers.
type Client struct {
	apiBaseURL string
	domain     string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(apiBaseURL, domain, token string, logger *zap.Logger) *Client {
	return &Client{
		apiBaseURL: apiBaseURL,
		domain:     domain,
		token:      token,
		httpClient: &http.Client{
			Timeout: constants.APIConfig.RequestTimeout,
		},
		logger: logger,
	}
}

// Close releases pooled HTTP resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) apiURL(path string) string {
	return c.apiBaseURL + "/api" + path
}

func (c *Client) regionURL(region string) string {
	return fmt.Sprintf("https://%s.%s/matchmake/", region, c.domain)
}

func (c *Client) get(ctx context.Context, url string, authed bool, respBody any) error {
	return c.doRequest(ctx, http.MethodGet, url, authed, nil, respBody)
}

func (c *Client) post(ctx context.Context, url string, authed bool, reqBody, respBody any) error {
	return c.doRequest(ctx, http.MethodPost, url, authed, reqBody, respBody)
}

func (c *Client) doRequest(ctx context.Context, method, url string, authed bool, reqBody, respBody any) error {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return errors.NewAPIError("failed to marshal request", 400, map[string]any{
				"url": url,
			}).WithCause(err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return errors.NewAPIError("failed to create request", 500, map[string]any{
			"url": url,
		}).WithCause(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewAPIError("request failed", 500, map[string]any{
			"url": url,
		}).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		apiCtx := map[string]any{
			"url":  url,
			"body": string(bodyBytes),
		}
		if code, ok := errorStatusCode(bodyBytes); ok {
			apiCtx["reason"] = TranslateErrorCode(code)
		}
		return errors.NewAPIError(
			fmt.Sprintf("kirka API error: %s", resp.Status),
			resp.StatusCode,
			apiCtx,
		)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return errors.NewAPIError("failed to decode response", 500, map[string]any{
				"url": url,
			}).WithCause(err)
		}
	}

	return nil
}

// errorStatusCode pulls the numeric game error code out of a failure body.
func errorStatusCode(body []byte) (int, bool) {
	var payload struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Status == 0 {
		return 0, false
	}
	return payload.Status, true
}
