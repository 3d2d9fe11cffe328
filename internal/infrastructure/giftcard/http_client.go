package giftcard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/DanielPopoola/giftcard-connector/internal/config"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
)

// HTTPClient talks JSON to a gift card vendor API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(cfg config.ProviderConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *HTTPClient) Balance(ctx context.Context, code string) (*domain.ProviderBalanceResponse, error) {
	url := fmt.Sprintf("%s/balance", c.baseURL)
	return sendRequest[balanceRequest, domain.ProviderBalanceResponse](c, ctx, http.MethodPost, url, &balanceRequest{Code: code})
}

func (c *HTTPClient) Redeem(ctx context.Context, req domain.ProviderRedeemRequest) (*domain.ProviderRedeemResponse, error) {
	url := fmt.Sprintf("%s/redeem", c.baseURL)
	return sendRequest[domain.ProviderRedeemRequest, domain.ProviderRedeemResponse](c, ctx, http.MethodPost, url, &req)
}

func (c *HTTPClient) Rollback(ctx context.Context, redemptionReference string) (*domain.ProviderRollbackResponse, error) {
	url := fmt.Sprintf("%s/rollback", c.baseURL)
	req := domain.ProviderRollbackRequest{RedemptionReference: redemptionReference}
	return sendRequest[domain.ProviderRollbackRequest, domain.ProviderRollbackResponse](c, ctx, http.MethodPost, url, &req)
}

func (c *HTTPClient) HealthCheck(ctx context.Context) (*domain.ProviderHealthResponse, error) {
	url := fmt.Sprintf("%s/healthcheck", c.baseURL)
	return sendRequest[any, domain.ProviderHealthResponse](c, ctx, http.MethodGet, url, nil)
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, url string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		httpReq.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var errResp ProviderErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, &ProviderError{
				Code:       http.StatusText(resp.StatusCode),
				Message:    string(body),
				StatusCode: resp.StatusCode,
			}
		}
		return nil, &ProviderError{
			Code:       errResp.Err,
			Message:    errResp.Message,
			StatusCode: resp.StatusCode,
		}
	}

	var providerResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&providerResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &providerResp, nil
}
