package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/idna"

	"github.com/octobees/company-lookup/api/internal/entity"
	"github.com/octobees/company-lookup/api/internal/requestid"
)

// CompanyFetcher retrieves a single company profile from the registry.
type CompanyFetcher interface {
	FetchCompany(ctx context.Context, number string) (entity.CompanyRecord, error)
}

// UpstreamError reports a failed registry call. StatusCode mirrors the
// registry response, or 502 when no usable response was received.
type UpstreamError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return e.Message
}

// Client talks to the Companies House REST API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient builds a registry client. A nil http.Client gets a 15s default.
func NewClient(client *http.Client, baseURL, apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("registry api key must not be empty")
	}

	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{client: client, baseURL: normalized, apiKey: apiKey}, nil
}

// FetchCompany performs GET /company/{number} and decodes the profile.
func (c *Client) FetchCompany(ctx context.Context, number string) (entity.CompanyRecord, error) {
	endpoint := c.baseURL + "/company/" + url.PathEscape(number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.CompanyRecord{}, badGateway(fmt.Sprintf("failed to create registry request: %v", err))
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if rid := requestid.From(ctx); rid != "" {
		req.Header.Set(requestid.Header, rid)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.CompanyRecord{}, badGateway(fmt.Sprintf("registry request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode < http.StatusBadRequest {
		return entity.CompanyRecord{}, badGateway(fmt.Sprintf("unexpected registry status %d %s for url: %s", resp.StatusCode, http.StatusText(resp.StatusCode), endpoint))
	}
	if resp.StatusCode != http.StatusOK {
		return entity.CompanyRecord{}, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    statusMessage(resp.StatusCode, endpoint, resp.Body),
		}
	}

	var profile struct {
		CompanyName   string   `json:"company_name"`
		CompanyNumber string   `json:"company_number"`
		SICCodes      []string `json:"sic_codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return entity.CompanyRecord{}, badGateway(fmt.Sprintf("could not decode registry response: %v", err))
	}
	if profile.SICCodes == nil {
		profile.SICCodes = []string{}
	}

	return entity.CompanyRecord{
		Name:     profile.CompanyName,
		Number:   profile.CompanyNumber,
		SICCodes: profile.SICCodes,
	}, nil
}

func badGateway(message string) *UpstreamError {
	return &UpstreamError{StatusCode: http.StatusBadGateway, Message: message}
}

// statusMessage renders an error status as "<code> Client Error: <reason> for url: <url>",
// followed by the registry's own error code when the body carries one.
func statusMessage(status int, endpoint string, body io.Reader) string {
	kind := "Client Error"
	if status >= http.StatusInternalServerError {
		kind = "Server Error"
	}
	msg := fmt.Sprintf("%d %s: %s for url: %s", status, kind, http.StatusText(status), endpoint)
	if detail := extractRegistryError(body); detail != "" {
		msg += " (" + detail + ")"
	}
	return msg
}

func extractRegistryError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}

	var payload struct {
		Errors []struct {
			Error string `json:"error"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && len(payload.Errors) > 0 {
		return payload.Errors[0].Error
	}
	return ""
}

func normalizeBaseURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse registry base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("registry base url must be absolute, got %q", raw)
	}

	host := parsed.Hostname()
	if net.ParseIP(host) == nil {
		if host, err = idna.Lookup.ToASCII(host); err != nil {
			return "", fmt.Errorf("invalid registry host %q: %w", parsed.Hostname(), err)
		}
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if port := parsed.Port(); port != "" {
		host = host + ":" + port
	}
	parsed.Host = host

	return strings.TrimRight(parsed.String(), "/"), nil
}

var _ CompanyFetcher = (*Client)(nil)
