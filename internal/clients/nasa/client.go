package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yungbote/neowatch-backend/internal/apierr"
	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/neo"
)

const DefaultBaseURL = "https://api.nasa.gov/neo/rest/v1"

// Client talks to the NASA NeoWs REST API. Responses come back both
// decoded and as the raw body so the cache layer can store bytes verbatim.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(apiKey, baseURL string, timeout time.Duration, baseLog *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        baseLog.With("client", "NasaClient"),
	}
}

// FetchFeed retrieves the close-approach feed for an inclusive date window.
// Dates must already be validated YYYY-MM-DD strings.
func (c *Client) FetchFeed(ctx context.Context, startDate, endDate string) (*neo.FeedPayload, []byte, error) {
	params := url.Values{
		"start_date": {startDate},
		"end_date":   {endDate},
		"api_key":    {c.apiKey},
	}

	body, err := c.doRequest(ctx, c.baseURL+"/feed?"+params.Encode())
	if err != nil {
		return nil, nil, err
	}

	var payload neo.FeedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, apierr.Upstream(http.StatusBadGateway, fmt.Errorf("decode feed response: %w", err))
	}
	return &payload, body, nil
}

// FetchLookup retrieves the full record for one NEO by its NeoWs ID.
func (c *Client) FetchLookup(ctx context.Context, neoID string) (*neo.RawNeoRecord, []byte, error) {
	params := url.Values{"api_key": {c.apiKey}}

	body, err := c.doRequest(ctx, c.baseURL+"/neo/"+url.PathEscape(neoID)+"?"+params.Encode())
	if err != nil {
		if apierr.From(err).Status == http.StatusNotFound {
			return nil, nil, apierr.NotFound("NEO %s not found", neoID)
		}
		return nil, nil, err
	}

	var record neo.RawNeoRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, nil, apierr.Upstream(http.StatusBadGateway, fmt.Errorf("decode lookup response: %w", err))
	}
	return &record, body, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, apierr.Upstream(http.StatusBadGateway, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and network failures surface as a gateway error, never
		// the raw transport error (the URL embeds the API key).
		c.log.Warn("NASA request failed", "error", err.Error())
		return nil, apierr.Upstream(http.StatusBadGateway, fmt.Errorf("nasa request failed"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Upstream(http.StatusBadGateway, fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("NASA returned non-200", "status", resp.StatusCode)
		return nil, apierr.Upstream(resp.StatusCode, fmt.Errorf("nasa API error: status %d", resp.StatusCode))
	}

	return body, nil
}
