package project

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const postcodeAPIBaseURL = "https://api.postcodeapi.nu/v3"

// PostcodeClient resolves Dutch postcodes to street and city via
// postcodeapi.nu. Without an API key every lookup returns nil.
type PostcodeClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewPostcodeClient(apiKey string) *PostcodeClient {
	return &PostcodeClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: postcodeAPIBaseURL,
		apiKey:  apiKey,
	}
}

// PostcodeResult is the resolved address for a postcode and house
// number.
type PostcodeResult struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postcode"`
}

// Lookup resolves a postcode and house number. A missing API key and
// an unknown postcode both return nil without an error, so callers can
// treat the lookup as best-effort address completion.
func (c *PostcodeClient) Lookup(ctx context.Context, postcode, houseNumber string) (*PostcodeResult, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	postcode = strings.ToUpper(strings.ReplaceAll(postcode, " ", ""))

	url := fmt.Sprintf("%s/lookup/%s/%s", c.baseURL, postcode, houseNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for postcode %s", resp.StatusCode, postcode)
	}

	var result PostcodeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}
