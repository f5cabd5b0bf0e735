package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// SearchResults is the subset of the SERP API response the extractor reads.
type SearchResults struct {
	AnswerBox      *AnswerBox      `json:"answer_box"`
	KnowledgeGraph *KnowledgeGraph `json:"knowledge_graph"`
	OrganicResults []OrganicResult `json:"organic_results"`
}

type AnswerBox struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type KnowledgeGraph struct {
	Title      string        `json:"title"`
	Attributes []KGAttribute `json:"attributes"`
}

type KGAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type OrganicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Client talks to the SERP API. The zero value is not usable; construct with
// NewClient.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient constructs a client against the public SERP API. The key is
// resolved per request, not here: package-level clients are built before
// godotenv has loaded the environment.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

func (c *Client) key() string {
	if c.apiKey != "" {
		return c.apiKey
	}
	return os.Getenv("SERP_API_KEY")
}

// Search issues one Google-engine search scoped to India.
func (c *Client) Search(ctx context.Context, query string, num int) (*SearchResults, error) {
	apiKey := c.key()
	if apiKey == "" {
		return nil, fmt.Errorf("SERP API configuration missing. Please add SERP_API_KEY to your environment variables")
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", apiKey)
	params.Set("num", fmt.Sprintf("%d", num))
	params.Set("gl", "in")
	params.Set("hl", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach SERP API: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SERP API request failed with status: %d", resp.StatusCode)
	}

	var results SearchResults
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse SERP response: %v", err)
	}

	return &results, nil
}

// LookupResult is the tagged outcome of a live market data lookup: either
// extracted data points or a clearly-labeled fallback estimate.
type LookupResult struct {
	Data        []DataPoint
	SearchQuery string
	Fallback    bool
}

// Lookup runs the full acquisition pipeline: primary query, one alternate
// query when extraction comes back empty, then the fallback synthesizer.
// An HTTP failure on the primary query is returned to the caller; the
// alternate attempt is best-effort.
func (c *Client) Lookup(ctx context.Context, query, location string) (*LookupResult, error) {
	searchQuery := BuildSearchQuery(query)

	results, err := c.Search(ctx, searchQuery, 20)
	if err != nil {
		return nil, err
	}

	data := Process(results, query, location)

	if len(data) == 0 {
		altQuery := BuildAlternateQuery(query)
		if altResults, altErr := c.Search(ctx, altQuery, 15); altErr == nil {
			data = Process(altResults, query, location)
		}
	}

	if len(data) == 0 {
		return &LookupResult{
			Data:        Fallback(query, location),
			SearchQuery: searchQuery,
			Fallback:    true,
		}, nil
	}

	return &LookupResult{
		Data:        data,
		SearchQuery: searchQuery,
	}, nil
}
