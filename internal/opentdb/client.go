package opentdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultEndpoint is the Open Trivia Database question endpoint.
const DefaultEndpoint = "https://opentdb.com/api.php"

// DefaultAmount is the number of questions requested per quiz.
const DefaultAmount = 10

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// HTTPDoer abstracts HTTP clients used by the source.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client.
type Options struct {
	Endpoint   string
	Amount     int
	Category   int
	Difficulty string
	Type       string
	Timeout    time.Duration
	Client     HTTPDoer
}

// Client fetches question batches from the trivia endpoint.
type Client struct {
	endpoint   string
	amount     int
	category   int
	difficulty string
	kind       string
	client     HTTPDoer
}

// New constructs a client; zero options fall back to the public endpoint
// and a batch of DefaultAmount mixed questions.
func New(opts Options) *Client {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	amount := opts.Amount
	if amount <= 0 {
		amount = DefaultAmount
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		endpoint:   endpoint,
		amount:     amount,
		category:   opts.Category,
		difficulty: opts.Difficulty,
		kind:       opts.Type,
		client:     client,
	}
}

// URL returns the request URL including the query parameters.
func (c *Client) URL() (string, error) {
	parsed, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	query := parsed.Query()
	query.Set("amount", strconv.Itoa(c.amount))
	if c.category > 0 {
		query.Set("category", strconv.Itoa(c.category))
	}
	if c.difficulty != "" {
		query.Set("difficulty", c.difficulty)
	}
	if c.kind != "" {
		query.Set("type", c.kind)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// Fetch issues one GET and returns the decoded records.
// Errors wrap ErrNetwork, ErrMalformedResponse or ErrNonSuccessStatus.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	endpoint, err := c.URL()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, malformed("http %d", resp.StatusCode)
	}
	return ParseResponse(body)
}
