package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/example/srsqueue/pkg/models"
)

// Options configures a Client
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// RequestsPerSecond limits outgoing calls; zero means unlimited
	RequestsPerSecond float64
}

// Client talks to the study server
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewClient creates an API client
func NewClient(opts Options, logger *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// UpdateQueue asks the server to rebuild the user's queue for lang
func (c *Client) UpdateQueue(ctx context.Context, lang string) error {
	q := url.Values{}
	q.Set("languageCode", lang)
	return c.do(ctx, http.MethodGet, "/v2/queue/update", q, nil, nil)
}

// Next returns the next batch of queued items
func (c *Client) Next(ctx context.Context, req NextRequest) (*Batch, error) {
	q := url.Values{}
	q.Set("languageCode", req.Lang)
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	setJoined(q, "lists", req.Lists)
	setJoined(q, "parts", req.Parts)
	setJoined(q, "sections", req.Sections)
	setJoined(q, "styles", req.Styles)

	var batch Batch
	if err := c.do(ctx, http.MethodGet, "/v2/queue/next", q, nil, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// ItemDetails fetches full detail for ids
func (c *Client) ItemDetails(ctx context.Context, req DetailRequest) (*DetailResponse, error) {
	q := url.Values{}
	setJoined(q, "ids", req.IDs)
	setFlag(q, "include_contained", req.IncludeContained)
	setFlag(q, "include_decomps", req.IncludeDecomps)
	setFlag(q, "include_heisigs", req.IncludeHeisigs)
	setFlag(q, "include_sentences", req.IncludeSentences)
	setFlag(q, "include_strokes", req.IncludeStrokes)
	setFlag(q, "include_top_mnemonics", req.IncludeTopMnemonics)
	setFlag(q, "include_vocabs", req.IncludeVocabs)

	var resp DetailResponse
	if err := c.do(ctx, http.MethodGet, "/v1/items", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Characters fetches stroke data for the given writings
func (c *Client) Characters(ctx context.Context, lang string, writings []string) ([]models.Character, error) {
	q := url.Values{}
	q.Set("languageCode", lang)
	setJoined(q, "writings", writings)

	var resp struct {
		Characters []models.Character `json:"Characters"`
	}
	if err := c.do(ctx, http.MethodGet, "/v2/characters", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Characters, nil
}

// DueCount returns the server's due counts keyed by part then style
func (c *Client) DueCount(ctx context.Context, req DueRequest) (models.DueCounts, error) {
	q := url.Values{}
	q.Set("languageCode", req.Lang)
	setJoined(q, "lists", req.Lists)
	setJoined(q, "parts", req.Parts)
	setJoined(q, "styles", req.Styles)

	var resp dueResponse
	if err := c.do(ctx, http.MethodGet, "/v1/items/due", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Due, nil
}

// ResetQueue drops the server-side queue for the user and language
func (c *Client) ResetQueue(ctx context.Context, userID, lang string) error {
	q := url.Values{}
	q.Set("languageCode", lang)
	return c.do(ctx, http.MethodGet, "/v2/queue/reset/"+url.PathEscape(userID), q, nil, nil)
}

// AddItem adds new items from the user's lists
func (c *Client) AddItem(ctx context.Context, req AddRequest) (*AddResponse, error) {
	q := url.Values{}
	q.Set("lang", req.Lang)
	setJoined(q, "lists", req.Lists)
	q.Set("offset", strconv.Itoa(req.Offset))

	var resp AddResponse
	if err := c.do(ctx, http.MethodPost, "/v1/items/add", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitReviews posts graded reviews in one call
func (c *Client) SubmitReviews(ctx context.Context, reviews []models.GradedReview) error {
	if len(reviews) == 0 {
		return nil
	}
	return c.do(ctx, http.MethodPost, "/v1/reviews", nil, reviews, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

func setJoined(q url.Values, key string, values []string) {
	if len(values) > 0 {
		q.Set(key, strings.Join(values, "|"))
	}
}

func setFlag(q url.Values, key string, on bool) {
	if on {
		q.Set(key, "true")
	}
}
