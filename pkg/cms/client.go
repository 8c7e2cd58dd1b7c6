package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"letterboxd/pkg/utils"

	"go.uber.org/zap"
)

// ErrNotFound is matched (errors.Is) by any 404 from the content API.
var ErrNotFound = errors.New("cms: not found")

// APIError is a non-2xx answer from the content API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cms: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Object is the envelope every bucket object shares. Metadata is decoded
// by the caller into the type-specific shape.
type Object struct {
	ID         string          `json:"id"`
	Slug       string          `json:"slug"`
	Title      string          `json:"title"`
	Content    string          `json:"content,omitempty"`
	Type       string          `json:"type"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	CreatedAt  string          `json:"created_at,omitempty"`
	ModifiedAt string          `json:"modified_at,omitempty"`
}

type FindResult struct {
	Objects []Object `json:"objects"`
	Total   int      `json:"total"`
}

// InsertRequest creates a new object.
type InsertRequest struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Slug     string `json:"slug,omitempty"`
	Content  string `json:"content,omitempty"`
	Metadata any    `json:"metadata,omitempty"`
}

// Client is the query surface of the content API.
type Client interface {
	Find(ctx context.Context, q Query) (*FindResult, error)
	FindOne(ctx context.Context, q Query) (*Object, error)
	InsertOne(ctx context.Context, req InsertRequest) (*Object, error)
}

// HTTPClient talks to a bucket over HTTPS.
type HTTPClient struct {
	baseURL  string
	bucket   string
	readKey  string
	writeKey string
	http     *http.Client
	log      *zap.Logger
}

func NewClient(config utils.CMSConfig, log *zap.Logger) *HTTPClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPClient{
		baseURL:  strings.TrimRight(config.BaseURL, "/"),
		bucket:   config.BucketSlug,
		readKey:  config.ReadKey,
		writeKey: config.WriteKey,
		http:     &http.Client{Timeout: timeout},
		log:      log.With(zap.String("client", "cms")),
	}
}

func (c *HTTPClient) objectsURL() string {
	return fmt.Sprintf("%s/buckets/%s/objects", c.baseURL, c.bucket)
}

func (c *HTTPClient) Find(ctx context.Context, q Query) (*FindResult, error) {
	values := q.Values()
	if c.readKey != "" {
		values.Set("read_key", c.readKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.objectsURL()+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	var result FindResult
	if err := c.do(req, &result); err != nil {
		c.log.Debug("Find failed",
			zap.String("type", q.Type),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Debug("Find completed",
		zap.String("type", q.Type),
		zap.Int("count", len(result.Objects)),
		zap.Duration("duration", time.Since(start)),
	)
	return &result, nil
}

// FindOne returns the first object matching q, or ErrNotFound.
func (c *HTTPClient) FindOne(ctx context.Context, q Query) (*Object, error) {
	result, err := c.Find(ctx, q.WithLimit(1))
	if err != nil {
		return nil, err
	}
	if len(result.Objects) == 0 {
		return nil, &APIError{StatusCode: http.StatusNotFound, Message: "no object matched"}
	}
	return &result.Objects[0], nil
}

func (c *HTTPClient) InsertOne(ctx context.Context, in InsertRequest) (*Object, error) {
	if c.writeKey == "" {
		return nil, errors.New("cms: write key not configured")
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode object: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.objectsURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.writeKey)

	var result struct {
		Object Object `json:"object"`
	}
	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	c.log.Info("Object inserted",
		zap.String("type", in.Type),
		zap.String("id", result.Object.ID),
	)
	return &result.Object, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// The query carries the read key.
		var ue *url.Error
		if errors.As(err, &ue) {
			safe := *req.URL
			safe.RawQuery = ""
			ue.URL = safe.String()
		}
		return fmt.Errorf("cms request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode cms response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body struct {
		Message string `json:"message"`
	}
	msg := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		msg = body.Message
	}

	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

// IsNotFound reports whether err means "no such object".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
