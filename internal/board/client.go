package board

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/clawboard/boardlens/internal/types"
)

// Client talks to the board API. All calls are bounded by the HTTP client
// timeout and paced by the rate limiter so detail enrichment over a large
// corpus does not hammer the API.
type Client struct {
	baseURL    string
	token      string
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a board client for baseURL authenticating with token.
// requestsPerSecond of 0 disables rate limiting.
func NewClient(baseURL, token string, timeout time.Duration, requestsPerSecond float64) *Client {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
	}
}

// TaskDetails is a task enriched with its full comment thread.
type TaskDetails struct {
	Task     *types.Task     `json:"task"`
	Comments []types.Comment `json:"comments"`
}

// Tasks fetches up to limit recent tasks. Failures are FetchErrors: without a
// corpus the run cannot proceed.
func (c *Client) Tasks(ctx context.Context, limit int) ([]types.Task, error) {
	u := fmt.Sprintf("%s/tasks?limit=%d&sort=recent", c.baseURL, limit)

	var resp struct {
		Tasks []types.Task `json:"tasks"`
	}
	if err := c.get(ctx, u, &resp); err != nil {
		return nil, &FetchError{URL: u, Err: err}
	}
	return resp.Tasks, nil
}

// Details fetches a single task's record and its comments.
func (c *Client) Details(ctx context.Context, taskID string) (*TaskDetails, error) {
	taskURL := fmt.Sprintf("%s/tasks/%s", c.baseURL, url.PathEscape(taskID))

	var taskResp struct {
		Task *types.Task `json:"task"`
	}
	if err := c.get(ctx, taskURL, &taskResp); err != nil {
		return nil, &DetailFetchError{TaskID: taskID, Err: err}
	}

	commentsURL := taskURL + "/comments"
	var commentsResp struct {
		Comments []types.Comment `json:"comments"`
	}
	if err := c.get(ctx, commentsURL, &commentsResp); err != nil {
		return nil, &DetailFetchError{TaskID: taskID, Err: err}
	}

	return &TaskDetails{Task: taskResp.Task, Comments: commentsResp.Comments}, nil
}

func (c *Client) get(ctx context.Context, u string, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("board returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
