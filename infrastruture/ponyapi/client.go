package ponyapi

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

	"github.com/beka-birhanu/pony-escape/domain"
	"github.com/beka-birhanu/pony-escape/maze"
	"go.uber.org/zap"
)

const maxErrorBody = 512

// ErrUnexpectedStatus is returned when the maze service answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected maze service status")

// Client implements i.MazeService over HTTP.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	logger         *zap.Logger
	requestTimeout time.Duration
}

// NewClient creates a client for the service rooted at baseURL,
// e.g. https://ponychallenge.trustpilot.com/pony-challenge/maze.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger, rt time.Duration) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid maze service url %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     httpClient,
		logger:         logger,
		requestTimeout: rt,
	}, nil
}

// Create implements i.MazeService.
func (c *Client) Create(ctx context.Context, req domain.CreateRequest) (string, error) {
	body := CreateRequest{
		Width:      req.Width,
		Height:     req.Height,
		PlayerName: req.PlayerName,
		Difficulty: req.Difficulty,
	}

	var res CreateResponse
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL, body, &res); err != nil {
		return "", err
	}
	if res.MazeID == "" {
		return "", fmt.Errorf("%w: empty maze id", ErrMalformedResponse)
	}
	return res.MazeID, nil
}

// Fetch implements i.MazeService.
func (c *Client) Fetch(ctx context.Context, mazeID string) (*domain.Snapshot, error) {
	var res MazeResponse
	if err := c.doJSON(ctx, http.MethodGet, c.mazeURL(mazeID), nil, &res); err != nil {
		return nil, err
	}
	if res.MazeID == "" {
		res.MazeID = mazeID
	}
	return DecodeMaze(&res)
}

// Move implements i.MazeService.
func (c *Client) Move(ctx context.Context, mazeID string, d maze.Direction) (*domain.MoveResult, error) {
	var res MoveResponse
	if err := c.doJSON(ctx, http.MethodPost, c.mazeURL(mazeID), MoveRequest{Direction: string(d)}, &res); err != nil {
		return nil, err
	}
	return DecodeMove(&res), nil
}

// Render implements i.MazeService.
func (c *Client) Render(ctx context.Context, mazeID string) (string, error) {
	payload, err := c.do(ctx, http.MethodGet, c.mazeURL(mazeID)+"/print", nil)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func (c *Client) mazeURL(mazeID string) string {
	return c.baseURL + "/" + url.PathEscape(mazeID)
}

func (c *Client) doJSON(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	payload, err := c.do(ctx, method, target, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// do sends a single request. There is no retry; callers decide whether to restart.
func (c *Client) do(ctx context.Context, method, target string, body io.Reader) ([]byte, error) {
	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("maze service request failed", zap.String("method", method), zap.String("url", target), zap.Error(err))
		return nil, err
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("maze service response", zap.String("method", method), zap.String("url", target), zap.Int("status", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		snippet := string(payload)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, fmt.Errorf("%w: %s %s: %d %s", ErrUnexpectedStatus, method, target, res.StatusCode, strings.TrimSpace(snippet))
	}
	return payload, nil
}
