// Package holidayjp looks up Japanese public holidays via the holidays-jp
// JSON API. Responses are cached per year: the holiday calendar for a past
// or current year never changes, and the upcoming year changes at most a
// few times after cabinet announcements, so process-lifetime caching is
// fine for a booking service.
package holidayjp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const dateFormat = "2006-01-02"

// Logger is the logging interface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client fetches and caches the national holiday calendar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger

	mu    sync.Mutex
	years map[int]map[string]string // year -> date -> holiday name
}

// NewClient creates a holiday calendar client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:   log,
		years: make(map[int]map[string]string),
	}
}

// IsHoliday reports whether date is a Japanese public holiday. The first
// lookup for a year fetches that year's calendar; later lookups hit the
// cache.
func (c *Client) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	year := date.Year()

	c.mu.Lock()
	defer c.mu.Unlock()

	holidays, ok := c.years[year]
	if !ok {
		fetched, err := c.fetchYear(ctx, year)
		if err != nil {
			return false, err
		}
		c.years[year] = fetched
		holidays = fetched
		c.log.Info("holidayjp: cached %d holidays for year %d", len(fetched), year)
	}

	_, isHoliday := holidays[date.Format(dateFormat)]
	return isHoliday, nil
}

func (c *Client) fetchYear(ctx context.Context, year int) (map[string]string, error) {
	url := fmt.Sprintf("%s/v1/%d/date.json", c.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var holidays map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return holidays, nil
}
