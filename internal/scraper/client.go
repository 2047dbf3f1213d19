package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/config"
	"github.com/dg4329-hash/menumap/internal/model"
)

const userAgent = "menumap-scraper/1.0"

type siteInfoResponse struct {
	Status string `json:"status"`
	Site   struct {
		ID string `json:"id"`
	} `json:"site"`
}

type locationDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type buildingDTO struct {
	Name      string        `json:"name"`
	Locations []locationDTO `json:"locations"`
}

type locationsResponse struct {
	Status    string        `json:"status"`
	Buildings []buildingDTO `json:"buildings"`
	Locations []locationDTO `json:"locations"`
}

type periodDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type periodsResponse struct {
	Status  string      `json:"status"`
	Closed  bool        `json:"closed"`
	Periods []periodDTO `json:"periods"`
}

type nutrientDTO struct {
	Name         string          `json:"name"`
	Value        json.RawMessage `json:"value"`
	ValueNumeric json.RawMessage `json:"value_numeric"`
}

type filterDTO struct {
	Name string `json:"name"`
}

type itemDTO struct {
	Name      string        `json:"name"`
	Desc      string        `json:"desc"`
	Nutrients []nutrientDTO `json:"nutrients"`
	Filters   []filterDTO   `json:"filters"`
}

type categoryDTO struct {
	Name  string    `json:"name"`
	Items []itemDTO `json:"items"`
}

type menuPeriodDTO struct {
	Categories []categoryDTO `json:"categories"`
}

type menuResponse struct {
	Menu *struct {
		Periods json.RawMessage `json:"periods"`
	} `json:"menu"`
}

// Client fetches menu data from the dineoncampus API. Every request is
// retried with exponential backoff before it counts as failed.
type Client struct {
	baseURL    string
	siteSlug   string
	maxRetries int
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a dining API client from the scraper configuration.
func NewClient(cfg config.ScraperConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		siteSlug:   cfg.SiteSlug,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger.With().Str("component", "dining-api").Logger(),
	}
}

// SiteID resolves the configured site slug to its API id.
func (c *Client) SiteID(ctx context.Context) (string, error) {
	var resp siteInfoResponse
	path := fmt.Sprintf("/sites/%s/info", c.siteSlug)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return "", err
	}
	if resp.Status != "success" {
		return "", fmt.Errorf("site info returned status %q", resp.Status)
	}
	if resp.Site.ID == "" {
		return "", fmt.Errorf("site info missing site id")
	}
	return resp.Site.ID, nil
}

// Locations lists every dining location for the site. Locations inside a
// building carry the building name; standalone ones are appended after,
// skipping ids already seen.
func (c *Client) Locations(ctx context.Context, siteID string) ([]model.Location, error) {
	var resp locationsResponse
	path := fmt.Sprintf("/locations/all_locations?platform=0&site_id=%s&for_menus=true&with_buildings=true", siteID)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("locations returned status %q", resp.Status)
	}

	var locations []model.Location
	seen := map[string]bool{}

	for _, building := range resp.Buildings {
		buildingName := building.Name
		if buildingName == "" {
			buildingName = "Unknown"
		}
		for _, loc := range building.Locations {
			locations = append(locations, model.Location{
				ID:       loc.ID,
				Name:     loc.Name,
				Building: buildingName,
			})
			seen[loc.ID] = true
		}
	}

	for _, loc := range resp.Locations {
		if seen[loc.ID] {
			continue
		}
		locations = append(locations, model.Location{ID: loc.ID, Name: loc.Name})
	}

	return locations, nil
}

// Periods lists the meal periods a location serves on a date. The closed
// flag is set when the API reports the location closed that day.
func (c *Client) Periods(ctx context.Context, locationID, date string) ([]periodDTO, bool, error) {
	var resp periodsResponse
	path := fmt.Sprintf("/location/%s/periods?platform=0&date=%s", locationID, date)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, false, err
	}
	if resp.Status != "success" {
		return nil, false, fmt.Errorf("periods returned status %q", resp.Status)
	}
	if resp.Closed {
		return nil, true, nil
	}
	return resp.Periods, false, nil
}

// Menu fetches the categories served during one period. A response with
// no menu section yields no categories rather than an error.
func (c *Client) Menu(ctx context.Context, locationID, periodID, date string) ([]categoryDTO, error) {
	var resp menuResponse
	path := fmt.Sprintf("/location/%s/periods/%s?platform=0&date=%s", locationID, periodID, date)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	if resp.Menu == nil {
		return nil, nil
	}
	return decodeCategories(resp.Menu.Periods), nil
}

// decodeCategories handles the two shapes the menu periods field arrives
// in: a single object on most menus, a list on some older locations.
func decodeCategories(raw json.RawMessage) []categoryDTO {
	if len(raw) == 0 {
		return nil
	}

	var one menuPeriodDTO
	if err := json.Unmarshal(raw, &one); err == nil {
		return one.Categories
	}

	var many []menuPeriodDTO
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		return many[0].Categories
	}

	return nil
}

// getJSON fetches a path and decodes the body, retrying transient
// failures. Client errors other than 429 fail immediately.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + path

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return backoff.Permanent(err)
			}
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("request gave up")
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return nil
}
