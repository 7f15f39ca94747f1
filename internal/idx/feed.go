package idx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension"
)

const feedPath = "/primary/NewsAnnouncement/GetSuspension"

// feedResponse mirrors the GetSuspension JSON envelope.
type feedResponse struct {
	Results []suspension.AnnouncementEntry `json:"Results"`
}

// FetchAnnouncements lists suspension announcement entries in the
// [from, to] window. Dates use the feed's YYYYMMDD form. A missing or
// null Results array is an empty batch, not an error; only transport
// failure propagates.
func (c *Client) FetchAnnouncements(ctx context.Context, from, to string) ([]suspension.AnnouncementEntry, error) {
	query := url.Values{
		"indexFrom": {"1"},
		"dateFrom":  {from},
		"dateTo":    {to},
		"pageSize":  {"9999"},
		"lang":      {"en"},
		"type":      {"spt"},
	}
	feedURL := c.baseURL + feedPath + "?" + query.Encode()

	body, err := c.get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcement feed: %w", err)
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode announcement feed: %w", err)
	}

	if feed.Results == nil {
		c.logger.Warn("announcement feed returned no results",
			slog.String("from", from), slog.String("to", to))
		return nil, nil
	}

	c.logger.Info("fetched announcement feed",
		slog.Int("entries", len(feed.Results)),
		slog.String("from", from), slog.String("to", to))
	return feed.Results, nil
}
