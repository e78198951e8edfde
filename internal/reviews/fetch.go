package reviews

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewsByAppPath is the backend endpoint serving one app's reviews.
const ReviewsByAppPath = "/api/reviews_by_app"

// FetchByApp issues exactly one GET for the reviews of appID. A JSON null
// payload yields an empty, non-nil slice. Non-2xx answers return a
// *StatusError; malformed bodies return the decode error.
func (c *Client) FetchByApp(ctx context.Context, appID string) ([]Review, error) {
	params := url.Values{}
	params.Set("app_id", appID)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, ReviewsByAppPath, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	correlationID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(correlationHeader, correlationID)

	log := c.logger.With(
		zap.String("app_id", appID),
		zap.String("correlation_id", correlationID),
	)
	log.Debug("fetching reviews", zap.String("url", reqURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("reviews request failed", zap.Error(err))
		return nil, fmt.Errorf("fetch reviews for %s: %w", appID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: readSnippet(resp.Body)}
		log.Warn("reviews request rejected", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("fetch reviews for %s: %w", appID, statusErr)
	}

	var result []Review
	if err := decodeJSON(resp.Body, &result); err != nil {
		log.Warn("reviews payload malformed", zap.Error(err))
		return nil, fmt.Errorf("decode reviews for %s: %w", appID, err)
	}
	if result == nil {
		result = []Review{}
	}

	log.Debug("reviews fetched", zap.Int("count", len(result)))
	return result, nil
}
