package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// searchFields is the projection requested from the search endpoint.
const searchFields = "title,author_name,subject,first_publish_year,number_of_pages_median"

// Search performs one catalog search. A transport error or non-2xx status
// is returned to the caller; there are no retries.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]Book, error) {
	return c.searchWithURL(ctx, baseURL, params)
}

// searchWithURL performs a search against a custom endpoint (for testing).
func (c *Client) searchWithURL(ctx context.Context, endpoint string, params SearchParams) ([]Book, error) {
	query := url.Values{}

	q := fmt.Sprintf("subject:%q", params.Subject)
	if params.Language != "" {
		q += " AND language:" + params.Language
	}
	query.Set("q", q)
	query.Set("fields", searchFields)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultNumResults
	}
	if limit > maxNumResults {
		limit = maxNumResults
	}
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.doRequest(ctx, endpoint+"?"+query.Encode())
	if err != nil {
		return nil, wrapError("search", err)
	}

	var resp struct {
		NumFound int    `json:"numFound"`
		Docs     []Book `json:"docs"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("search", fmt.Errorf("parse response: %w", err))
	}

	// Validate at the boundary; a bad document is dropped, not fatal.
	books := make([]Book, 0, len(resp.Docs))
	for i := range resp.Docs {
		b := resp.Docs[i]
		if err := c.validate.Validate(b); err != nil {
			c.logger.Warn("dropping invalid record", "title", b.Title, "error", err)
			continue
		}
		books = append(books, b)
	}

	c.logger.Info("catalog search complete",
		"matched", resp.NumFound,
		"returned", len(resp.Docs),
		"kept", len(books),
	)

	return books, nil
}
