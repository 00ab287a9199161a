package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"net/url"
	"strconv"
)

// Links is the page link set of a collection response.
type Links struct {
	First string `json:"first,omitempty"`
	Self  string `json:"self,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Last  string `json:"last,omitempty"`
}

type pageEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Links *Links          `json:"links"`
}

// GetAllPages walks a paginated collection starting at page 1, yielding the
// data array of every page. Pages are requested only as the sequence is
// consumed; each range over the result starts again from page 1. An error
// is yielded once and ends the sequence.
func (c *Client) GetAllPages(ctx context.Context, endpoint string, opts RequestOptions) iter.Seq2[[]json.RawMessage, error] {
	return func(yield func([]json.RawMessage, error) bool) {
		page := 1
		for page > 0 {
			c.logger.InfoContext(ctx, "getting page", slog.Int("page", page))

			pageOpts := opts
			pageOpts.Page = page

			resp, err := c.Get(ctx, endpoint, pageOpts)
			if err != nil {
				yield(nil, err)
				return
			}

			var envelope pageEnvelope
			if err := resp.JSON(&envelope); err != nil {
				yield(nil, err)
				return
			}

			items, err := pageItems(envelope.Data)
			if err != nil {
				yield(nil, fmt.Errorf("page %d of %s: %w", page, endpoint, err))
				return
			}

			if !yield(items, nil) {
				return
			}

			var next string
			if envelope.Links != nil {
				next = envelope.Links.Next
			}

			page = NextPage(next)
			if next != "" && page == 0 {
				c.logger.DebugContext(ctx, "next link has no usable page parameter, stopping",
					slog.String("next", next))
			}
		}
	}
}

func pageItems(data json.RawMessage) ([]json.RawMessage, error) {
	items := []json.RawMessage{}

	if len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return items, nil
	}

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("data is not an array: %w", err)
	}

	return items, nil
}

// NextPage extracts the page query parameter of a next link. Zero means
// there is no further page.
func NextPage(next string) int {
	if next == "" {
		return 0
	}

	parsed, err := url.Parse(next)
	if err != nil {
		return 0
	}

	page, err := strconv.Atoi(parsed.Query().Get("page"))
	if err != nil || page < 1 {
		return 0
	}

	return page
}
