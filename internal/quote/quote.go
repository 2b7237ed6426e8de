// Package quote loads the motivation quote shown on the overview and
// motivation screens.
package quote

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/five82/focushub/internal/remote"
	"github.com/five82/focushub/internal/resource"
)

// DefaultURL serves one random quote per request.
const DefaultURL = "https://dummyjson.com/quotes/random"

const unknownAuthor = "Unknown"

// Quote is a single motivational line.
type Quote struct {
	Content string
	Author  string
}

// Source fetches quotes from a dummyjson-compatible endpoint.
type Source struct {
	getter   remote.Getter
	endpoint *url.URL
}

// NewSource builds a Source that reads from endpoint.
func NewSource(getter remote.Getter, endpoint *url.URL) *Source {
	return &Source{getter: getter, endpoint: endpoint}
}

// Fetch retrieves one quote. The payload must carry a non-blank "quote"
// field; a missing author becomes "Unknown".
func (s *Source) Fetch(ctx context.Context) (Quote, error) {
	var payload struct {
		Quote  string `json:"quote"`
		Author string `json:"author"`
	}
	if err := s.getter.GetJSON(ctx, remote.Request{URL: s.endpoint}, &payload); err != nil {
		var se *remote.StatusError
		if errors.As(err, &se) {
			return Quote{}, &resource.Error{
				Kind:   resource.ErrBadResponse,
				Detail: fmt.Sprintf("HTTP error! Status: %d.", se.StatusCode),
				Err:    err,
			}
		}
		return Quote{}, err
	}

	content := strings.TrimSpace(payload.Quote)
	if content == "" {
		return Quote{}, resource.BadResponse("Received invalid response from quote API.")
	}
	author := strings.TrimSpace(payload.Author)
	if author == "" {
		author = unknownAuthor
	}
	return Quote{Content: content, Author: author}, nil
}

// NewStore wraps source in a resource store with quote-specific messages.
func NewStore(source resource.Fetcher[Quote], opts ...resource.Option) *resource.Resource[Quote] {
	base := []resource.Option{
		resource.WithName("quote"),
		resource.WithMessage(Message),
	}
	return resource.New(source, append(base, opts...)...)
}

// Message renders a quote fetch failure.
func Message(err error) string {
	return "Failed to fetch quote. " + resource.Message(err)
}
