package content

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lecternapp/lectern/pkg/errcodes"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
)

// Client retrieves book documents and catalogue metadata from the remote
// content service. The service is read-only and versionless, so fetched
// documents are treated as permanently valid once cached.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logger.New(),
	}
}

type indexResponse struct {
	Books []*models.BookMetadata `json:"books"`
}

// FetchAvailableBooks returns the book catalogue for a language. Any failure
// falls back to the built-in canon so navigation never blocks on a missing
// index; book content remains separately retrievable either way. This is the
// one fetch whose errors are never propagated.
func (c *Client) FetchAvailableBooks(ctx context.Context, languageCode string) []*models.BookMetadata {
	url := fmt.Sprintf("%s/%s/index.json", c.baseURL, languageCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Err(err).Warn("index request error, using default canon", logger.Data{"language_code": languageCode})
		return DefaultCanon()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Err(err).Warn("index fetch error, using default canon", logger.Data{"language_code": languageCode})
		return DefaultCanon()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("index fetch returned non-success, using default canon", logger.Data{
			"language_code": languageCode,
			"status":        resp.StatusCode,
		})
		return DefaultCanon()
	}

	index := indexResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&index); err != nil {
		c.log.Err(err).Warn("index parse error, using default canon", logger.Data{"language_code": languageCode})
		return DefaultCanon()
	}

	return index.Books
}

// FetchBook retrieves one book document. Unlike the catalogue index, a
// failure here is fatal to the read that requested it and is propagated;
// retry and fallback policy belongs to the caller.
func (c *Client) FetchBook(ctx context.Context, languageCode, fileName string) (*models.BookDocument, error) {
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, languageCode, fileName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s/%s", languageCode, fileName)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errcodes.FetchFailed(fmt.Sprintf("%s/%s", languageCode, fileName), resp.StatusCode)
	}

	doc := &models.BookDocument{}
	if err := json.NewDecoder(resp.Body).Decode(doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s/%s", languageCode, fileName)
	}

	return doc, nil
}
