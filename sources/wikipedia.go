package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"otter-agent/config"

	"go.uber.org/zap"
)

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikiSummaryResponse struct {
	Extract string `json:"extract"`
}

// Wikipedia resolves a query in two steps: a title search against the
// MediaWiki action API, then a summary fetch for the top-ranked title from
// the REST API. The winning label records which page the extract came from.
type Wikipedia struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger
}

func NewWikipedia(cfg *config.Config, logger *zap.Logger) *Wikipedia {
	return &Wikipedia{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.SourceTimeout},
		logger:     logger,
	}
}

func (w *Wikipedia) Name() string {
	return "Wikipedia"
}

func (w *Wikipedia) Lookup(ctx context.Context, query string) Result {
	title, err := w.searchTitle(ctx, query)
	if err != nil {
		w.logger.Debug("Wikipedia title search failed", zap.String("query", query), zap.Error(err))
		return Result{}
	}
	if title == "" {
		return Result{}
	}

	extract, err := w.pageSummary(ctx, title)
	if err != nil {
		w.logger.Debug("Wikipedia summary fetch failed", zap.String("title", title), zap.Error(err))
		return Result{}
	}
	if strings.TrimSpace(extract) == "" {
		return Result{}
	}
	return Result{Text: strings.TrimSpace(extract), Label: "Wikipedia: " + title}
}

func (w *Wikipedia) searchTitle(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.cfg.SourceTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("format", "json")
	params.Set("srlimit", "1")
	params.Set("srsearch", query)
	endpoint := w.cfg.WikipediaAPIURL + "?" + params.Encode()

	body, err := w.get(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("title search: %w", err)
	}

	var sr wikiSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return "", fmt.Errorf("decode title search response: %w", err)
	}
	if len(sr.Query.Search) == 0 {
		return "", nil
	}
	return sr.Query.Search[0].Title, nil
}

func (w *Wikipedia) pageSummary(ctx context.Context, title string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.cfg.SourceTimeout)
	defer cancel()

	endpoint := strings.TrimRight(w.cfg.WikipediaRESTURL, "/") + "/" + url.PathEscape(title)

	body, err := w.get(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("summary fetch: %w", err)
	}

	var sum wikiSummaryResponse
	if err := json.Unmarshal(body, &sum); err != nil {
		return "", fmt.Errorf("decode summary response: %w", err)
	}
	return sum.Extract, nil
}

func (w *Wikipedia) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// Wikipedia asks API consumers to identify themselves.
	req.Header.Set("User-Agent", "otter-agent/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}
