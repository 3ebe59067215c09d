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

const maxResponseBytes = 1 << 20 // 1MB cap on source payloads

// duckDuckGoResponse mirrors the Instant Answer API schema, limited to the
// fields we extract from.
type duckDuckGoResponse struct {
	AbstractText  string            `json:"AbstractText"`
	RelatedTopics []duckDuckGoTopic `json:"RelatedTopics"`
}

type duckDuckGoTopic struct {
	Text   string            `json:"Text"`
	Result string            `json:"Result"`
	Topics []duckDuckGoTopic `json:"Topics"`
}

// DuckDuckGo queries the DuckDuckGo Instant Answer API. Extraction prefers
// the top-level abstract; when that is empty it takes the first related topic
// that carries any text.
type DuckDuckGo struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger
}

func NewDuckDuckGo(cfg *config.Config, logger *zap.Logger) *DuckDuckGo {
	return &DuckDuckGo{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.SourceTimeout},
		logger:     logger,
	}
}

func (d *DuckDuckGo) Name() string {
	return "DuckDuckGo"
}

func (d *DuckDuckGo) Lookup(ctx context.Context, query string) Result {
	text, err := d.instantAnswer(ctx, query)
	if err != nil {
		d.logger.Debug("DuckDuckGo lookup failed", zap.String("query", query), zap.Error(err))
		return Result{}
	}
	if strings.TrimSpace(text) == "" {
		return Result{}
	}
	return Result{Text: text, Label: "DuckDuckGo"}
}

func (d *DuckDuckGo) instantAnswer(ctx context.Context, query string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.SourceTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_redirect", "1")
	params.Set("skip_disambig", "1")
	endpoint := strings.TrimRight(d.cfg.DuckDuckGoURL, "/") + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create instant answer request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send instant answer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("instant answer status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read instant answer response: %w", err)
	}

	var ia duckDuckGoResponse
	if err := json.Unmarshal(body, &ia); err != nil {
		return "", fmt.Errorf("decode instant answer response: %w", err)
	}

	if strings.TrimSpace(ia.AbstractText) != "" {
		return strings.TrimSpace(ia.AbstractText), nil
	}
	return firstTopicText(ia.RelatedTopics), nil
}

// firstTopicText walks related topics in order, descending into nested topic
// groups, and returns the first one with usable text. The Result field holds
// an HTML fragment, so it goes through the HTML stripper when Text is empty.
func firstTopicText(topics []duckDuckGoTopic) string {
	for _, topic := range topics {
		if text := strings.TrimSpace(topic.Text); text != "" {
			return text
		}
		if topic.Result != "" {
			if text := htmlText(topic.Result); text != "" {
				return text
			}
		}
		if len(topic.Topics) > 0 {
			if text := firstTopicText(topic.Topics); text != "" {
				return text
			}
		}
	}
	return ""
}
