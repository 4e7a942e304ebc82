package probe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"gchat-cardbot/internal/domain/model"
	"gchat-cardbot/internal/domain/ports"
)

// maxTitleBytes bounds how much of a target's page is read when looking for
// its <title>.
const maxTitleBytes = 64 << 10

// HTTPChecker implements StatusProvider by issuing a GET per target and
// recording status, latency and the page title.
type HTTPChecker struct {
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.StatusProvider = (*HTTPChecker)(nil)

// New creates an HTTPChecker.
func New(timeout time.Duration, logger ports.Logger) *HTTPChecker {
	return &HTTPChecker{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// CheckTargets probes every target sequentially. A failing target never fails
// the whole run; its result records the error instead.
func (c *HTTPChecker) CheckTargets(ctx context.Context, targets []model.Target) ([]model.CheckResult, error) {
	results := make([]model.CheckResult, 0, len(targets))
	for _, target := range targets {
		results = append(results, c.check(ctx, target))
	}
	return results, nil
}

func (c *HTTPChecker) check(ctx context.Context, target model.Target) model.CheckResult {
	result := model.CheckResult{Target: target}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.URL, nil)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	result.Latency = time.Since(start)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn(ctx, "target unreachable", "target", target.Name, "error", err)
		}
		result.Err = err.Error()
		return result
	}
	defer resp.Body.Close()

	result.Status = resp.StatusCode
	result.Up = resp.StatusCode >= 200 && resp.StatusCode < 400
	result.PageTitle = extractTitle(io.LimitReader(resp.Body, maxTitleBytes))
	return result
}

// extractTitle returns the text of the first <title> element, or "".
func extractTitle(r io.Reader) string {
	node, err := html.Parse(r)
	if err != nil {
		return ""
	}
	title := findTitle(node)
	return strings.TrimSpace(title)
}

func findTitle(node *html.Node) string {
	if node.Type == html.ElementNode && node.Data == "title" {
		var builder strings.Builder
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				builder.WriteString(child.Data)
			}
		}
		return builder.String()
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if title := findTitle(child); title != "" {
			return title
		}
	}
	return ""
}
