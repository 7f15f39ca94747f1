package idx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension/registry"
)

// DefaultRegistryPageURL lists stocks suspended for more than six months;
// the page links the downloadable spreadsheet.
const DefaultRegistryPageURL = DefaultBaseURL + "/id/perusahaan-tercatat/suspensi-6-bulan/"

// ErrRegistryLinkNotFound indicates the long-suspension page carried no
// spreadsheet link.
var ErrRegistryLinkNotFound = errors.New("no .xlsx link on long-suspension page")

// FetchRegistry scrapes pageURL for the first .xlsx link, downloads the
// spreadsheet, and loads it into a Registry.
func (c *Client) FetchRegistry(ctx context.Context, pageURL string) (registry.Registry, error) {
	if pageURL == "" {
		pageURL = DefaultRegistryPageURL
	}

	page, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch long-suspension page: %w", err)
	}

	href, err := findXLSXLink(page)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(href, "/") {
		href = c.baseURL + href
	}
	c.logger.Info("found long-suspension spreadsheet", slog.String("url", href))

	sheet, err := c.get(ctx, href)
	if err != nil {
		return nil, fmt.Errorf("failed to download registry spreadsheet: %w", err)
	}
	return registry.FromXLSX(bytes.NewReader(sheet))
}

// findXLSXLink walks the page DOM for the first anchor whose href ends
// in .xlsx.
func findXLSXLink(page []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("failed to parse long-suspension page: %w", err)
	}

	var walk func(n *html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && strings.HasSuffix(attr.Val, ".xlsx") {
					return attr.Val
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if href := walk(child); href != "" {
				return href
			}
		}
		return ""
	}

	if href := walk(doc); href != "" {
		return href, nil
	}
	return "", ErrRegistryLinkNotFound
}
