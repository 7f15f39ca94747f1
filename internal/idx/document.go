package idx

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DocumentText downloads the announcement PDF at ref (a path relative to
// the site root) and returns its plain text with page boundaries
// flattened. Satisfies the pipeline's DocumentProvider.
func (c *Client) DocumentText(ctx context.Context, ref string) (string, error) {
	body, err := c.get(ctx, c.baseURL+ref)
	if err != nil {
		return "", fmt.Errorf("failed to download document %s: %w", ref, err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", fmt.Errorf("failed to open document %s: %w", ref, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract page %d of %s: %w", i, ref, err)
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
