package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Generate generates content based on the prompt.
func (g *geminiImpl) Generate(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, url.QueryEscape(g.apiKey))

	req := Request{
		Contents: []Content{
			{
				Role:  roleUser,
				Parts: []Part{{Text: prompt}},
			},
		},
	}

	body, statusCode, err := g.httpClient.Post(ctx, endpoint, req, nil)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	if statusCode < 200 || statusCode > 299 {
		return "", &UpstreamError{StatusCode: statusCode, Body: string(body)}
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return resp.Text(), nil
}
