package imgbb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// ErrNotConfigured is returned when no API key was provided at startup.
var ErrNotConfigured = errors.New("imgbb api key not configured")

// Client talks to the ImgBB upload endpoint
type Client struct {
	apiKey     string
	uploadURL  string
	httpClient *http.Client
}

func NewClient(apiKey, uploadURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		uploadURL:  uploadURL,
		httpClient: &http.Client{},
	}
}

// Configured reports whether an API key is available. Uploads must not be
// attempted without one.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends a base64-encoded image to ImgBB and returns the hosted URL.
// name is the filename to register on the host, without extension.
func (c *Client) Upload(ctx context.Context, imageBase64, name string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("image", imageBase64); err != nil {
		return "", err
	}
	if err := writer.WriteField("name", name); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	url := c.uploadURL + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	var result uploadResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("imgbb returned an unreadable response: status %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		// Prefer the host's own message over a generic one
		if result.Error.Message != "" {
			return "", errors.New(result.Error.Message)
		}
		return "", fmt.Errorf("imgbb upload failed: status %d", resp.StatusCode)
	}

	if result.Data.URL == "" {
		return "", errors.New("imgbb did not return an image url")
	}

	return result.Data.URL, nil
}
