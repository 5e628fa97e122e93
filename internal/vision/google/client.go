// Package google implements the OCR port against the Google Cloud Vision
// REST API using DOCUMENT_TEXT_DETECTION.
package google

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hanainplan/internal/config"
	"hanainplan/internal/domain"
	"hanainplan/internal/port"
)

const defaultEndpoint = "https://vision.googleapis.com/v1/images:annotate"

// Client calls the Vision images:annotate endpoint. Authentication is either
// a plain API key or a service-account credential file exchanged for a
// short-lived access token.
type Client struct {
	apiKey      string
	credentials string
	endpoint    string
	client      *http.Client
}

// NewClient creates a Vision client from config.
func NewClient(cfg *config.VisionConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:      cfg.APIKey,
		credentials: cfg.CredentialsPath,
		endpoint:    endpoint,
		client:      &http.Client{Timeout: timeout},
	}
}

// NewClientWithEndpoint creates a client pointing at a custom endpoint (for testing).
func NewClientWithEndpoint(cfg *config.VisionConfig, endpoint string) *Client {
	c := NewClient(cfg)
	c.endpoint = endpoint
	return c
}

type visionImage struct {
	Content string `json:"content"`
}

type visionFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type visionRequest struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type annotateRequest struct {
	Requests []visionRequest `json:"requests"`
}

type annotateResponse struct {
	Responses []struct {
		FullTextAnnotation struct {
			Text string `json:"text"`
		} `json:"fullTextAnnotation"`
		TextAnnotations []struct {
			Description  string `json:"description"`
			BoundingPoly struct {
				Vertices []struct {
					X int `json:"x"`
					Y int `json:"y"`
				} `json:"vertices"`
			} `json:"boundingPoly"`
		} `json:"textAnnotations"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

// Annotate runs document text detection on one encoded page image.
func (c *Client) Annotate(ctx context.Context, imageBytes []byte) (*port.Annotation, error) {
	reqBody := annotateRequest{
		Requests: []visionRequest{{
			Image:    visionImage{Content: base64.StdEncoding.EncodeToString(imageBytes)},
			Features: []visionFeature{{Type: "DOCUMENT_TEXT_DETECTION", MaxResults: 1}},
		}},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := c.endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	switch {
	case c.apiKey != "":
		q := req.URL.Query()
		q.Set("key", c.apiKey)
		req.URL.RawQuery = q.Encode()
	case c.credentials != "":
		token, err := c.accessToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("obtaining access token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	default:
		return nil, fmt.Errorf("vision: no api key or credentials configured")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling vision API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseAnnotation(respBody)
}

func parseAnnotation(body []byte) (*port.Annotation, error) {
	var result annotateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(result.Responses) == 0 {
		return &port.Annotation{}, nil
	}

	r := result.Responses[0]
	if r.Error.Message != "" {
		return nil, fmt.Errorf("vision API: %s", r.Error.Message)
	}

	ann := &port.Annotation{FullText: r.FullTextAnnotation.Text}

	// The first annotation is the whole page block; individual tokens follow.
	if len(r.TextAnnotations) > 1 {
		ann.Tokens = make([]domain.Token, 0, len(r.TextAnnotations)-1)
		for _, ta := range r.TextAnnotations[1:] {
			tok := domain.Token{Text: ta.Description}
			for _, v := range ta.BoundingPoly.Vertices {
				tok.Vertices = append(tok.Vertices, domain.Vertex{X: v.X, Y: v.Y})
			}
			ann.Tokens = append(ann.Tokens, tok)
		}
	}

	return ann, nil
}

// accessToken exchanges the service-account credential for a cloud-vision
// scoped bearer token.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	credData, err := os.ReadFile(c.credentials)
	if err != nil {
		return "", fmt.Errorf("reading credentials file: %w", err)
	}

	var creds struct {
		ClientEmail string `json:"client_email"`
		PrivateKey  string `json:"private_key"`
		TokenURI    string `json:"token_uri"`
	}
	if err := json.Unmarshal(credData, &creds); err != nil {
		return "", fmt.Errorf("parsing credentials: %w", err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(creds.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("parsing private key: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   creds.ClientEmail,
		"sub":   creds.ClientEmail,
		"aud":   creds.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
		"scope": "https://www.googleapis.com/auth/cloud-vision",
	}
	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("signing assertion: %w", err)
	}

	form := url.Values{}
	form.Set("grant_type", "urn:ietf:params:oauth:grant-type:jwt-bearer")
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, creds.TokenURI,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange failed (status %d): %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	return tokenResp.AccessToken, nil
}
