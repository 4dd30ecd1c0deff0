package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every upstream call so a hung backend surfaces as a
// uniform 500 instead of stalling the caller.
const DefaultTimeout = 10 * time.Second

const genericErrorMessage = "Internal server error"

// Client forwards requests to the upstream REST backend. All routes reduce
// to Forward: attach the caller's bearer token, call upstream, map the
// response into the one error envelope the UI depends on.
type Client struct {
	baseURL string
	http    *http.Client
}

// Upstream is the shared client, set once from main. Tests point it at a
// httptest server.
var Upstream *Client

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Result is a successful (2xx) upstream response.
type Result struct {
	Status int
	Body   json.RawMessage
}

// APIError is the uniform error envelope. Status is what the proxy returns
// to the browser; Message goes into the response's "error" field. Callers
// must branch on Status only, never on Message text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Message)
}

// Forward performs one upstream call. body, when non-nil, is sent as JSON.
// The token is attached verbatim; the upstream owns verification.
func (c *Client) Forward(ctx context.Context, method, path, token string, body any) (*Result, *APIError) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			log.Printf("upstream %s %s: marshal body: %v", method, path, err)
			return nil, &APIError{Status: http.StatusInternalServerError, Message: genericErrorMessage}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		log.Printf("upstream %s %s: build request: %v", method, path, err)
		return nil, &APIError{Status: http.StatusInternalServerError, Message: genericErrorMessage}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, token)
}

// ForwardMultipart streams a file upload through to the upstream documents
// or submissions resource without buffering it to disk.
func (c *Client) ForwardMultipart(ctx context.Context, path, token string, file *multipart.FileHeader, fields map[string]string) (*Result, *APIError) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	fw, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		log.Printf("upstream upload %s: create form file: %v", path, err)
		return nil, &APIError{Status: http.StatusInternalServerError, Message: genericErrorMessage}
	}
	src, err := file.Open()
	if err != nil {
		log.Printf("upstream upload %s: open file: %v", path, err)
		return nil, &APIError{Status: http.StatusInternalServerError, Message: genericErrorMessage}
	}
	defer src.Close()
	if _, err := io.Copy(fw, src); err != nil {
		log.Printf("upstream upload %s: copy file: %v", path, err)
		return nil, &APIError{Status: http.StatusInternalServerError, Message: genericErrorMessage}
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			log.Printf("upstream upload %s: write field %s: %v", path, key, err)
			return nil, &APIError{Status: http.StatusInternalServerError, Message: genericErrorMessage}
		}
	}
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		log.Printf("upstream upload %s: build request: %v", path, err)
		return nil, &APIError{Status: http.StatusInternalServerError, Message: genericErrorMessage}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, token)
}

func (c *Client) do(req *http.Request, token string) (*Result, *APIError) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport detail stays in the server log, never in the envelope.
		log.Printf("upstream %s %s: %v", req.Method, req.URL.Path, err)
		return nil, &APIError{Status: http.StatusInternalServerError, Message: genericErrorMessage}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("upstream %s %s: read body: %v", req.Method, req.URL.Path, err)
		return nil, &APIError{Status: http.StatusInternalServerError, Message: genericErrorMessage}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Result{Status: resp.StatusCode, Body: data}, nil
	}
	return nil, upstreamError(resp.StatusCode, data)
}

// upstreamError propagates the upstream's own message when it supplies one
// (message, then error, then a fallback) together with its status code.
func upstreamError(status int, body []byte) *APIError {
	var envelope struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			message = envelope.Message
		} else if envelope.Err != "" {
			message = envelope.Err
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Message: message}
}
