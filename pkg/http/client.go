package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Logger              HTTPLogger
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request to path.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) Get(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	return hc.do(ctx, call{method: GET, path: path, queryParams: queryParams, headers: headers, successResp: successResp, errorResp: errorResp})
}

// Post sends body to path.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) Post(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	return hc.do(ctx, call{method: POST, path: path, queryParams: queryParams, headers: headers, body: body, successResp: successResp, errorResp: errorResp})
}

// do performs c once. A non-2xx status is returned as an error together with the decoded error response.
func (hc *Client) do(ctx context.Context, c call) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, bodyBytes, err := hc.newRequest(ctx, c)
	if err != nil {
		return nil, nil, 0, err
	}

	method, requestURL := string(c.method), req.URL.String()
	logHeaders := flattenHeaders(req.Header)
	if hc.logger != nil {
		hc.logger.LogRequest(method, requestURL, logHeaders, string(bodyBytes))
	}

	start := time.Now()
	status, contentType, respBytes, err := hc.send(req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(method, requestURL, logHeaders, string(bodyBytes), status, "", latency, err)
		}
		return nil, nil, status, err
	}

	if status >= 200 && status < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(method, requestURL, logHeaders, string(bodyBytes), status, printableBody(contentType, respBytes), latency)
		}
		if c.successResp == nil {
			return nil, nil, status, nil
		}
		if err := hc.unmarshalResponse(respBytes, contentType, c.successResp); err != nil {
			return nil, nil, status, err
		}
		return c.successResp, nil, status, nil
	}

	statusErr := fmt.Errorf("http error: status %d", status)
	if hc.logger != nil {
		hc.logger.LogResponseError(method, requestURL, logHeaders, string(bodyBytes), status, printableBody(contentType, respBytes), latency, statusErr)
	}

	switch {
	case status == http.StatusNotFound && hc.dismiss404:
		return nil, nil, status, nil
	case c.errorResp == nil:
		return nil, nil, status, statusErr
	case hc.unmarshalResponse(respBytes, contentType, c.errorResp) != nil:
		// undecodable error bodies are dropped; the status is what matters
		return nil, nil, status, statusErr
	default:
		return nil, c.errorResp, status, statusErr
	}
}

// newRequest resolves the URL of c, encodes its body and applies default and per-call headers.
func (hc *Client) newRequest(ctx context.Context, c call) (*http.Request, []byte, error) {
	requestURL := hc.buildURL(c.path)
	if len(c.queryParams) > 0 {
		separator := "?"
		if strings.Contains(requestURL, "?") {
			separator = "&"
		}
		requestURL += separator + buildQueryString(c.queryParams)
	}

	bodyBytes, contentType, err := hc.encodeBody(c.body)
	if err != nil {
		return nil, nil, err
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, string(c.method), requestURL, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	return req, bodyBytes, nil
}

// send executes req and reads the whole body. The content type falls back to the client default.
func (hc *Client) send(req *http.Request) (int, string, []byte, error) {
	resp, err := hc.client.Do(req)
	if err != nil {
		return 0, "", nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = hc.defaultContentType
	}
	return resp.StatusCode, contentType, respBytes, nil
}

// encodeBody serializes the request body according to its type and the client's default content type.
func (hc *Client) encodeBody(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch body := body.(type) {
	case string:
		return []byte(body), "text/plain", nil
	case []byte:
		return body, "application/octet-stream", nil
	}

	switch hc.defaultContentType {
	case "application/xml":
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return xmlBody, "application/xml", nil
	case "text/plain":
		return []byte(fmt.Sprintf("%v", body)), "text/plain", nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return jsonBody, "application/json", nil
	}
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	// Extract the main content type (remove charset and other parameters)
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	if bytePtr, ok := target.(*[]byte); ok && isBinary(mainContentType) {
		*bytePtr = bodyBytes
		return nil
	}

	switch mainContentType {
	case "application/json", "application/problem+json":
		return json.Unmarshal(bodyBytes, target)
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		if isBinary(mainContentType) {
			return fmt.Errorf("cannot decode %s body into %T", mainContentType, target)
		}
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path.
// Absolute paths bypass the base URL.
func (hc *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return strings.TrimRight(hc.baseURL, "/") + path
}

// buildQueryString builds an escaped query string with keys in lexical order
func buildQueryString(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(params[key]))
	}

	return strings.Join(parts, "&")
}

func isBinary(contentType string) bool {
	return contentType == "application/octet-stream" || strings.HasPrefix(contentType, "image/")
}

func printableBody(contentType string, body []byte) string {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if isBinary(mainContentType) {
		return fmt.Sprintf("<%d bytes of %s>", len(body), mainContentType)
	}
	return string(body)
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for k, v := range header {
		flat[k] = strings.Join(v, ",")
	}
	return flat
}
