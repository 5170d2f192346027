package http

import (
	"context"
	"errors"
)

// RequestMethod represents the HTTP method for the request.
type RequestMethod string

const (
	GET  RequestMethod = "GET"
	POST RequestMethod = "POST"
)

// call is everything needed to perform one exchange.
type call struct {
	method      RequestMethod
	path        string
	queryParams map[string]string
	headers     map[string]string
	body        any
	successResp any
	errorResp   any
}

// Request is a fluent builder over a single call. It is not safe for concurrent use.
type Request struct {
	client *Client
	ctx    context.Context
	call   call
}

// NewHttpClientRequest creates a GET request of "/" on client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		client: client,
		ctx:    context.Background(),
		call:   call{method: GET, path: "/"},
	}
}

// WithContext bounds the request by ctx.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

func (r *Request) WithMethod(method RequestMethod) *Request {
	r.call.method = method
	return r
}

// WithPath sets the path for the request. An absolute URL replaces the client's base URL.
func (r *Request) WithPath(path string) *Request {
	r.call.path = path
	return r
}

func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.call.queryParams = params
	return r
}

// WithHeaders adds headers; they override the client's default headers.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	for k, v := range headers {
		r.WithHeader(k, v)
	}
	return r
}

func (r *Request) WithHeader(key, value string) *Request {
	if r.call.headers == nil {
		r.call.headers = make(map[string]string)
	}
	r.call.headers[key] = value
	return r
}

func (r *Request) WithBody(body any) *Request {
	r.call.body = body
	return r
}

// WithSuccessResp sets the target decoded on a 2xx response. A *[]byte receives image and octet-stream bodies as is.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.call.successResp = successResp
	return r
}

// WithErrorResp sets the target decoded on a non-2xx response.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.call.errorResp = errorResp
	return r
}

// Execute sends the request once and returns the success response, error response, status code, and error if any.
func (r *Request) Execute() (any, any, int, error) {
	switch {
	case r.client == nil:
		return nil, nil, 0, errors.New("client is required")
	case r.call.method == "":
		return nil, nil, 0, errors.New("method is required")
	case r.call.path == "":
		return nil, nil, 0, errors.New("path is required")
	}

	return r.client.do(r.ctx, r.call)
}
