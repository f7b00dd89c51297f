package service

import (
	"context"
	"encoding/json"

	"querydesk/internal/model"

	"github.com/valyala/fasthttp"
)

// HTTPClient posts queries to a single backend endpoint.
// It is safe for concurrent use.
type HTTPClient struct {
	endpoint string
	client   *fasthttp.Client
}

func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		client:   &fasthttp.Client{Name: "querydesk"},
	}
}

func (h *HTTPClient) Endpoint() string {
	return h.endpoint
}

// Execute sends the query as-is and normalizes whatever comes back.
// There is no timeout unless ctx carries a deadline.
func (h *HTTPClient) Execute(ctx context.Context, query string) (model.QueryResponse, error) {
	body, err := json.Marshal(model.QueryRequest{Query: query})
	if err != nil {
		return model.QueryResponse{}, &BackendError{Message: "encode request", Err: err}
	}

	if err := ctx.Err(); err != nil {
		return model.QueryResponse{}, &NetworkError{Endpoint: h.endpoint, Err: err}
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(h.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if deadline, ok := ctx.Deadline(); ok {
		err = h.client.DoDeadline(req, resp, deadline)
	} else {
		err = h.client.Do(req, resp)
	}
	if err != nil {
		return model.QueryResponse{}, &NetworkError{Endpoint: h.endpoint, Err: err}
	}

	return Normalize(resp.StatusCode(), resp.Body())
}
