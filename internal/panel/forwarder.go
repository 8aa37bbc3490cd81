// Package panel implements the public-tier HTTP surface under /api. The
// panel authenticates external callers, validates payloads against the shared
// schema, and relays each command to the control tier over HTTP, mirroring
// the control tier's verdict back to the caller.
package panel

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/voxctl/voxctl/internal/auth"
	"github.com/voxctl/voxctl/internal/model"
	"github.com/voxctl/voxctl/internal/requestid"
)

// Forwarder is the panel's HTTP client for the control tier. Every request
// carries the internal shared secret and the caller's request id, and runs
// under a fixed timeout so a wedged control tier cannot pin panel workers.
type Forwarder struct {
	client *resty.Client
}

func NewForwarder(baseURL, internalKey string, timeout time.Duration) *Forwarder {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader(auth.ControlKeyHeader, internalKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &Forwarder{client: client}
}

// Forward relays one command and returns the control tier's status and raw
// body. Transport failure (unreachable, timeout) is classified as an upstream
// error; a control-tier error response is NOT an error here, it is a verdict
// the caller passes through.
func (f *Forwarder) Forward(ctx context.Context, method, path string, body interface{}) (int, []byte, error) {
	req := f.client.R().SetContext(ctx)
	if id := requestid.FromContext(ctx); id != "" {
		req.SetHeader(requestid.Header, id)
	}
	if body != nil {
		req.SetBody(body)
	}

	var resp *resty.Response
	var err error
	switch method {
	case http.MethodGet:
		resp, err = req.Get(path)
	default:
		resp, err = req.Post(path)
	}
	if err != nil {
		return 0, nil, model.Upstreamf("control tier unreachable: %v", err)
	}
	return resp.StatusCode(), resp.Body(), nil
}
