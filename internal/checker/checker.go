package checker

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Messages for outcomes that never produced a response.
const (
	MsgEmptyURL         = "Please enter a URL"
	MsgInvalidURL       = "Invalid URL format"
	MsgConnectionFailed = "Connection failed: Network error or site unreachable"
)

const DefaultTimeout = 5 * time.Second

// Result is the outcome of a single connectivity check.
//
// Status is the HTTP status code, or 0 when no response was obtained
// (bad input or transport failure). ResponseTimeMS stays 0 unless a
// request actually ran to completion.
type Result struct {
	Status         int     `json:"status"`
	Success        bool    `json:"success"`
	Message        string  `json:"message"`
	ResponseTimeMS float64 `json:"response_time_ms"`
}

// Checker performs a single check for a raw user-supplied URL.
type Checker interface {
	Check(ctx context.Context, input string) Result
}

type HTTPChecker struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

// Check validates input, issues one HEAD request, and classifies the
// outcome. Every failure resolves to a normal Result with Success=false;
// nothing is surfaced as an error to the caller.
func (c *HTTPChecker) Check(ctx context.Context, input string) Result {
	if input == "" {
		return Result{Message: MsgEmptyURL}
	}

	u, err := url.Parse(input)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Result{Message: MsgInvalidURL}
	}

	// Explicit deadline on top of Client.Timeout, so the bound holds
	// regardless of which one the transport honors.
	cctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(cctx, http.MethodHead, u.String(), nil)
	if err != nil {
		return Result{Message: MsgInvalidURL}
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		// Refused connection, DNS failure and timeout all collapse into
		// the same message; partially elapsed time is discarded.
		return Result{Message: MsgConnectionFailed}
	}
	defer resp.Body.Close()

	elapsed := time.Since(start).Seconds() * 1000 // ms
	return Result{
		Status:         resp.StatusCode,
		Success:        resp.StatusCode >= 200 && resp.StatusCode < 300,
		Message:        StatusText(resp.StatusCode),
		ResponseTimeMS: elapsed,
	}
}
