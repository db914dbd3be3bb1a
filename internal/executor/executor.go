package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"

	"restless/internal/types"
)

// Execute performs one HTTP exchange described by spec and returns the
// raw result. The caller bounds the call with ctx; exceeding a deadline
// surfaces as a timeout via IsTimeout. Non-2xx statuses are not errors:
// every completed exchange produces a Response.
func Execute(ctx context.Context, spec types.RequestSpec) (*types.Response, error) {
	rb := requests.
		URL(spec.URL).
		Method(spec.Method.String())

	for _, h := range spec.Headers {
		rb = rb.Header(h.Key, h.Value)
	}
	for _, p := range spec.Params {
		rb = rb.Param(p.Key, p.Value)
	}
	if spec.Body != "" {
		rb = rb.BodyBytes([]byte(spec.Body))
	}

	var result *types.Response
	startTime := time.Now()

	// Disable the default status validator so 4xx/5xx still produce a
	// response, then capture everything ourselves.
	err := rb.
		AddValidator(nil).
		Handle(func(res *http.Response) error {
			defer res.Body.Close()
			body, readErr := io.ReadAll(res.Body)
			if readErr != nil {
				return fmt.Errorf("failed to read response body: %w", readErr)
			}
			result = &types.Response{
				Status:     res.StatusCode,
				StatusText: res.Status,
				Headers:    flattenHeaders(res.Header),
				Body:       string(body),
			}
			return nil
		}).
		Fetch(ctx)

	elapsed := time.Since(startTime)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	result.Elapsed = elapsed
	return result, nil
}

// IsTimeout reports whether err was caused by the request deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// flattenHeaders converts response headers to an ordered pair list.
// Go's header map loses wire order, so keys are sorted for a stable display.
func flattenHeaders(h http.Header) types.PairList {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(types.PairList, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Pair{Key: k, Value: strings.Join(h[k], ", ")})
	}
	return out
}

// FormatDuration renders an elapsed time for the status line.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// IsSuccessStatus returns true if status code is 2xx.
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// IsClientErrorStatus returns true if status code is 4xx.
func IsClientErrorStatus(status int) bool {
	return status >= 400 && status < 500
}

// IsServerErrorStatus returns true if status code is 5xx.
func IsServerErrorStatus(status int) bool {
	return status >= 500 && status < 600
}
