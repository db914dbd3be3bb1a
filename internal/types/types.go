package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors surfaced as inline messages in the TUI.
var (
	ErrEmptyURL  = errors.New("URL cannot be empty")
	ErrBadScheme = errors.New("URL must start with http:// or https://")
	ErrEmptyKey  = errors.New("key cannot be empty")
)

// Method is one of the supported HTTP methods.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
)

// Methods returns the supported methods in dropdown order.
func Methods() []Method {
	return []Method{MethodGet, MethodPost, MethodPut, MethodDelete}
}

// MethodFromIndex maps a dropdown index back to a Method.
// Out-of-range indices fall back to GET.
func MethodFromIndex(i int) Method {
	if i < 0 || i > int(MethodDelete) {
		return MethodGet
	}
	return Method(i)
}

func (m Method) String() string {
	switch m {
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	default:
		return "GET"
	}
}

// Pair is a single key/value entry for headers or query parameters.
type Pair struct {
	Key   string
	Value string
}

// PairList is an ordered collection of pairs. Insertion order is
// preserved and duplicate keys are allowed; lookups are last-write-wins.
type PairList []Pair

// Add appends a pair after trimming surrounding whitespace from the key.
// An empty key (after trimming) is rejected with ErrEmptyKey.
func (p *PairList) Add(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	*p = append(*p, Pair{Key: key, Value: value})
	return nil
}

// Get returns the value for key, taking the last entry when the key
// appears more than once. The second return reports whether the key exists.
func (p PairList) Get(key string) (string, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Key == key {
			return p[i].Value, true
		}
	}
	return "", false
}

// Clone returns an independent copy, so an in-flight request never shares
// backing storage with the tab that issued it.
func (p PairList) Clone() PairList {
	if p == nil {
		return nil
	}
	out := make(PairList, len(p))
	copy(out, p)
	return out
}

// RequestSpec describes one editable HTTP exchange. It is owned by a
// single tab and mutated only through that tab's edit buffers.
type RequestSpec struct {
	Method  Method
	URL     string
	Headers PairList
	Params  PairList
	Body    string
}

// Validate checks the spec is sendable. Method is structurally valid by
// construction, so only the URL needs a runtime check.
func (r *RequestSpec) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrEmptyURL
	}
	if !strings.HasPrefix(r.URL, "http://") && !strings.HasPrefix(r.URL, "https://") {
		return ErrBadScheme
	}
	return nil
}

// Clone deep-copies the spec for handoff to the executor.
func (r *RequestSpec) Clone() RequestSpec {
	return RequestSpec{
		Method:  r.Method,
		URL:     r.URL,
		Headers: r.Headers.Clone(),
		Params:  r.Params.Clone(),
		Body:    r.Body,
	}
}

// Response contains the raw result of a completed HTTP exchange.
// The body is stored unconditionally regardless of content type;
// display formatting happens at render time.
type Response struct {
	Status     int
	StatusText string
	Headers    PairList
	Body       string
	Elapsed    time.Duration
}

// ContentType returns the response Content-Type header, if present.
func (r *Response) ContentType() string {
	v, _ := r.Headers.Get("Content-Type")
	return v
}

// Phase tracks where a tab's response is in its lifecycle.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhasePending
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "empty"
	}
}

// ResponseState is the per-tab response lifecycle. Transitions are
// strictly forward: Empty → Pending → {Succeeded, Failed} → Pending on
// re-send. Result is non-nil only in the Succeeded phase and Err is
// non-empty only in the Failed phase.
type ResponseState struct {
	Phase  Phase
	Result *Response
	Err    string
}

// Pending builds the in-flight state, discarding any prior result.
func Pending() ResponseState {
	return ResponseState{Phase: PhasePending}
}

// Succeeded builds the terminal success state.
func Succeeded(r *Response) ResponseState {
	return ResponseState{Phase: PhaseSucceeded, Result: r}
}

// Failed builds the terminal failure state with a display message.
func Failed(msg string) ResponseState {
	return ResponseState{Phase: PhaseFailed, Err: msg}
}

func (s ResponseState) String() string {
	switch s.Phase {
	case PhaseSucceeded:
		return fmt.Sprintf("succeeded (%d)", s.Result.Status)
	case PhaseFailed:
		return fmt.Sprintf("failed (%s)", s.Err)
	default:
		return s.Phase.String()
	}
}
