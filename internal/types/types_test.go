package types

import (
	"errors"
	"testing"
)

func TestPairList_PreservesInsertionOrder(t *testing.T) {
	var list PairList
	entries := []Pair{
		{"Accept", "application/json"},
		{"X-Trace", "a"},
		{"X-Trace", "b"},
		{"Authorization", "Bearer token"},
	}
	for _, e := range entries {
		if err := list.Add(e.Key, e.Value); err != nil {
			t.Fatalf("Add(%q, %q) returned error: %v", e.Key, e.Value, err)
		}
	}

	if len(list) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(list))
	}
	for i, e := range entries {
		if list[i] != e {
			t.Errorf("entry %d: expected %v, got %v", i, e, list[i])
		}
	}
}

func TestPairList_GetIsLastWriteWins(t *testing.T) {
	var list PairList
	list.Add("X-Trace", "first")
	list.Add("Accept", "text/plain")
	list.Add("X-Trace", "second")

	v, ok := list.Get("X-Trace")
	if !ok {
		t.Fatal("expected X-Trace to be found")
	}
	if v != "second" {
		t.Errorf("expected last write to win, got %q", v)
	}

	if _, ok := list.Get("Missing"); ok {
		t.Error("expected missing key to report not found")
	}
}

func TestPairList_AddTrimsKeys(t *testing.T) {
	var list PairList
	if err := list.Add("  Content-Type  ", "application/json"); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if list[0].Key != "Content-Type" {
		t.Errorf("expected trimmed key, got %q", list[0].Key)
	}
}

func TestPairList_AddRejectsEmptyKey(t *testing.T) {
	var list PairList
	for _, key := range []string{"", "   ", "\t"} {
		if err := list.Add(key, "value"); !errors.Is(err, ErrEmptyKey) {
			t.Errorf("Add(%q) error = %v, want ErrEmptyKey", key, err)
		}
	}
	if len(list) != 0 {
		t.Errorf("rejected adds must not mutate the list, got %d entries", len(list))
	}
}

func TestPairList_CloneIsIndependent(t *testing.T) {
	var list PairList
	list.Add("Accept", "application/json")

	clone := list.Clone()
	clone[0].Value = "text/html"
	list.Add("X-Extra", "1")

	if list[0].Value != "application/json" {
		t.Error("mutating the clone leaked into the original")
	}
	if len(clone) != 1 {
		t.Error("appending to the original leaked into the clone")
	}
}

func TestRequestSpec_Validate(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want error
	}{
		{"empty", "", ErrEmptyURL},
		{"whitespace", "   ", ErrEmptyURL},
		{"ftp scheme", "ftp://example.com", ErrBadScheme},
		{"no scheme", "example.com/path", ErrBadScheme},
		{"http", "http://example.com", nil},
		{"https", "https://jsonplaceholder.typicode.com/posts/1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := RequestSpec{Method: MethodGet, URL: tt.url}
			err := spec.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRequestSpec_CloneIsDeep(t *testing.T) {
	spec := RequestSpec{Method: MethodPost, URL: "https://example.com"}
	spec.Headers.Add("Content-Type", "application/json")
	spec.Params.Add("page", "1")

	clone := spec.Clone()
	clone.Headers[0].Value = "text/plain"
	clone.Params[0].Value = "2"

	if spec.Headers[0].Value != "application/json" {
		t.Error("clone shares header storage with the original")
	}
	if spec.Params[0].Value != "1" {
		t.Error("clone shares param storage with the original")
	}
}

func TestMethod_String(t *testing.T) {
	want := map[Method]string{
		MethodGet:    "GET",
		MethodPost:   "POST",
		MethodPut:    "PUT",
		MethodDelete: "DELETE",
	}
	for m, s := range want {
		if m.String() != s {
			t.Errorf("Method(%d).String() = %q, want %q", m, m.String(), s)
		}
	}
}

func TestMethodFromIndex(t *testing.T) {
	for i, m := range Methods() {
		if MethodFromIndex(i) != m {
			t.Errorf("MethodFromIndex(%d) = %v, want %v", i, MethodFromIndex(i), m)
		}
	}
	if MethodFromIndex(-1) != MethodGet || MethodFromIndex(99) != MethodGet {
		t.Error("out-of-range index should fall back to GET")
	}
}

func TestResponseState_Builders(t *testing.T) {
	empty := ResponseState{}
	if empty.Phase != PhaseEmpty {
		t.Errorf("zero value phase = %v, want PhaseEmpty", empty.Phase)
	}

	pending := Pending()
	if pending.Phase != PhasePending || pending.Result != nil || pending.Err != "" {
		t.Errorf("Pending() = %+v, want bare pending state", pending)
	}

	ok := Succeeded(&Response{Status: 200})
	if ok.Phase != PhaseSucceeded || ok.Result == nil || ok.Result.Status != 200 {
		t.Errorf("Succeeded() = %+v", ok)
	}

	failed := Failed("connection refused")
	if failed.Phase != PhaseFailed || failed.Err != "connection refused" || failed.Result != nil {
		t.Errorf("Failed() = %+v", failed)
	}
}

func TestResponse_ContentType(t *testing.T) {
	r := Response{}
	r.Headers.Add("Content-Type", "application/json; charset=utf-8")
	if got := r.ContentType(); got != "application/json; charset=utf-8" {
		t.Errorf("ContentType() = %q", got)
	}

	var none Response
	if got := none.ContentType(); got != "" {
		t.Errorf("ContentType() on headerless response = %q, want empty", got)
	}
}
