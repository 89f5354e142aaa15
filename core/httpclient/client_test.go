package httpclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := f(req)
	if resp != nil && resp.Request == nil {
		resp.Request = req
	}
	return resp, err
}

func newTestClient(fn roundTripFunc, opts ...Option) *Client {
	opts = append([]Option{WithHTTPClient(&http.Client{Transport: fn})}, opts...)
	return NewClient(opts...)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDoDecodesJSON(t *testing.T) {
	cli := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"name":"Pizza","price":12.5}`), nil
	})
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://mock.local/x", nil)
	var out struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := cli.Do(req, &out); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if out.Name != "Pizza" || out.Price != 12.5 {
		t.Fatalf("unexpected decode result: %+v", out)
	}
}

func TestDoEmptyBodyIsSuccess(t *testing.T) {
	cli := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, ``), nil
	})
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "https://mock.local/x", nil)
	var out map[string]any
	if err := cli.Do(req, &out); err != nil {
		t.Fatalf("empty body should succeed: %v", err)
	}
}

func TestDoExtractsErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"json message", `{"message":"menu item not found"}`, "menu item not found"},
		{"json error field", `{"error":"bad credentials"}`, "bad credentials"},
		{"raw text", `something broke`, "something broke"},
		{"empty body", ``, http.StatusText(http.StatusBadRequest)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cli := newTestClient(func(r *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadRequest, tc.body), nil
			})
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://mock.local/x", nil)
			err := cli.Do(req, nil)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("want APIError, got %T: %v", err, err)
			}
			if apiErr.Message != tc.want {
				t.Fatalf("message = %q, want %q", apiErr.Message, tc.want)
			}
			if apiErr.Status != http.StatusBadRequest {
				t.Fatalf("status = %d", apiErr.Status)
			}
		})
	}
}

func TestDoWrapsNetworkError(t *testing.T) {
	cli := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://mock.local/x", nil)
	err := cli.Do(req, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("want NetworkError, got %T: %v", err, err)
	}
}

func TestDoSingleAttempt(t *testing.T) {
	attempts := 0
	cli := newTestClient(func(r *http.Request) (*http.Response, error) {
		attempts++
		return jsonResponse(http.StatusInternalServerError, `{"message":"boom"}`), nil
	})
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://mock.local/x", nil)
	if err := cli.Do(req, nil); err == nil {
		t.Fatal("want error on 500")
	}
	if attempts != 1 {
		t.Fatalf("attempts = %d, want exactly 1 (no retries)", attempts)
	}
}

func TestPrepareChainApplies(t *testing.T) {
	var gotAuth string
	cli := newTestClient(func(r *http.Request) (*http.Response, error) {
		gotAuth = r.Header.Get("Authorization")
		return jsonResponse(http.StatusOK, `{}`), nil
	}, WithMiddlewares(WithBearerToken(func() string { return "t1" })))
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://mock.local/x", nil)
	if err := cli.Do(req, nil); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
}

func TestDecodeErrorOnGarbage(t *testing.T) {
	cli := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{not-json`))),
		}, nil
	})
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://mock.local/x", nil)
	var out map[string]any
	err := cli.Do(req, &out)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("want DecodeError, got %T: %v", err, err)
	}
}
