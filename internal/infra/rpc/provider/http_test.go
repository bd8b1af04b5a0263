package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func newNode(t *testing.T, handler func(req map[string]any) (int, any)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode body: %v", err)
			return
		}
		status, body := handler(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if s, ok := body.(string); ok {
			_, _ = w.Write([]byte(s))
			return
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHTTPProvider_Call_Envelope(t *testing.T) {
	server := newNode(t, func(req map[string]any) (int, any) {
		if v, ok := req["jsonrpc"].(string); !ok || v != "2.0" {
			t.Errorf("expected jsonrpc: 2.0, got %v", req["jsonrpc"])
		}
		if req["method"] != "sui_getTotalTransactionBlocks" {
			t.Errorf("unexpected method %v", req["method"])
		}
		params, ok := req["params"].([]any)
		if !ok || len(params) != 0 {
			t.Errorf("expected empty params array, got %#v", req["params"])
		}
		return http.StatusOK, map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": "2981023311"}
	})

	p := NewHTTPProvider("test", server.URL, 5*time.Second)

	result, err := p.Call(context.Background(), "sui_getTotalTransactionBlocks", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != `"2981023311"` {
		t.Errorf("unexpected result %s", result)
	}
}

func TestHTTPProvider_Call_RequestIDsIncrease(t *testing.T) {
	var mu sync.Mutex
	var ids []float64
	server := newNode(t, func(req map[string]any) (int, any) {
		mu.Lock()
		ids = append(ids, req["id"].(float64))
		mu.Unlock()
		return http.StatusOK, map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": nil}
	})

	p := NewHTTPProvider("test", server.URL, 5*time.Second)
	for i := 0; i < 3; i++ {
		if _, err := p.Call(context.Background(), "sui_getSystemState", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	want := []float64{1, 2, 3}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("request %d: expected id %v, got %v", i, want[i], id)
		}
	}
	if p.LastRequestID() != 3 {
		t.Errorf("expected last id 3, got %d", p.LastRequestID())
	}
}

func TestHTTPProvider_Call_RequestIDsUniqueUnderConcurrency(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[float64]bool)
	server := newNode(t, func(req map[string]any) (int, any) {
		mu.Lock()
		seen[req["id"].(float64)] = true
		mu.Unlock()
		return http.StatusOK, map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": 1}
	})

	p := NewHTTPProvider("test", server.URL, 5*time.Second)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = p.Call(context.Background(), "m", nil)
		}()
	}
	wg.Wait()

	if len(seen) != 20 {
		t.Errorf("expected 20 distinct ids, got %d", len(seen))
	}
}

func TestHTTPProvider_Call_ProtocolError(t *testing.T) {
	server := newNode(t, func(req map[string]any) (int, any) {
		return http.StatusOK, map[string]any{
			"jsonrpc": "2.0",
			"id":      req["id"],
			"error":   map[string]any{"code": -32602, "message": "Invalid params"},
		}
	})

	p := NewHTTPProvider("test", server.URL, 5*time.Second)
	_, err := p.Call(context.Background(), "sui_getTransactionBlock", []any{"bad"})
	if err == nil {
		t.Fatal("expected error")
	}

	rpcErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if rpcErr.Kind != KindProtocol || rpcErr.Code != -32602 || rpcErr.Message != "Invalid params" {
		t.Errorf("unexpected error %+v", rpcErr)
	}
	if !IsProtocol(err) || IsTransport(err) {
		t.Error("expected protocol classification")
	}
	if rate := p.GetHealth().ErrorRate; rate != 0 {
		t.Errorf("protocol error must not count as a node failure, error rate %v", rate)
	}
}

func TestHTTPProvider_Call_HTTPStatusError(t *testing.T) {
	server := newNode(t, func(req map[string]any) (int, any) {
		return http.StatusBadGateway, "upstream unavailable"
	})

	p := NewHTTPProvider("test", server.URL, 5*time.Second)
	_, err := p.Call(context.Background(), "sui_getObject", []any{"0x2"})

	rpcErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if rpcErr.Kind != KindHTTPStatus || rpcErr.Status != http.StatusBadGateway {
		t.Errorf("unexpected error %+v", rpcErr)
	}
	if !IsTransport(err) {
		t.Error("expected transport classification")
	}
	if rate := p.GetHealth().ErrorRate; rate != 1 {
		t.Errorf("expected error rate 1, got %v", rate)
	}
}

func TestHTTPProvider_Call_RateLimited(t *testing.T) {
	server := newNode(t, func(req map[string]any) (int, any) {
		return http.StatusTooManyRequests, "slow down"
	})

	p := NewHTTPProvider("test", server.URL, 5*time.Second)
	_, err := p.Call(context.Background(), "m", nil)
	if !IsThrottled(err) {
		t.Fatalf("expected throttled error, got %v", err)
	}
	if p.Monitor.GetStats().ThrottleCount429 != 1 {
		t.Error("expected throttle to be recorded")
	}
}

func TestHTTPProvider_Call_DecodeError(t *testing.T) {
	server := newNode(t, func(req map[string]any) (int, any) {
		return http.StatusOK, "<html>not json</html>"
	})

	p := NewHTTPProvider("test", server.URL, 5*time.Second)
	_, err := p.Call(context.Background(), "m", nil)

	rpcErr, ok := AsError(err)
	if !ok || rpcErr.Kind != KindDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestHTTPProvider_Call_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	p := NewHTTPProvider("test", url, time.Second)
	_, err := p.Call(context.Background(), "m", nil)
	if !IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}

	health := p.GetHealth()
	if health.LastFailureAt.IsZero() {
		t.Error("expected failure to be recorded")
	}
}

func TestHTTPProvider_Call_ContextCanceled(t *testing.T) {
	server := newNode(t, func(req map[string]any) (int, any) {
		time.Sleep(200 * time.Millisecond)
		return http.StatusOK, map[string]any{"jsonrpc": "2.0", "id": req["id"], "result": 1}
	})

	p := NewHTTPProvider("test", server.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Call(ctx, "m", nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestHTTPProvider_Call_NullResult(t *testing.T) {
	server := newNode(t, func(req map[string]any) (int, any) {
		return http.StatusOK, `{"jsonrpc":"2.0","id":1}`
	})

	p := NewHTTPProvider("test", server.URL, 5*time.Second)
	result, err := p.Call(context.Background(), "m", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != "null" {
		t.Errorf("expected null, got %s", result)
	}
}
