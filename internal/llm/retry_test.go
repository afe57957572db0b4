package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func TestRetry(t *testing.T) {
	ok := MockResponse{Content: json.RawMessage(`{"ok":true}`)}
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	invalid := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad")}}

	tests := []struct {
		name      string
		attempts  int
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt succeeds", 3, []MockResponse{ok}, false, 1},
		{"transient then success", 3, []MockResponse{down, ok}, false, 2},
		{"all attempts fail", 3, []MockResponse{down, down, down}, true, 3},
		{"single attempt never retries", 1, []MockResponse{down, ok}, true, 1},
		{"invalid response retried once", 3, []MockResponse{invalid, invalid, ok}, true, 2},
		{"max tokens not retried", 3, []MockResponse{{Err: &ErrMaxTokensExceeded{}}, ok}, true, 1},
		{"unconfigured not retried", 3, []MockResponse{{Err: &ErrProviderUnavailable{Err: errNotConfigured}}, ok}, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			_, err := WithRetry(mock, fastRetry(tt.attempts)).Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_ContextCanceledDuringWait(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Hour}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := WithRetry(mock, fastRetry(3)).Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetry_BackoffCapped(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: time.Second, MaxWait: 2 * time.Second, Multiplier: 10}}
	for attempt := 0; attempt < 4; attempt++ {
		if d := r.backoff(attempt, errors.New("x")); d > 2400*time.Millisecond {
			t.Errorf("attempt %d backoff %s exceeds cap plus jitter", attempt, d)
		}
	}
	if d := r.backoff(0, &ErrRateLimit{RetryAfter: 7 * time.Second}); d != 7*time.Second {
		t.Errorf("RetryAfter not honored: %s", d)
	}
}

func TestRetry_DelegatesIdentity(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry(1))
	if p.Name() != ProviderMock || p.ModelID() != "mock" {
		t.Errorf("Name/ModelID = %q/%q", p.Name(), p.ModelID())
	}
}
