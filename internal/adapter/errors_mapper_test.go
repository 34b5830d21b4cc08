package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAttemptError(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	expired, cancelExpired := context.WithTimeout(context.Background(), 0)
	defer cancelExpired()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want ErrorKind
	}{
		{name: "net timeout", err: &url.Error{Op: "Get", URL: "http://x", Err: timeoutError{}}, want: KindTimeout},
		{name: "deadline exceeded", err: fmt.Errorf("attempt: %w", context.DeadlineExceeded), want: KindTimeout},
		{name: "os deadline", err: os.ErrDeadlineExceeded, want: KindTimeout},
		{name: "refused", err: &url.Error{Op: "Get", URL: "http://x", Err: refused}, want: KindConnectionFailure},
		{name: "dns", err: &url.Error{Op: "Get", URL: "http://x", Err: &net.DNSError{Err: "no such host", Name: "x"}}, want: KindConnectionFailure},
		{name: "reset", err: fmt.Errorf("read: %w", syscall.ECONNRESET), want: KindConnectionFailure},
		{name: "eof", err: &url.Error{Op: "Get", URL: "http://x", Err: io.EOF}, want: KindConnectionFailure},
		{name: "closed", err: net.ErrClosed, want: KindConnectionFailure},
		{name: "parse", err: &url.Error{Op: "parse", URL: "::", Err: errors.New("missing protocol scheme")}, want: KindUnknown},
		{name: "other", err: errors.New("boom"), want: KindUnknown},
		{name: "canceled error", err: context.Canceled, want: KindUnknown},
		{name: "caller canceled", ctx: canceled, err: &url.Error{Op: "Get", URL: "http://x", Err: refused}, want: KindUnknown},
		{name: "caller deadline", ctx: expired, err: &url.Error{Op: "Get", URL: "http://x", Err: refused}, want: KindTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.ctx
			if ctx == nil {
				ctx = context.Background()
			}
			assert.Equal(t, tt.want, classifyAttemptError(ctx, tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(KindConnectionFailure))
	assert.True(t, isRetryable(KindTimeout))
	assert.False(t, isRetryable(KindMalformedResponse))
	assert.False(t, isRetryable(KindUnknown))
}

func TestCallError(t *testing.T) {
	inner := errors.New("dial failed")
	err := error(NewCallError(KindConnectionFailure, "could not connect", inner))

	assert.Equal(t, "could not connect", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, KindConnectionFailure, KindOf(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, KindUnknown, KindOf(inner))

	assert.Equal(t, "dial failed", NewCallError(KindTimeout, "", inner).Error())
	assert.Equal(t, "timeout", NewCallError(KindTimeout, "", nil).Error())
}

func TestErrorKind_String(t *testing.T) {
	var zero ErrorKind
	assert.Equal(t, KindUnknown, zero)

	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "connection_failure", KindConnectionFailure.String())
	assert.Equal(t, "timeout", KindTimeout.String())
	assert.Equal(t, "malformed_response", KindMalformedResponse.String())
	assert.Equal(t, "unknown", ErrorKind(42).String())
}
