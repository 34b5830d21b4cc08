package adapter

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"os"
	"syscall"
)

// classifyAttemptError maps the error of a single GET attempt to an
// [ErrorKind]. ctx is the caller's context: once it is done the attempt
// error is a consequence of the caller giving up, not of the upstream.
func classifyAttemptError(ctx context.Context, err error) ErrorKind {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return KindTimeout
		}
		return KindUnknown
	}

	if errors.Is(err, context.Canceled) {
		return KindUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return KindTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op == "parse" {
		return KindUnknown
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindConnectionFailure
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnectionFailure
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNABORTED),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, net.ErrClosed),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return KindConnectionFailure
	}

	return KindUnknown
}

// isRetryable reports whether an attempt that failed with kind may be
// repeated.
func isRetryable(kind ErrorKind) bool {
	return kind == KindConnectionFailure || kind == KindTimeout
}
