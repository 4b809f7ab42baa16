package netutil

import (
	"errors"
	"net"
	"net/url"
)

// ShouldRetry reports whether err looks like a transient network
// failure (dial errors and timeouts from net/http talking to the
// Bot API) that a resend may recover from.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}

	var ne net.Error
	if errors.As(err, &ne) && (ne.Timeout() || ne.Temporary()) {
		return true
	}

	var op *net.OpError
	if errors.As(err, &op) {
		if op.Timeout() || op.Op == "dial" {
			return true
		}
		if nested, ok := op.Err.(net.Error); ok && (nested.Timeout() || nested.Temporary()) {
			return true
		}
	}

	var ue *url.Error
	if errors.As(err, &ue) {
		if ue.Timeout() {
			return true
		}
		if ue.Err != nil && !errors.Is(ue.Err, err) {
			return ShouldRetry(ue.Err)
		}
	}

	return false
}
