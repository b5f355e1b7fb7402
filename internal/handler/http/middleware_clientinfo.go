package http

import (
	"net"
	"net/http"
	"strings"
)

const (
	forwardedForHeader = "X-Forwarded-For"
	realIPHeader       = "X-Real-IP"

	// clientUnknown is the fallback for both client ip and user agent.
	clientUnknown = "unknown"
)

// withClientInfo extracts the originating client address and user agent into
// the request state before invoking downstream. It only extracts - the
// values are never branched on and a request is never rejected here.
func (h *Handler) withClientInfo(next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		if state := stateFromContext(r.Context()); state != nil {
			state.clientIP = clientIPFromRequest(r)
			state.userAgent = userAgentFromRequest(r)
		}

		return next(w, r)
	}
}

// clientIPFromRequest resolves the client address with the following
// precedence:
//  1. first comma-separated token of X-Forwarded-For, trimmed, if non-empty;
//  2. X-Real-IP verbatim, if present;
//  3. the transport-level peer address (host part of RemoteAddr);
//  4. the literal "unknown".
func clientIPFromRequest(r *http.Request) string {
	if forwarded := r.Header.Get(forwardedForHeader); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	if realIP := r.Header.Get(realIPHeader); realIP != "" {
		return realIP
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return clientUnknown
}

func userAgentFromRequest(r *http.Request) string {
	if userAgent := r.UserAgent(); userAgent != "" {
		return userAgent
	}

	return clientUnknown
}
