// Package notify holds the outbound notification adapters. Both providers
// report plain success/failure; callers treat a failed send as a degraded
// result, never as a request error.
package notify

import "context"

type SMSSender interface {
	// Send delivers one SMS to the given phone number (normalized before
	// dispatch) and reports whether the provider accepted it.
	Send(ctx context.Context, to, message string) bool
}

type EmailSender interface {
	// Configured reports whether the provider credential is present.
	// Unconfigured senders skip silently.
	Configured() bool
	Send(ctx context.Context, to, subject, html string) bool
}
