package sources

import "context"

// Result is the outcome of one knowledge source lookup: the extracted answer
// text plus a human-readable label naming where it came from. Both fields are
// empty when the lookup failed or found nothing usable.
type Result struct {
	Text  string
	Label string
}

// Source is a single external knowledge source. Lookup never propagates an
// error: transport failures, timeouts, non-success statuses and malformed
// payloads all collapse to a zero Result so the resolver can treat every
// source uniformly.
type Source interface {
	Name() string
	Lookup(ctx context.Context, query string) Result
}
