// Package forwarded carries the end user's address from an inbound request to the outbound
// calls made on its behalf.
package forwarded

import "context"

// Header is sent on outbound calls and read back by gin's ClientIP on trusted peers.
const Header = "X-Forwarded-For"

type ctxKey struct{}

func WithClientIP(ctx context.Context, ip string) context.Context {
	if ip == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, ip)
}

// ClientIP returns "" when the context carries no address.
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(ctxKey{}).(string)
	return ip
}
