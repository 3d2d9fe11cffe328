package application

import "context"

// Session is the authenticated checkout context a request runs in.
type Session struct {
	ID               string
	CartID           string
	PaymentInterface string
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// CartIDFromContext returns the cart of the current session.
func CartIDFromContext(ctx context.Context) (string, error) {
	s, ok := SessionFromContext(ctx)
	if !ok || s.CartID == "" {
		return "", NewUnauthorizedError("no cart bound to the current session")
	}
	return s.CartID, nil
}

// PaymentInterfaceFromContext returns the payment interface bound to the session, or "".
func PaymentInterfaceFromContext(ctx context.Context) string {
	if s, ok := SessionFromContext(ctx); ok {
		return s.PaymentInterface
	}
	return ""
}
