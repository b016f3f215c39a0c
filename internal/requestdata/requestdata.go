package requestdata

import (
	"context"

	"github.com/google/uuid"
)

// RequestData carries the authenticated caller through a request context.
type RequestData struct {
	UserID      uuid.UUID
	TokenString string
}

type ctxKey struct{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, ctxKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, _ := ctx.Value(ctxKey{}).(*RequestData)
	return rd
}

// UserID returns the authenticated user's id, or uuid.Nil for anonymous
// requests.
func UserID(ctx context.Context) uuid.UUID {
	if rd := GetRequestData(ctx); rd != nil {
		return rd.UserID
	}
	return uuid.Nil
}
