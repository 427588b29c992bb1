package useragent

import "context"

type resultContextKey struct{}

// SetToContext stores a classification result in ctx.
func SetToContext(ctx context.Context, res *Result) context.Context {
	return context.WithValue(ctx, resultContextKey{}, res)
}

// FromContext returns the result stored by SetToContext, or nil.
func FromContext(ctx context.Context) *Result {
	res, _ := ctx.Value(resultContextKey{}).(*Result)
	return res
}
