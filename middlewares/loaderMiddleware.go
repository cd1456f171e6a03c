package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/raihanahmadkhan/fintrak-backend/models"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders wrap the per-request data loaders injected via middleware. Expense
// listings attach employee/manager records through these so a page of N
// expenses costs one user query, not N.
type Loaders struct {
	userLoader *dataloader.Loader[int, *models.User]
}

func handleError[T any](count int, err error) []*dataloader.Result[T] {
	results := make([]*dataloader.Result[T], count)
	for i := range results {
		results[i] = &dataloader.Result[T]{Error: err}
	}
	return results
}

// NewLoaders instantiates data loaders for a request.
func NewLoaders() *Loaders {
	reader := &userReader{}
	return &Loaders{
		userLoader: dataloader.NewBatchedLoader(
			reader.getUsers,
			dataloader.WithWait[int, *models.User](time.Millisecond),
		),
	}
}

// LoaderMiddleware injects fresh data loaders into each request's context.
func LoaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		loaders := NewLoaders()
		ctx := context.WithValue(c.Request.Context(), loadersKey, loaders)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// For returns the loaders for a given context.
func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}
