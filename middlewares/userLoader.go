package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/raihanahmadkhan/fintrak-backend/models"
)

type userReader struct{}

func (r *userReader) getUsers(ctx context.Context, ids []int) []*dataloader.Result[*models.User] {
	resultMap, err := models.MapUsers(ctx, ids)
	if err != nil {
		return handleError[*models.User](len(ids), err)
	}
	var loaderResults = make([]*dataloader.Result[*models.User], 0, len(ids))
	for _, id := range ids {
		result, ok := resultMap[id]
		if !ok {
			var v models.User
			v.ID = id
			result = &v
		}
		loaderResults = append(loaderResults, &dataloader.Result[*models.User]{Data: result})
	}
	return loaderResults
}

func GetUser(ctx context.Context, id int) (*models.User, error) {
	loaders := For(ctx)
	return loaders.userLoader.Load(ctx, id)()
}

func GetUsers(ctx context.Context, ids []int) ([]*models.User, []error) {
	loaders := For(ctx)
	return loaders.userLoader.LoadMany(ctx, ids)()
}
