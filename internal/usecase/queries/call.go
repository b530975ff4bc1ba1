package queries

import (
	"context"

	"meetline/internal/infra"
	"meetline/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCallNotFound = errs.New("call not found")

type CallQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CallView, error)
}

type CallReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CallView, error)
}

type callQueriesImpl struct {
	store CallReadStore
}

func NewCallQueries(store CallReadStore) CallQueries {
	return &callQueriesImpl{store: store}
}

func (q *callQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CallView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCallNotFound
		}
		return nil, err
	}
	return view, nil
}
