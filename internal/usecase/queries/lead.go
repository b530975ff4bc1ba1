package queries

import (
	"context"

	"meetline/internal/infra"
	"meetline/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errs.New("lead not found")

type LeadQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LeadView, error)
	GetByPhone(ctx context.Context, phone string) (*LeadView, error)
}

type LeadReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LeadView, error)
	FindByPhone(ctx context.Context, phone string) (*LeadView, error)
}

type leadQueriesImpl struct {
	store LeadReadStore
}

func NewLeadQueries(store LeadReadStore) LeadQueries {
	return &leadQueriesImpl{store: store}
}

func (q *leadQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LeadView, error) {
	return q.mapErr(q.store.FindByID(ctx, id))
}

func (q *leadQueriesImpl) GetByPhone(ctx context.Context, phone string) (*LeadView, error) {
	return q.mapErr(q.store.FindByPhone(ctx, phone))
}

func (q *leadQueriesImpl) mapErr(view *LeadView, err error) (*LeadView, error) {
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return view, nil
}
