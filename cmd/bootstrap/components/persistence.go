package components

import (
	"meetline/internal/infra/db"
	"meetline/internal/infra/readstore"
	"meetline/internal/infra/uow"
	"meetline/internal/usecase/queries"
	"meetline/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewMeetingRequestReadStore,
			fx.As(new(queries.MeetingRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewMeetingReadStore,
			fx.As(new(queries.MeetingReadStore)),
		),
		fx.Annotate(
			readstore.NewCallReadStore,
			fx.As(new(queries.CallReadStore)),
		),
		fx.Annotate(
			readstore.NewLeadReadStore,
			fx.As(new(queries.LeadReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
