package bootstrap

import (
	"meetline/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	TelephonyModule,
	InterpreterModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
