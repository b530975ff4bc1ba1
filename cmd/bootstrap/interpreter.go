package bootstrap

import (
	"meetline/internal/interp"
	"meetline/internal/pkg/clock"
	"meetline/internal/pkg/config"
	"meetline/internal/usecase/commands"

	"go.uber.org/fx"
)

var InterpreterModule = fx.Module("interpreter",
	fx.Provide(
		NewRuleInterpreter,
		NewConstraintInterpreter,
		NewAvailabilityExtractor,
	),
)

func NewRuleInterpreter(clk clock.Clock) *interp.RuleInterpreter {
	return interp.NewRuleInterpreter(clk)
}

func generativeEnabled(cfg config.Config) bool {
	return cfg.OpenAI.Enabled && cfg.OpenAI.APIKey != ""
}

func NewConstraintInterpreter(cfg config.Config, rules *interp.RuleInterpreter) interp.ConstraintInterpreter {
	if generativeEnabled(cfg) {
		return interp.NewLLMConstraintInterpreter(interp.NewOpenAIClient(cfg.OpenAI), rules)
	}
	return rules
}

func NewAvailabilityExtractor(cfg config.Config, rules *interp.RuleInterpreter) commands.AvailabilityExtractor {
	if generativeEnabled(cfg) {
		return interp.NewLLMAvailabilityInterpreter(interp.NewOpenAIClient(cfg.OpenAI), rules)
	}
	return rules
}
