// Package interp turns natural-language scheduling text into structured
// constraints and availability windows. Deterministic rules always work;
// an LLM-backed interpreter can sit in front but every failure falls back
// to the rules.
package interp

import (
	"context"
	"time"

	"meetline/internal/domain/schedule"
)

type ParsedConstraints struct {
	Hard schedule.HardConstraints
	Soft schedule.SoftConstraints
}

// ConstraintInterpreter parses an owner's scheduling instruction such as
// "sometime next two weeks, tue-thu afternoons".
type ConstraintInterpreter interface {
	ParseConstraints(ctx context.Context, instruction, timezone string) (*ParsedConstraints, error)
}

// AvailabilityInterpreter extracts meeting windows from a caller's
// transcribed speech, clamped to the request's scheduling window.
type AvailabilityInterpreter interface {
	ExtractWindows(ctx context.Context, text string, windowStart, windowEnd time.Time, duration time.Duration) ([]schedule.Slot, error)
}

var (
	_ ConstraintInterpreter   = (*RuleInterpreter)(nil)
	_ ConstraintInterpreter   = (*LLMConstraintInterpreter)(nil)
	_ AvailabilityInterpreter = (*RuleInterpreter)(nil)
	_ AvailabilityInterpreter = (*LLMAvailabilityInterpreter)(nil)
)
