package interp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"meetline/internal/domain/schedule"
)

// LLMConstraintInterpreter asks the model to structure an instruction and
// falls back to deterministic rules on any failure. It never returns an
// error from the model path.
type LLMConstraintInterpreter struct {
	client ChatClient
	rules  *RuleInterpreter
}

func NewLLMConstraintInterpreter(client ChatClient, rules *RuleInterpreter) *LLMConstraintInterpreter {
	return &LLMConstraintInterpreter{client: client, rules: rules}
}

const constraintSystemPrompt = `You convert natural-language scheduling constraints into JSON. ` +
	`Return ONLY valid JSON with keys: ` +
	`{"hard_constraints": {"window_start": ISO8601, "window_end": ISO8601, "timezone": string}, ` +
	`"soft_constraints": {"preferred_days_of_week": ["MON"|"TUE"|...], ` +
	`"preferred_time_of_day": ["MORNING"|"AFTERNOON"|"EVENING"]}}`

func (i *LLMConstraintInterpreter) ParseConstraints(ctx context.Context, instruction, timezone string) (*ParsedConstraints, error) {
	userPrompt := fmt.Sprintf(
		"Instruction: %q\nNow (UTC): %s\nLead timezone: %s\n"+
			"Infer a reasonable window_start/window_end around now if needed. "+
			"If something is missing, make a reasonable assumption.",
		instruction, i.rules.clock.Now().UTC().Format(time.RFC3339), timezone,
	)

	raw, err := i.client.Complete(ctx, constraintSystemPrompt, userPrompt)
	if err != nil {
		slog.Warn("constraint interpretation fell back to rules", "error", err.Error())
		return i.rules.ParseConstraints(ctx, instruction, timezone)
	}

	parsed, ok := i.parseResponse(raw, timezone)
	if !ok {
		slog.Warn("constraint interpretation returned unusable JSON, using rules")
		return i.rules.ParseConstraints(ctx, instruction, timezone)
	}

	return parsed, nil
}

func (i *LLMConstraintInterpreter) parseResponse(raw, timezone string) (*ParsedConstraints, bool) {
	jsonStr, ok := extractJSONObject(raw)
	if !ok {
		return nil, false
	}

	var payload struct {
		HardConstraints map[string]any `json:"hard_constraints"`
		SoftConstraints map[string]any `json:"soft_constraints"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, false
	}
	if payload.HardConstraints == nil {
		return nil, false
	}
	if _, ok := payload.HardConstraints["timezone"]; !ok {
		payload.HardConstraints["timezone"] = timezone
	}

	hard, err := schedule.ParseHardConstraints(payload.HardConstraints)
	if err != nil {
		return nil, false
	}

	return &ParsedConstraints{
		Hard: hard,
		Soft: schedule.ParseSoftConstraints(payload.SoftConstraints),
	}, true
}

// LLMAvailabilityInterpreter extracts concrete windows from a call
// transcript, clamping each to the scheduling window. Empty transcripts,
// transport failures, and unusable JSON all degrade to the rule fallback.
type LLMAvailabilityInterpreter struct {
	client ChatClient
	rules  *RuleInterpreter
}

func NewLLMAvailabilityInterpreter(client ChatClient, rules *RuleInterpreter) *LLMAvailabilityInterpreter {
	return &LLMAvailabilityInterpreter{client: client, rules: rules}
}

func (i *LLMAvailabilityInterpreter) ExtractWindows(ctx context.Context, text string, windowStart, windowEnd time.Time, duration time.Duration) ([]schedule.Slot, error) {
	if strings.TrimSpace(text) == "" {
		return i.rules.ExtractWindows(ctx, text, windowStart, windowEnd, duration)
	}

	userPrompt := fmt.Sprintf(
		"The caller described when they are free for a meeting.\n\n"+
			"Call transcript:\n%s\n\n"+
			"Scheduling window:\n- start: %s\n- end:   %s\n"+
			"Desired meeting duration: %d minutes.\n\n"+
			"Pick one or more candidate start/end times inside the window, in this JSON format:\n"+
			`{"slots": [{"start": "ISO-8601 datetime", "end": "ISO-8601 datetime"}]}`+"\n"+
			"Return ONLY valid JSON. Do not include any commentary.",
		text, windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339),
		int(duration/time.Minute),
	)

	raw, err := i.client.Complete(ctx, "You convert informal availability into concrete time windows.", userPrompt)
	if err != nil {
		slog.Warn("availability interpretation fell back to rules", "error", err.Error())
		return i.rules.ExtractWindows(ctx, text, windowStart, windowEnd, duration)
	}

	windows := parseSlotResponse(raw, windowStart, windowEnd)
	if len(windows) == 0 {
		return i.rules.ExtractWindows(ctx, text, windowStart, windowEnd, duration)
	}

	return windows, nil
}

func parseSlotResponse(raw string, windowStart, windowEnd time.Time) []schedule.Slot {
	jsonStr, ok := extractJSONObject(raw)
	if !ok {
		return nil
	}

	var payload struct {
		Slots []struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"slots"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil
	}

	var windows []schedule.Slot
	for _, s := range payload.Slots {
		start, err := time.Parse(time.RFC3339, s.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, s.End)
		if err != nil {
			continue
		}

		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		if !end.After(start) {
			continue
		}
		windows = append(windows, schedule.Slot{Start: start, End: end})
	}

	return windows
}

// extractJSONObject tolerates prose around the object by slicing from the
// first '{' to the last '}'.
func extractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
