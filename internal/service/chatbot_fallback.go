package service

import "strings"

// fallbackReply is the local deterministic coach. It answers by keyword
// priority over the lower-cased input and always returns non-empty text,
// so a dead or disabled remote model never breaks the chat flow.
func fallbackReply(text string) string {
	t := strings.ToLower(text)

	switch {
	case strings.Contains(t, "leg") || strings.Contains(t, "squat"):
		return "For your next leg day: keep 2 heavy compounds and 2 hypertrophy accessories. Target RPE 8 on main sets."
	case strings.Contains(t, "diet") || strings.Contains(t, "meal") || strings.Contains(t, "protein"):
		return "Aim for 1.6-2.2g protein/kg bodyweight. Build each meal around protein first, then carbs around workouts."
	case strings.Contains(t, "rest") || strings.Contains(t, "sleep") || strings.Contains(t, "recovery"):
		return "Recovery baseline: 7-9h sleep, hydration, and one low-intensity day after 2-3 hard sessions."
	case strings.Contains(t, "plan") || strings.Contains(t, "week"):
		return "Weekly template: Push / Pull / Legs / Rest / Upper / Lower / Active Recovery. Keep one progression variable per session."
	default:
		return "Solid question. Keep progressive overload simple: +1 rep or +2.5% load each week while maintaining clean form."
	}
}
