package gamify

// XP granted for resolving an alert, by severity.
const (
	XpRewardInfo     = 25
	XpRewardWarning  = 50
	XpRewardCritical = 75
)

// SeverityXP maps an alert severity to the XP granted for resolving it.
// The same mapping backs both the displayed reward on the alerts list and
// the actual award on resolution, so the two can never disagree. Severity
// strings are validated at the model boundary; anything else falls back to
// the INFO reward.
func SeverityXP(severity string) int {
	switch severity {
	case "CRITICAL":
		return XpRewardCritical
	case "WARNING":
		return XpRewardWarning
	default:
		return XpRewardInfo
	}
}
