//nolint:revive // types is a standard Go package name pattern
package types

// Intent is the user's declared high-level goal after login.
type Intent string

const (
	IntentApplyJob       Intent = "apply_job"
	IntentPostJob        Intent = "post_job"
	IntentLearningModule Intent = "learning_module"
	IntentUnrecognized   Intent = "unrecognized"
)

// Intents lists the recognizable intents in declaration order.
func Intents() []Intent {
	return []Intent{IntentApplyJob, IntentPostJob, IntentLearningModule}
}

// Recognized reports whether the intent is one of the three actionable goals.
func (i Intent) Recognized() bool {
	switch i {
	case IntentApplyJob, IntentPostJob, IntentLearningModule:
		return true
	default:
		return false
	}
}

// IntentResult explains how an intent was chosen.
type IntentResult struct {
	Intent Intent `json:"intent"`
	// Keyword is the alias that decided the intent; empty when unrecognized.
	Keyword string `json:"keyword,omitempty"`
	// Position is the token index of Keyword, or -1.
	Position  int       `json:"position"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`
}
