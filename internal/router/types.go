package router

import "sccse-chatbot/internal/pending"

// Intent names one branch of the message cascade.
type Intent string

const (
	IntentOffTopic           Intent = "OFF_TOPIC"
	IntentNameQuery          Intent = "NAME_QUERY"
	IntentConfirmNote        Intent = "CONFIRM_NOTE"
	IntentConfirmDelete      Intent = "CONFIRM_DELETE"
	IntentSaveNote           Intent = "SAVE_NOTE"
	IntentDeleteNotes        Intent = "DELETE_NOTES"
	IntentSkillProvenance    Intent = "SKILL_PROVENANCE"
	IntentEvents             Intent = "EVENTS"
	IntentTeamRecommendation Intent = "TEAM_RECOMMENDATION"
	IntentAnswer             Intent = "ANSWER"
)

// Input is everything the cascade looks at: the raw message and the
// sender's pending action.
type Input struct {
	Message string
	Pending pending.Kind
}

// Rule pairs an intent with the predicate that selects it. Predicates
// receive the trimmed, lowercased message in Normalized.
type Rule struct {
	Intent Intent
	Match  func(n Normalized) bool
}

// Normalized is an Input with its message trimmed and lowercased.
type Normalized struct {
	Text    string
	Pending pending.Kind
}

// RouterOutput is the result of running the cascade.
type RouterOutput struct {
	// Intent is the first matching rule.
	Intent Intent `json:"intent"`
	// Candidates lists every matching rule in cascade order. Handlers that
	// decline hand the message to the next candidate.
	Candidates []Intent `json:"candidates"`
}
