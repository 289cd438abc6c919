package router

import (
	"strings"

	"sccse-chatbot/internal/pending"
)

// rules is the message cascade. Order is behavior: a message is handled by
// the first rule whose handler accepts it.
var rules = []Rule{
	{IntentOffTopic, func(n Normalized) bool { return IsOffTopic(n.Text) }},
	{IntentNameQuery, func(n Normalized) bool { return strings.Contains(n.Text, NameQueryTrigger) }},
	{IntentConfirmNote, func(n Normalized) bool { return n.Pending == pending.KindNote }},
	{IntentConfirmDelete, func(n Normalized) bool { return n.Pending == pending.KindDelete }},
	{IntentSaveNote, func(n Normalized) bool { return strings.HasPrefix(n.Text, NoteTrigger) }},
	{IntentDeleteNotes, func(n Normalized) bool { return containsAny(n.Text, deleteTriggers) }},
	{IntentSkillProvenance, func(n Normalized) bool { return containsAny(n.Text, provenanceTriggers) }},
	{IntentEvents, func(n Normalized) bool { return containsAny(n.Text, eventKeywords) }},
	{IntentTeamRecommendation, func(n Normalized) bool { return containsAny(n.Text, teamTriggers) }},
	{IntentAnswer, func(Normalized) bool { return true }},
}

// Rules returns a copy of the cascade in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Normalize trims and lowercases the message.
func Normalize(in Input) Normalized {
	return Normalized{
		Text:    strings.ToLower(strings.TrimSpace(in.Message)),
		Pending: in.Pending,
	}
}

// NoteDraft returns the text after the note trigger, keeping the sender's casing.
// ok is false when message does not start with the trigger.
func NoteDraft(message string) (draft string, ok bool) {
	m := strings.TrimSpace(message)
	if len(m) < len(NoteTrigger) || !strings.EqualFold(m[:len(NoteTrigger)], NoteTrigger) {
		return "", false
	}
	return strings.TrimSpace(m[len(NoteTrigger):]), true
}
