package chat

// Replies returned verbatim to users.
const (
	ReplyOffTopic           = "I'm sorry, but I can only help with SCCSE-related information."
	ReplyIncorrectPasskey   = "🚫 Incorrect passkey. Try again."
	ReplyNoEvents           = "There are no upcoming events at the moment."
	ReplyUnknownName        = "I don't know your name."
	ReplyKnownNameFormat    = "Your name is %s."
	ReplyPasskeyRequired    = "🔐 This action requires the admin passkey. Please provide the passkey."
	ReplyNoSkills           = "You haven't told me about your skills yet. What are you good at?"
	ReplyNoteSavedFormat    = "✅ Note saved: '%s'"
	ReplyNotesDeleted       = "🗑️ All notes have been deleted successfully."
	ReplyProvenanceMemory   = "You mentioned your skills earlier in the conversation."
	ReplyProvenanceSummary  = "I remembered it from the summary of our earlier conversations."
	ReplyProvenanceNone     = "I can only rely on what you've shared during our chats."
	ReplyServiceUnavailable = "I'm having trouble reaching my knowledge service right now. Please try again in a moment."

	ReplyTeamTech   = "Based on your skills, you would be a great fit for the Tech Team!"
	ReplyTeamDesign = "With your design-related skills, the Design Team suits you well!"
	ReplyTeamPR     = "Your communication and soft skills make you a strong fit for the PR Team!"
)

// SkillOriginFormat is the memory marker recorded after a team recommendation.
const SkillOriginFormat = "[SKILL_ORIGIN:%s]"

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Dependency labels used for upstream failure metrics.
const (
	DependencyRetriever = "retriever"
	DependencyGenerator = "generator"
	DependencyNotes     = "notes"
)
