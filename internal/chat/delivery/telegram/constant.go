package telegram

const (
	commandStart = "/start"
	commandHelp  = "/help"

	// scopePrefix namespaces Telegram chats in the conversation store.
	scopePrefix = "telegram_"

	replyWelcome = "👋 Welcome to the *SCCSE Chatbot*!\n\n" +
		"Ask me anything about SCCSE: teams, events, the member handbook.\n" +
		"Tell me about your skills and I'll suggest a team for you."
	replyHelp = "*How to use:*\n\n" +
		"• Ask a question, e.g. _What does the Design Team do?_\n" +
		"• Ask _upcoming events_ to see what's planned\n" +
		"• Ask _which team suits me?_ after telling me your skills"
	replyFailure = "Something went wrong while handling your message. Please try again."
)
