package usecase

import (
	"fmt"
	"strings"

	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/retrieval"
)

const answerPromptTemplate = `You are the SCCSE chatbot for the Students' Chapter of CSE at AOT.

QUERY: "%s"

YOUR TASK:
1. If this is a GREETING (hi, hello, thanks, bye) → Respond warmly
2. If this is about SCCSE (teams, events, members, activities) → Answer using the data below
3. If this is OFF-TOPIC (Python, NASA, DSA, coding, math, general knowledge) → Respond ONLY: "I'm sorry, but I can only help with SCCSE-related information."

AVAILABLE INFORMATION:

NOTES (Most Recent & Important - Use This FIRST for events):
%s

PDF (General SCCSE Information):
%s

CRITICAL RULES FOR EVENTS:
• If the query is about events/schedules, ONLY use information from the NOTES section above
• If NOTES section is empty or doesn't have event info, say: "There are no upcoming events at the moment."
• NEVER use old event information from the PDF for current event queries
• Events are time-sensitive - only trust the NOTES section

OTHER RULES:
• Answer directly and naturally - do NOT explain your reasoning
• NEVER mention "notes", "PDF", "data", or "according to"
• Just state the information as if you naturally know it
• For non-event queries, you can use PDF information
• If no information available: "I'm not sure about that. I only provide information related to SCCSE members, teams, events, and activities."

RESPONSE:`

const summaryPromptHeader = "Summarize the user's skills and SCCSE-related preferences.\n\nConversation:\n"

// buildAnswerPrompt renders the grounding prompt for the default answer path.
func buildAnswerPrompt(message, notesText string, passages []retrieval.Passage, maxPassageChars int) string {
	texts := make([]string, 0, len(passages))
	for _, p := range passages {
		texts = append(texts, truncateRunes(p.Text, maxPassageChars))
	}
	return fmt.Sprintf(answerPromptTemplate, message, notesText, strings.Join(texts, "\n"))
}

// buildSummaryPrompt renders turns, oldest first, as "role: text" lines.
func buildSummaryPrompt(turns []model.Turn) string {
	var sb strings.Builder
	sb.WriteString(summaryPromptHeader)
	for i, t := range turns {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(t.Role)
		sb.WriteString(": ")
		sb.WriteString(t.Text)
	}
	return sb.String()
}

func truncateRunes(text string, maxLen int) string {
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}
