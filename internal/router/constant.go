package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Greeting and acknowledgment vocabulary. A message equal to one of these, or
// starting with one followed by a space, is always on-topic.
var greetings = []string{
	"hi", "hello", "hey", "good morning", "good afternoon", "good evening",
	"how are you", "what's up", "whats up", "sup", "yo", "greetings",
	"thank you", "thanks", "bye", "goodbye", "see you", "ok", "okay",
	"yes", "no", "sure", "alright", "cool", "nice", "great",
}

// orgKeywords whitelist a message regardless of anything else in it.
var orgKeywords = []string{
	"sccse", "team", "teams", "event", "events", "member", "members",
	"join", "chapter", "activity", "activities", "club",
}

var offTopicPatterns = []string{
	"what is python", "what is dsa", "what is java", "what is ai",
	"how to learn", "explain", "who is the founder", "who founded",
	"what is nasa", "what is machine learning", "what is programming",
	"how do i code", "teach me", "tutorial", "solve this problem",
	"what is 2+2", "calculate", "what is the capital", "who is president",
	"what is variable", "what is function", "what is algorithm",
	"debug this", "fix my code", "what is recursion", "what is oop",
	"write a program", "write code", "help me code",
}

var singleWordTech = []string{
	"python", "java", "dsa", "nasa", "algorithm", "variable",
	"recursion", "oop", "debugging", "malloc", "pointer", "coding",
}

const (
	shortMessageMaxRunes = 10
	shortTechMaxWords    = 2
)

// Cascade triggers.
const (
	NameQueryTrigger = "what is my name"
	NoteTrigger      = "note that"
)

var deleteTriggers = []string{"delete notes.txt", "clear notes"}

var provenanceTriggers = []string{"how do you know", "how did you know"}

var eventKeywords = []string{
	"event", "evnt", "upcoming", "schedule", "when is", "tournament", "competition",
}

var teamTriggers = []string{
	"which team should i join",
	"what team should i join",
	"suggest a team",
	"which sccse team",
	"best team for me",
	"where should i join",
	"team should i join",
	"recommend a team",
	"which team",
	"what team",
}
