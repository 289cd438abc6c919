package memory

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Entry is one message held in a Buffer.
type Entry struct {
	Role    string
	Content string
}
