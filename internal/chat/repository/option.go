package repository

// AppendTurnOptions holds the parameters for storing one turn.
type AppendTurnOptions struct {
	UserID string
	Role   string // model.RoleUser or model.RoleAssistant
	Text   string
}

// ListRecentOptions holds the parameters for listing turns.
type ListRecentOptions struct {
	UserID string
	Limit  int
}

// AppendSummaryOptions holds the parameters for storing a summary.
type AppendSummaryOptions struct {
	UserID string
	Text   string
}
