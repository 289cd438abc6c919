package test

// ClassifyRequest represents a classify request
type ClassifyRequest struct {
	Text   string `json:"text" binding:"required"`
	UserID string `json:"user_id"`
}

// ClassifyResponse reports how the message would be routed.
type ClassifyResponse struct {
	Success    bool     `json:"success"`
	Intent     string   `json:"intent,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	OffTopic   bool     `json:"off_topic"`
	Pending    string   `json:"pending,omitempty"`
	Text       string   `json:"text"`
	UserID     string   `json:"user_id"`
	Error      string   `json:"error,omitempty"`
	Details    string   `json:"details,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
