package memory

import "unicode/utf8"

// Policy decides whether a sequence of entries fits the buffer's budget.
type Policy interface {
	Within(entries []Entry) bool
}

// TokenPolicy bounds the buffer by an estimated token count.
type TokenPolicy struct {
	Limit int
}

// Within implements Policy.
func (p TokenPolicy) Within(entries []Entry) bool {
	total := 0
	for _, e := range entries {
		total += EstimateTokens(e.Content)
	}
	return total <= p.Limit
}

// CountPolicy bounds the buffer by number of entries.
type CountPolicy struct {
	Max int
}

// Within implements Policy.
func (p CountPolicy) Within(entries []Entry) bool {
	return len(entries) <= p.Max
}

// Policy kinds accepted by NewPolicy.
const (
	PolicyTokens = "tokens"
	PolicyCount  = "count"
)

// NewPolicy returns a CountPolicy for PolicyCount and a TokenPolicy otherwise.
func NewPolicy(kind string, limit int) Policy {
	if kind == PolicyCount {
		return CountPolicy{Max: limit}
	}
	return TokenPolicy{Limit: limit}
}

// EstimateTokens approximates tokens as one per four characters, rounded up.
func EstimateTokens(s string) int {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}
	return (n + 3) / 4
}
