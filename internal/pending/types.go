package pending

// Kind identifies the privileged action a user has asked for and not yet confirmed.
type Kind int

const (
	KindNone Kind = iota
	KindNote
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "awaiting_note_confirm"
	case KindDelete:
		return "awaiting_delete_confirm"
	default:
		return "idle"
	}
}

// State is one user's pending action. Draft is only set for KindNote.
type State struct {
	Kind  Kind
	Draft string
}

// Outcome reports what Confirm did.
type Outcome int

const (
	// OutcomeNothingPending means the user had no pending action.
	OutcomeNothingPending Outcome = iota
	// OutcomeRejected means the passkey did not match; the state is unchanged.
	OutcomeRejected
	// OutcomeConfirmed means the passkey matched; the state has been cleared.
	OutcomeConfirmed
)
