package types

// ConfirmationRequest represents a request for user confirmation before a
// destructive operation
type ConfirmationRequest struct {
	// Title is a brief, user-friendly title describing what needs confirmation
	Title string

	// Description provides detailed information about what will happen
	Description string

	// Items lists specific paths that will be affected
	Items []string

	// Default indicates the default response if user just presses enter
	Default bool
}

// Confirmer asks the user to approve a request
type Confirmer interface {
	Confirm(req ConfirmationRequest) (bool, error)
}
