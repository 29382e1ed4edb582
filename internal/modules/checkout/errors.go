package checkout

// ValidationError carries the first failing rule's message. Rules are never
// batched; the customer sees exactly one message per attempt.
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
