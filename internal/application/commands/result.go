package commands

// Result describes the outcome of a mutation. Invalid input is not an error:
// the command is skipped and Applied stays false.
type Result struct {
	Applied bool
	Message string
}

func skipped(reason error) *Result {
	return &Result{Applied: false, Message: reason.Error()}
}
