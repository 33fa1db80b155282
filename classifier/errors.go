package classifier

// APIError means the classification endpoint answered with a failure status.
// Message is the collaborator's own error string when its body carried one,
// otherwise a status-derived message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ResponseShapeError means the endpoint answered with a success status but a
// body that does not match the expected nested array of label objects. All
// shape mismatches fold into this one kind.
type ResponseShapeError struct {
	Reason string
}

func (e *ResponseShapeError) Error() string {
	return "unexpected classification response shape: " + e.Reason
}
