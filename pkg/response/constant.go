package response

const (
	// MessageInternalError is the body message for unmapped failures.
	MessageInternalError = "Internal server error"
	// MessageUnauthorized is the body message for rejected credentials.
	MessageUnauthorized = "Unauthorized"
)
