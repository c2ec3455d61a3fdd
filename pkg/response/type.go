package response

// Resp is the JSON body written for every error response.
type Resp struct {
	Error string `json:"error"`
}
