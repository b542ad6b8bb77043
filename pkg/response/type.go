package response

// ErrResp is the error body for 4xx/5xx responses.
type ErrResp struct {
	Error string `json:"error"`
}
