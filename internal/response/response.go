package response

// Body is the single JSON shape used for non-entity responses: delete
// confirmations and every error. Error text is echoed raw, matching the
// upstream service contract.
type Body struct {
	Message string `json:"message"`
}

func New(message string) Body {
	return Body{Message: message}
}
