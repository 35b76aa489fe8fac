package internal

// AppError carries the HTTP status a failure should map to. Error() returns
// only the message, so handlers can echo it straight into the {message} body.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// WrapError keeps the underlying error reachable through errors.Is/As.
func WrapError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
