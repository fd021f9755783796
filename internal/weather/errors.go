package weather

import "fmt"

// User-facing failure messages, fixed by the reference behaviour.
const (
	msgCurrentRequestFailed    = "Error al obtener los datos del clima actual"
	msgCurrentMissing          = "La API no devolvió datos de clima actual"
	msgHistoricalRequestFailed = "Error al obtener los datos históricos del clima"
	msgHistoricalMissing       = "La API no devolvió datos históricos del clima"
)

// APIRequestError is the single error kind raised by the client: the
// transport failed, the body was not valid JSON, or the response lacked
// the expected top-level key. Message is human readable; Err carries the
// underlying cause when there is one.
type APIRequestError struct {
	Message string
	Err     error
}

func (e *APIRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIRequestError) Unwrap() error {
	return e.Err
}

func newAPIRequestError(message string, err error) *APIRequestError {
	return &APIRequestError{Message: message, Err: err}
}
