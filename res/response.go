package res

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"body,omitempty"`
}

type ErrorRes struct {
	Err        error
	StatusCode int
}

func (e *ErrorRes) Error() string {
	return e.Err.Error()
}

func (e *ErrorRes) Unwrap() error {
	return e.Err
}

// NotifyRecord is published on NATS after a record is stored.
type NotifyRecord struct {
	Kind       string `json:"kind"`
	Collection string `json:"collection"`
	Record     string `json:"record"`
}
