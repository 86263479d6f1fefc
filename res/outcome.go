package res

import "net/http"

// Outcome is the result of one entry submission. The caller decides how
// to surface it.
type Outcome struct {
	Kind       string `json:"kind"`
	Success    bool   `json:"success"`
	ID         string `json:"id,omitempty"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func Succeeded(kind, id, message string) *Outcome {
	return &Outcome{
		Kind:       kind,
		Success:    true,
		ID:         id,
		Message:    message,
		StatusCode: http.StatusCreated,
	}
}

func Failed(kind string, statusCode int, message string, err error) *Outcome {
	return &Outcome{
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

func (o *Outcome) Response() *Response {
	response := &Response{
		Success: o.Success,
		Message: o.Message,
	}
	if o.Success {
		response.Data = map[string]interface{}{
			"inserted_id": o.ID,
		}
	}
	return response
}
