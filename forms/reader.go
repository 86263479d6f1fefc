package forms

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing field")

type MissingFieldError struct {
	ID string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.ID)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Values maps a field id to its submitted text.
type Values map[string]string

type Reader struct {
	source FieldSource
}

func NewReader(source FieldSource) *Reader {
	return &Reader{source: source}
}

// Read returns the value of every id. A field the source does not know
// is an error; an empty value is not.
func (r *Reader) Read(ids ...string) (Values, error) {
	values := make(Values, len(ids))
	for _, id := range ids {
		value, ok := r.source.Field(id)
		if !ok {
			return nil, &MissingFieldError{ID: id}
		}
		values[id] = value
	}
	return values, nil
}

func (r *Reader) ReadSet(set FieldSet) (Values, error) {
	values, err := r.Read(set.Required...)
	if err != nil {
		return nil, err
	}
	for _, id := range set.Optional {
		if value, ok := r.source.Field(id); ok {
			values[id] = value
		}
	}
	return values, nil
}
