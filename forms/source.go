package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// FieldSource resolves a field id to the value currently entered for it.
type FieldSource interface {
	Field(id string) (string, bool)
}

type MapSource map[string]string

func (m MapSource) Field(id string) (string, bool) {
	value, ok := m[id]
	return value, ok
}

// ParseAssignments builds a MapSource from "id=value" pairs.
func ParseAssignments(pairs []string) (MapSource, error) {
	source := make(MapSource, len(pairs))
	for _, pair := range pairs {
		id, value, ok := strings.Cut(pair, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid field assignment %q, expected id=value", pair)
		}
		source[id] = value
	}
	return source, nil
}

type requestSource struct {
	c *gin.Context
}

func (r requestSource) Field(id string) (string, bool) {
	return r.c.GetPostForm(id)
}

// SourceFromRequest reads urlencoded or multipart forms from the posted
// body, and JSON objects of string values.
func SourceFromRequest(c *gin.Context) (FieldSource, error) {
	if c.ContentType() == gin.MIMEJSON {
		var body map[string]json.RawMessage
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, err
		}
		source := make(MapSource, len(body))
		for id, raw := range body {
			// null counts as not submitted
			if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
				continue
			}
			var value string
			if err := json.Unmarshal(raw, &value); err != nil {
				return nil, fmt.Errorf("field %s must be a string", id)
			}
			source[id] = value
		}
		return source, nil
	}
	return requestSource{c: c}, nil
}
