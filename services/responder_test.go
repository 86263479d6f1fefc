package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/repositories"
	"github.com/temanskyM/scheduler-manager/stack"
	"go.uber.org/zap"
)

type responderReply struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Records []map[string]interface{} `json:"records"`
}

func setupResponder(t *testing.T) *RecordsResponder {
	t.Helper()
	store := db.NewMemoryStore()
	entry := NewEntryService(store, zap.NewNop())
	for _, name := range []string{"Math", "Art", "Music"} {
		outcome := entry.AddSubject(context.Background(), forms.MapSource{
			"subjectname":    name,
			"subjectteacher": "A. Ivanova",
		})
		require.True(t, outcome.Success)
	}
	records := NewRecordsService(repositories.NewRecordRepository(store), nil, nil, zap.NewNop())
	return NewRecordsResponder(records, zap.NewNop())
}

func request(t *testing.T, data interface{}) []byte {
	t.Helper()
	message, err := stack.FormatRequest(data)
	require.NoError(t, err)
	return message
}

func TestResponderGetRecords(t *testing.T) {
	responder := setupResponder(t)

	raw := responder.handleGetRecords(context.Background(), request(t, map[string]interface{}{
		"kind":  "subjects",
		"limit": 2,
	}))

	var reply responderReply
	require.NoError(t, json.Unmarshal(raw, &reply))
	assert.True(t, reply.Success)
	assert.Len(t, reply.Records, 2)
	assert.Contains(t, reply.Records[0], "subjectname")
}

func TestResponderUnknownKind(t *testing.T) {
	responder := setupResponder(t)

	raw := responder.handleGetRecords(context.Background(), request(t, map[string]interface{}{
		"kind": "grades",
	}))

	var reply responderReply
	require.NoError(t, json.Unmarshal(raw, &reply))
	assert.False(t, reply.Success)
	assert.Contains(t, reply.Message, "grades")
}
