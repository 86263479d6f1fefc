package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/stack"
	"go.uber.org/zap"
)

const RESPONDER_TIMEOUT = time.Second * 5

// RecordsResponder answers NATS requests from other services for the
// records of one collection.
type RecordsResponder struct {
	records *RecordsService
	logger  *zap.Logger
}

func NewRecordsResponder(records *RecordsService, logger *zap.Logger) *RecordsResponder {
	return &RecordsResponder{
		records: records,
		logger:  logger,
	}
}

func (r *RecordsResponder) Subscribe(subscriber Subscriber) (*nats.Subscription, error) {
	return subscriber.Subscribe(GET_RECORDS_CHANNEL, func(m *nats.Msg) {
		ctx, cancel := context.WithTimeout(context.Background(), RESPONDER_TIMEOUT)
		defer cancel()

		if err := m.Respond(r.handleGetRecords(ctx, m.Data)); err != nil {
			r.logger.Warn("cannot respond get_records", zap.Error(err))
		}
	})
}

// handleGetRecords expects {"data": {"kind": "students", "skip": 0, "limit": 50}}.
func (r *RecordsResponder) handleGetRecords(ctx context.Context, data []byte) []byte {
	response := make(map[string]interface{})
	records, err := r.getRecords(ctx, data)
	if err != nil {
		response["success"] = false
		response["message"] = err.Error()
	} else {
		response["success"] = true
		response["records"] = records
	}
	message, err := json.Marshal(response)
	if err != nil {
		return []byte(`{"success":false}`)
	}
	return message
}

func (r *RecordsResponder) getRecords(ctx context.Context, data []byte) ([]models.Tabular, error) {
	payload, err := stack.DecodeDataNest(data)
	if err != nil {
		return nil, err
	}
	collection, _ := payload["kind"].(string)
	kind, ok := models.KindFromCollection(collection)
	if !ok {
		return nil, fmt.Errorf("unknown record kind %q", collection)
	}
	query := forms.ListQuery{Limit: 50}
	if skip, ok := payload["skip"].(float64); ok && skip > 0 {
		query.Skip = int64(skip)
	}
	if limit, ok := payload["limit"].(float64); ok && limit > 0 {
		query.Limit = int64(limit)
	}
	records, errRes := r.records.GetRecords(ctx, kind, query)
	if errRes != nil {
		return nil, errRes
	}
	return records, nil
}
