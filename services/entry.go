package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/metrics"
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/res"
	"go.uber.org/zap"
)

// EntryService reads a submitted form, builds the record and writes it
// through the gateway. Each call creates at most one document.
type EntryService struct {
	gateway   db.Gateway
	publisher Publisher
	indexer   Indexer
	logger    *zap.Logger
}

type EntryOption func(*EntryService)

func WithPublisher(publisher Publisher) EntryOption {
	return func(e *EntryService) {
		e.publisher = publisher
	}
}

func WithIndexer(indexer Indexer) EntryOption {
	return func(e *EntryService) {
		e.indexer = indexer
	}
}

func NewEntryService(gateway db.Gateway, logger *zap.Logger, opts ...EntryOption) *EntryService {
	entry := &EntryService{
		gateway: gateway,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(entry)
	}
	return entry
}

func (e *EntryService) AddStudent(ctx context.Context, source forms.FieldSource) *res.Outcome {
	return e.Add(ctx, models.StudentKind, source)
}

func (e *EntryService) AddTeacher(ctx context.Context, source forms.FieldSource) *res.Outcome {
	return e.Add(ctx, models.TeacherKind, source)
}

func (e *EntryService) AddSubject(ctx context.Context, source forms.FieldSource) *res.Outcome {
	return e.Add(ctx, models.SubjectKind, source)
}

func (e *EntryService) AddClassroom(ctx context.Context, source forms.FieldSource) *res.Outcome {
	return e.Add(ctx, models.ClassroomKind, source)
}

func (e *EntryService) Add(ctx context.Context, kind *models.Kind, source forms.FieldSource) *res.Outcome {
	values, err := forms.NewReader(source).ReadSet(kind.Fields)
	if err != nil {
		return e.invalid(kind, err)
	}
	record, err := kind.Build(values)
	if err != nil {
		return e.invalid(kind, err)
	}

	id, err := e.gateway.Save(ctx, kind.Collection, record)
	if err != nil {
		e.logger.Error(
			fmt.Sprintf("Error adding %s", kind.Name),
			zap.String("collection", kind.Collection),
			zap.Error(err),
		)
		metrics.ObserveSubmission(kind.Name, metrics.OutcomeFailed)
		return res.Failed(
			kind.Name,
			http.StatusServiceUnavailable,
			fmt.Sprintf("Error adding %s: %v", kind.Name, err),
			err,
		)
	}
	metrics.ObserveSubmission(kind.Name, metrics.OutcomeSuccess)

	e.notify(ctx, kind, id, record)
	return res.Succeeded(kind.Name, id, fmt.Sprintf("%s added successfully!", kind.Label))
}

func (e *EntryService) invalid(kind *models.Kind, err error) *res.Outcome {
	metrics.ObserveSubmission(kind.Name, metrics.OutcomeInvalid)
	return res.Failed(
		kind.Name,
		http.StatusBadRequest,
		fmt.Sprintf("Error adding %s: %v", kind.Name, err),
		err,
	)
}

// notify runs after the document exists; its failures are logged only.
func (e *EntryService) notify(ctx context.Context, kind *models.Kind, id string, record models.Tabular) {
	if e.publisher != nil {
		err := e.publisher.PublishEncode(RECORD_CREATED_CHANNEL, res.NotifyRecord{
			Kind:       kind.Name,
			Collection: kind.Collection,
			Record:     id,
		})
		if err != nil {
			metrics.ObserveSideChannelError("nats")
			e.logger.Warn("cannot publish record event", zap.String("id", id), zap.Error(err))
		}
	}
	if e.indexer != nil {
		document, err := searchDocument(kind, record)
		if err == nil {
			err = e.indexer.Index(ctx, db.RECORDS_INDEX, id, document)
		}
		if err != nil {
			metrics.ObserveSideChannelError("elasticsearch")
			e.logger.Warn("cannot index record", zap.String("id", id), zap.Error(err))
		}
	}
}

func searchDocument(kind *models.Kind, record models.Tabular) (map[string]interface{}, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var document map[string]interface{}
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, err
	}
	delete(document, "_id")
	document["kind"] = kind.Collection
	return document, nil
}
