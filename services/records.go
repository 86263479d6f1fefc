package services

import (
	"context"

	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/repositories"
	"github.com/temanskyM/scheduler-manager/res"
	"go.uber.org/zap"
)

type RecordsService struct {
	repo      *repositories.RecordRepository
	publisher Publisher
	indexer   Indexer
	logger    *zap.Logger
}

func (r *RecordsService) GetRecords(
	ctx context.Context,
	kind *models.Kind,
	query forms.ListQuery,
) ([]models.Tabular, *res.ErrorRes) {
	return r.repo.GetRecords(ctx, kind, query.Skip, query.Limit)
}

func (r *RecordsService) GetRecord(ctx context.Context, kind *models.Kind, id string) (models.Tabular, *res.ErrorRes) {
	return r.repo.GetRecord(ctx, kind, id)
}

func (r *RecordsService) DeleteRecord(ctx context.Context, kind *models.Kind, id string) *res.ErrorRes {
	if errRes := r.repo.DeleteRecord(ctx, kind, id); errRes != nil {
		return errRes
	}
	if r.indexer != nil {
		if err := r.indexer.Delete(ctx, db.RECORDS_INDEX, id); err != nil {
			r.logger.Warn("cannot remove record from index", zap.String("id", id), zap.Error(err))
		}
	}
	if r.publisher != nil {
		err := r.publisher.PublishEncode(RECORD_DELETED_CHANNEL, res.NotifyRecord{
			Kind:       kind.Name,
			Collection: kind.Collection,
			Record:     id,
		})
		if err != nil {
			r.logger.Warn("cannot publish record event", zap.String("id", id), zap.Error(err))
		}
	}
	return nil
}

func NewRecordsService(
	repo *repositories.RecordRepository,
	publisher Publisher,
	indexer Indexer,
	logger *zap.Logger,
) *RecordsService {
	return &RecordsService{
		repo:      repo,
		publisher: publisher,
		indexer:   indexer,
		logger:    logger,
	}
}
