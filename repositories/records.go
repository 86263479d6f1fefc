package repositories

import (
	"context"
	"errors"
	"net/http"

	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/funct"
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/res"
	"go.mongodb.org/mongo-driver/bson"
)

type RecordRepository struct {
	store db.Store
}

func statusFromStoreError(err error) int {
	switch {
	case errors.Is(err, db.ErrNoDocument):
		return http.StatusNotFound
	case errors.Is(err, db.ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusServiceUnavailable
	}
}

func decode(kind *models.Kind) func(document bson.Raw) (models.Tabular, error) {
	return func(document bson.Raw) (models.Tabular, error) {
		record := kind.New()
		if err := bson.Unmarshal(document, record); err != nil {
			return nil, err
		}
		return record, nil
	}
}

func (r *RecordRepository) GetRecords(
	ctx context.Context,
	kind *models.Kind,
	skip,
	limit int64,
) ([]models.Tabular, *res.ErrorRes) {
	documents, err := r.store.Find(ctx, kind.Collection, skip, limit)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: statusFromStoreError(err),
		}
	}
	records, err := funct.Map(documents, decode(kind))
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return records, nil
}

func (r *RecordRepository) GetRecord(ctx context.Context, kind *models.Kind, id string) (models.Tabular, *res.ErrorRes) {
	document, err := r.store.FindByID(ctx, kind.Collection, id)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: statusFromStoreError(err),
		}
	}
	record, err := decode(kind)(document)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusInternalServerError,
		}
	}
	return record, nil
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, kind *models.Kind, id string) *res.ErrorRes {
	if err := r.store.Delete(ctx, kind.Collection, id); err != nil {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: statusFromStoreError(err),
		}
	}
	return nil
}

func NewRecordRepository(store db.Store) *RecordRepository {
	return &RecordRepository{store: store}
}
