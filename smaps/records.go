package smaps

import (
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/services"
)

type InsertedIdMap struct {
	ID string `json:"inserted_id"`
}

type RecordsMap struct {
	Records []models.Tabular `json:"records"`
	Skip    int64            `json:"skip"`
	Limit   int64            `json:"limit"`
}

type RecordMap struct {
	Record models.Tabular `json:"record"`
}

type SearchHitsMap struct {
	Hits interface{} `json:"hits"`
}

type KindsMap struct {
	Kinds []services.KindSummary `json:"kinds"`
}

type UploadMap struct {
	Location string `json:"location"`
}
