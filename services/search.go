package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/res"
)

var ErrSearchDisabled = errors.New("search is not configured")

type SearchService struct {
	searcher Searcher
}

// recordsQuery builds the "query" object: a prefix simple_query_string,
// filtered by collection when kind is set.
func recordsQuery(search, kind string) map[string]interface{} {
	boolQuery := map[string]interface{}{
		"must": map[string]interface{}{
			"simple_query_string": map[string]string{
				"query":    search + "*",
				"analyzer": "standard",
			},
		},
	}
	if kind != "" {
		boolQuery["filter"] = map[string]interface{}{
			"term": map[string]string{
				"kind": kind,
			},
		}
	}
	return map[string]interface{}{"bool": boolQuery}
}

func (s *SearchService) Search(ctx context.Context, search forms.SearchQuery) (interface{}, *res.ErrorRes) {
	if s.searcher == nil {
		return nil, &res.ErrorRes{
			Err:        ErrSearchDisabled,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	hits, err := s.searcher.Search(ctx, recordsQuery(search.Q, search.Kind), db.RECORDS_INDEX)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return hits, nil
}

func NewSearchService(searcher Searcher) *SearchService {
	return &SearchService{searcher: searcher}
}
