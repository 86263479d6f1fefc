package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/forms"
)

func TestRecordsQuery(t *testing.T) {
	query := recordsQuery(`Iva"nova`, "teachers")

	boolQuery := query["bool"].(map[string]interface{})
	must := boolQuery["must"].(map[string]interface{})
	simple := must["simple_query_string"].(map[string]string)
	assert.Equal(t, `Iva"nova*`, simple["query"])
	filter := boolQuery["filter"].(map[string]interface{})
	assert.Equal(t, "teachers", filter["term"].(map[string]string)["kind"])
}

func TestRecordsQueryWithoutKind(t *testing.T) {
	query := recordsQuery("math", "")
	assert.NotContains(t, query["bool"], "filter")
}

func TestSearch(t *testing.T) {
	index := newFakeIndex()
	index.hits = []interface{}{map[string]interface{}{"_id": "1"}}
	search := NewSearchService(index)

	hits, errRes := search.Search(context.Background(), forms.SearchQuery{Q: "math"})
	require.Nil(t, errRes)
	assert.Equal(t, index.hits, hits)
	assert.Equal(t, []string{db.RECORDS_INDEX}, index.indices)
	simple := index.query["bool"].(map[string]interface{})["must"].(map[string]interface{})["simple_query_string"]
	assert.Equal(t, "math*", simple.(map[string]string)["query"])
}

func TestSearchErrors(t *testing.T) {
	_, errRes := NewSearchService(nil).Search(context.Background(), forms.SearchQuery{Q: "math"})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusServiceUnavailable, errRes.StatusCode)
	assert.ErrorIs(t, errRes, ErrSearchDisabled)

	index := newFakeIndex()
	index.err = errors.New("cluster down")
	_, errRes = NewSearchService(index).Search(context.Background(), forms.SearchQuery{Q: "math"})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusServiceUnavailable, errRes.StatusCode)
}
