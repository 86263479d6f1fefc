package di

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temanskyM/scheduler-manager/db"
	"github.com/temanskyM/scheduler-manager/forms"
	"github.com/temanskyM/scheduler-manager/models"
	"go.uber.org/zap"
)

func TestBuildWithoutSideChannels(t *testing.T) {
	store := db.NewMemoryStore()
	container := Build(store, SideChannels{}, zap.NewNop())
	ctx := context.Background()

	outcome := container.Entry.AddSubject(ctx, forms.MapSource{
		"subjectname":    "Math",
		"subjectteacher": "A. Ivanova",
	})
	require.True(t, outcome.Success, outcome.Message)

	require.Nil(t, container.Records.DeleteRecord(ctx, models.SubjectKind, outcome.ID))
	assert.Equal(t, 0, store.Count("subjects"))

	_, errRes := container.Search.Search(ctx, forms.SearchQuery{Q: "math"})
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusServiceUnavailable, errRes.StatusCode)

	_, errRes = container.Export.Upload(ctx, "")
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusServiceUnavailable, errRes.StatusCode)

	container.Close(ctx)
}
