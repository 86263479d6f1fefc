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
	"github.com/temanskyM/scheduler-manager/models"
	"github.com/temanskyM/scheduler-manager/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func setupEntry(opts ...EntryOption) (*EntryService, *db.MemoryStore) {
	store := db.NewMemoryStore()
	return NewEntryService(store, zap.NewNop(), opts...), store
}

func storedDocument(t *testing.T, store *db.MemoryStore, collection, id string) map[string]interface{} {
	t.Helper()
	raw, err := store.FindByID(context.Background(), collection, id)
	require.NoError(t, err)
	var document map[string]interface{}
	require.NoError(t, bson.Unmarshal(raw, &document))
	delete(document, "_id")
	return document
}

func TestAddStudentKeepsSubjectOrder(t *testing.T) {
	entry, store := setupEntry()

	outcome := entry.AddStudent(context.Background(), studentForm())

	require.True(t, outcome.Success, outcome.Message)
	assert.Equal(t, http.StatusCreated, outcome.StatusCode)
	assert.Equal(t, "Student added successfully!", outcome.Message)
	assert.Equal(t, 1, store.Count("students"))

	raw, err := store.FindByID(context.Background(), "students", outcome.ID)
	require.NoError(t, err)
	var student models.Student
	require.NoError(t, bson.Unmarshal(raw, &student))
	assert.Equal(t, studentSubjects, student.Subjects)
	assert.Equal(t, "Anna", student.Name)
	assert.Equal(t, "Sergeevna", student.Patronymic)
	assert.Equal(t, "9", student.Grade)
}

func TestAddTeacherAvailabilityVerbatim(t *testing.T) {
	entry, store := setupEntry()
	form := teacherForm()

	outcome := entry.AddTeacher(context.Background(), form)
	require.True(t, outcome.Success, outcome.Message)

	raw, err := store.FindByID(context.Background(), "teachers", outcome.ID)
	require.NoError(t, err)
	var teacher models.Teacher
	require.NoError(t, bson.Unmarshal(raw, &teacher))

	for day, value := range teacher.Availability() {
		assert.Equal(t, form[forms.TeacherDayID(day)], value)
	}
	assert.Equal(t, []string{"Math", "Algebra", "Geometry"}, teacher.Subjects)
}

func TestFailedWriteReportsFailure(t *testing.T) {
	entry, store := setupEntry()
	store.FailWith(errors.New("network unreachable"))

	outcome := entry.AddClassroom(context.Background(), forms.MapSource{
		"classroomnumber": "101",
		"classcapacity":   "30",
	})

	assert.False(t, outcome.Success)
	assert.Equal(t, http.StatusServiceUnavailable, outcome.StatusCode)
	assert.Equal(t, "Error adding classroom: network unreachable", outcome.Message)
	assert.NotContains(t, outcome.Message, "successfully")
	assert.Empty(t, outcome.ID)
	assert.Equal(t, 0, store.Count("classrooms"))
}

func TestSameSubmissionTwiceCreatesTwoDocuments(t *testing.T) {
	entry, store := setupEntry()

	first := entry.AddStudent(context.Background(), studentForm())
	second := entry.AddStudent(context.Background(), studentForm())

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, store.Count("students"))
}

func TestAddSubjectStoredUnmodified(t *testing.T) {
	entry, store := setupEntry()

	outcome := entry.AddSubject(context.Background(), forms.MapSource{
		"subjectname":    "Math",
		"subjectteacher": "A. Ivanova",
	})
	require.True(t, outcome.Success, outcome.Message)

	assert.Equal(t, map[string]interface{}{
		"subjectname":    "Math",
		"subjectteacher": "A. Ivanova",
	}, storedDocument(t, store, "subjects", outcome.ID))
	assert.Equal(t, 0, store.Count("teachers"))
}

func TestAddClassroomStoresThreeValues(t *testing.T) {
	entry, store := setupEntry()

	outcome := entry.AddClassroom(context.Background(), forms.MapSource{
		"classroomnumber":  "101",
		"classcapacity":    "30",
		"classroomsubject": "Physics",
	})
	require.True(t, outcome.Success, outcome.Message)

	assert.Equal(t, map[string]interface{}{
		"classroomnumber":  "101",
		"classcapacity":    "30",
		"classroomsubject": "Physics",
	}, storedDocument(t, store, "classrooms", outcome.ID))
}

func TestMissingFieldIsNotWritten(t *testing.T) {
	entry, store := setupEntry()
	form := studentForm()
	delete(form, "subject4")

	outcome := entry.AddStudent(context.Background(), form)

	assert.False(t, outcome.Success)
	assert.Equal(t, http.StatusBadRequest, outcome.StatusCode)
	assert.ErrorIs(t, outcome.Err, forms.ErrMissingField)
	assert.Equal(t, 0, store.Count("students"))
}

func TestTeacherSubjectGapIsRejected(t *testing.T) {
	entry, store := setupEntry()
	form := teacherForm()
	delete(form, "subject2")

	outcome := entry.AddTeacher(context.Background(), form)

	assert.False(t, outcome.Success)
	assert.ErrorIs(t, outcome.Err, forms.ErrSlotGap)
	assert.Equal(t, 0, store.Count("teachers"))
}

func TestEmptyValuesPassThrough(t *testing.T) {
	entry, store := setupEntry()

	outcome := entry.AddSubject(context.Background(), forms.MapSource{
		"subjectname":    "",
		"subjectteacher": "",
	})
	require.True(t, outcome.Success)
	assert.Equal(t, map[string]interface{}{
		"subjectname":    "",
		"subjectteacher": "",
	}, storedDocument(t, store, "subjects", outcome.ID))
}

func TestSuccessNotifiesSideChannels(t *testing.T) {
	publisher := &fakePublisher{}
	index := newFakeIndex()
	entry, _ := setupEntry(WithPublisher(publisher), WithIndexer(index))

	outcome := entry.AddSubject(context.Background(), forms.MapSource{
		"subjectname":    "Math",
		"subjectteacher": "A. Ivanova",
	})
	require.True(t, outcome.Success)

	require.Len(t, publisher.messages, 1)
	assert.Equal(t, RECORD_CREATED_CHANNEL, publisher.messages[0].channel)
	assert.Equal(t, res.NotifyRecord{
		Kind:       "subject",
		Collection: "subjects",
		Record:     outcome.ID,
	}, publisher.messages[0].data)

	document, ok := index.documents[outcome.ID].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "subjects", document["kind"])
	assert.Equal(t, "Math", document["subjectname"])
	assert.NotContains(t, document, "_id")
}

func TestSideChannelFailuresKeepSuccess(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("nats down")}
	index := newFakeIndex()
	index.err = errors.New("es down")
	entry, store := setupEntry(WithPublisher(publisher), WithIndexer(index))

	outcome := entry.AddStudent(context.Background(), studentForm())

	assert.True(t, outcome.Success)
	assert.Equal(t, 1, store.Count("students"))
}

func TestFailedWriteDoesNotNotify(t *testing.T) {
	publisher := &fakePublisher{}
	entry, store := setupEntry(WithPublisher(publisher))
	store.FailWith(errors.New("down"))

	outcome := entry.AddStudent(context.Background(), studentForm())

	assert.False(t, outcome.Success)
	assert.Empty(t, publisher.messages)
}

func TestOutcomeResponse(t *testing.T) {
	entry, _ := setupEntry()
	outcome := entry.AddSubject(context.Background(), forms.MapSource{
		"subjectname":    "Math",
		"subjectteacher": "A. Ivanova",
	})

	response := outcome.Response()
	assert.True(t, response.Success)
	assert.Equal(t, map[string]interface{}{"inserted_id": outcome.ID}, response.Data)
}
