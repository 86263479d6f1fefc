package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/temanskyM/scheduler-manager/forms"
)

type published struct {
	channel string
	data    interface{}
}

type fakePublisher struct {
	mutex    sync.Mutex
	messages []published
	err      error
}

func (f *fakePublisher) PublishEncode(channel string, data interface{}) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, published{channel: channel, data: data})
	return nil
}

type fakeIndex struct {
	documents map[string]interface{}
	query     map[string]interface{}
	indices   []string
	hits      interface{}
	err       error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{documents: make(map[string]interface{})}
}

func (f *fakeIndex) Index(ctx context.Context, index, id string, document interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.documents[id] = document
	return nil
}

func (f *fakeIndex) Delete(ctx context.Context, index, id string) error {
	delete(f.documents, id)
	return nil
}

func (f *fakeIndex) Search(ctx context.Context, query map[string]interface{}, indices ...string) (interface{}, error) {
	f.query = query
	f.indices = indices
	return f.hits, f.err
}

type fakeUploader struct {
	key         string
	contentType string
	body        []byte
}

func (f *fakeUploader) UploadFile(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("empty upload")
	}
	f.key = key
	f.contentType = contentType
	f.body = data
	return "s3://exports/" + key, nil
}

var studentSubjects = []string{"Math", "Physics", "Chemistry", "Biology", "History", "Literature", "Art", "Music", "PE"}

func studentForm() forms.MapSource {
	source := forms.MapSource{
		"name":       "Anna",
		"surname":    "Petrova",
		"patronymic": "Sergeevna",
		"grade":      "9",
	}
	for i, id := range forms.StudentSubjects.IDs() {
		source[id] = studentSubjects[i]
	}
	return source
}

func teacherForm() forms.MapSource {
	return forms.MapSource{
		"name":       "Alla",
		"surname":    "Ivanova",
		"patronymic": "Petrovna",
		"subject1":   "Math",
		"subject2":   "Algebra",
		"subject3":   "Geometry",
		"day1time":   "08:00-14:00",
		"day2time":   "09:00-15:00",
		"day3time":   "",
		"day4time":   "12:00-18:00",
		"day5time":   "08:00-11:00",
	}
}
