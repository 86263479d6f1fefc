package services

import (
	"context"
	"io"

	"github.com/nats-io/nats.go"
)

const (
	RECORD_CREATED_CHANNEL = "record_created"
	RECORD_DELETED_CHANNEL = "record_deleted"
	GET_RECORDS_CHANNEL    = "get_records"
)

// Publisher is satisfied by *stack.NatsClient.
type Publisher interface {
	PublishEncode(channel string, data interface{}) error
}

type Subscriber interface {
	Subscribe(channel string, toDo func(m *nats.Msg)) (*nats.Subscription, error)
}

// Indexer and Searcher are satisfied by *db.SearchIndex.
type Indexer interface {
	Index(ctx context.Context, index, id string, document interface{}) error
	Delete(ctx context.Context, index, id string) error
}

type Searcher interface {
	Search(ctx context.Context, query map[string]interface{}, indices ...string) (interface{}, error)
}

// Uploader is satisfied by *aws_s3.AWSS3.
type Uploader interface {
	UploadFile(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
