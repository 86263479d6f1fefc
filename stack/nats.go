package stack

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const REQUEST_TIMEOUT = time.Second * 5

type NatsNestJSRes struct {
	ID        string      `json:"id"`
	Response  interface{} `json:"response"`
	IsDispose bool        `json:"isDisposed"`
}

type NatsClient struct {
	conn *nats.Conn
}

func NewNats(host string) (*NatsClient, error) {
	conn, err := nats.Connect(
		fmt.Sprintf("nats://%s", host),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &NatsClient{conn: conn}, nil
}

// FormatRequest wraps data in the {id, data} envelope the NestJS services expect.
func FormatRequest(data interface{}) ([]byte, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, err
	}
	request := make(map[string]interface{})
	request["id"] = id.String()
	if data != nil {
		request["data"] = data
	}
	return json.Marshal(request)
}

func (n *NatsClient) Publish(channel string, message []byte) error {
	return n.conn.Publish(channel, message)
}

func (n *NatsClient) PublishEncode(channel string, data interface{}) error {
	message, err := FormatRequest(data)
	if err != nil {
		return err
	}
	return n.conn.Publish(channel, message)
}

func (n *NatsClient) Request(channel string, data []byte) (*nats.Msg, error) {
	return n.conn.Request(channel, data, REQUEST_TIMEOUT)
}

func (n *NatsClient) Subscribe(channel string, toDo func(m *nats.Msg)) (*nats.Subscription, error) {
	return n.conn.Subscribe(channel, toDo)
}

// DecodeDataNest extracts the "data" object of a NestJS envelope.
func (n *NatsClient) DecodeDataNest(data []byte) (map[string]interface{}, error) {
	return DecodeDataNest(data)
}

func DecodeDataNest(data []byte) (map[string]interface{}, error) {
	var envelope map[string]interface{}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	payload, ok := envelope["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("nats message without data object")
	}
	return payload, nil
}

func (n *NatsClient) Close() {
	n.conn.Close()
}
