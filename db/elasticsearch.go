package db

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const RECORDS_INDEX = "school_records"

type ElasticConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	TLS      bool
}

func (c ElasticConfig) Address() string {
	scheme := "http"
	if c.TLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, c.Port)
}

// Exponential backoff restarted on the first attempt of every request.
func retryBackoff() func(attempt int) time.Duration {
	exp := backoff.NewExponentialBackOff()
	return func(attempt int) time.Duration {
		if attempt == 1 {
			exp.Reset()
		}
		return exp.NextBackOff()
	}
}

func NewConnectionEs(config ElasticConfig) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{config.Address()},
		Username:  config.Username,
		Password:  config.Password,
		Transport: &http.Transport{
			MaxIdleConns:          10,
			ResponseHeaderTimeout: 2 * time.Second,
		},
		RetryOnStatus: []int{
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
			http.StatusTooManyRequests,
		},
		RetryBackoff: retryBackoff(),
		MaxRetries:   5,
	})
}

type SearchIndex struct {
	es *elasticsearch.Client
}

func NewSearchIndex(es *elasticsearch.Client) *SearchIndex {
	return &SearchIndex{es: es}
}

func responseError(response *esapi.Response) error {
	if !response.IsError() {
		return nil
	}
	return fmt.Errorf("elasticsearch: %s", response.String())
}

func (s *SearchIndex) Index(ctx context.Context, index, id string, document interface{}) error {
	body, err := json.Marshal(document)
	if err != nil {
		return err
	}
	response, err := s.es.Index(
		index,
		bytes.NewReader(body),
		s.es.Index.WithContext(ctx),
		s.es.Index.WithDocumentID(id),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	return responseError(response)
}

func (s *SearchIndex) Delete(ctx context.Context, index, id string) error {
	response, err := s.es.Delete(index, id, s.es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode == http.StatusNotFound {
		return nil
	}
	return responseError(response)
}

func searchBody(query map[string]interface{}) (*bytes.Reader, error) {
	body, err := json.Marshal(map[string]interface{}{"query": query})
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(body), nil
}

// Search wraps query in a search body and returns the "hits" object.
func (s *SearchIndex) Search(ctx context.Context, query map[string]interface{}, indices ...string) (interface{}, error) {
	body, err := searchBody(query)
	if err != nil {
		return nil, err
	}
	response, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(indices...),
		s.es.Search.WithBody(body),
		s.es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if err := responseError(response); err != nil {
		return nil, err
	}
	var mapRes map[string]interface{}
	if err := json.NewDecoder(response.Body).Decode(&mapRes); err != nil {
		return nil, err
	}
	return mapRes["hits"], nil
}
