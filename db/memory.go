package db

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryCollection struct {
	order []string
	docs  map[string]bson.Raw
}

// MemoryStore keeps documents in process. FailWith makes every following
// Save fail without storing anything.
type MemoryStore struct {
	mutex       sync.RWMutex
	collections map[string]*memoryCollection
	failErr     error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (m *MemoryStore) FailWith(err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.failErr = err
}

func (m *MemoryStore) Save(ctx context.Context, collection string, record interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	raw, err := bson.Marshal(record)
	if err != nil {
		return "", err
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return "", err
	}
	oid := primitive.NewObjectID()
	document := bson.D{{Key: "_id", Value: oid}}
	for _, field := range fields {
		if field.Key != "_id" {
			document = append(document, field)
		}
	}
	stored, err := bson.Marshal(document)
	if err != nil {
		return "", err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.failErr != nil {
		return "", m.failErr
	}
	c, ok := m.collections[collection]
	if !ok {
		c = &memoryCollection{docs: make(map[string]bson.Raw)}
		m.collections[collection] = c
	}
	id := oid.Hex()
	c.order = append(c.order, id)
	c.docs[id] = stored
	return id, nil
}

func (m *MemoryStore) Find(ctx context.Context, collection string, skip, limit int64) ([]bson.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	documents := []bson.Raw{}
	c, ok := m.collections[collection]
	if !ok {
		return documents, nil
	}
	for i, id := range c.order {
		if int64(i) < skip {
			continue
		}
		if limit > 0 && int64(len(documents)) >= limit {
			break
		}
		documents = append(documents, c.docs[id])
	}
	return documents, nil
}

func (m *MemoryStore) FindByID(ctx context.Context, collection, id string) (bson.Raw, error) {
	if _, err := objectID(id); err != nil {
		return nil, err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	c, ok := m.collections[collection]
	if !ok {
		return nil, ErrNoDocument
	}
	document, ok := c.docs[id]
	if !ok {
		return nil, ErrNoDocument
	}
	return document, nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := objectID(id); err != nil {
		return err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	c, ok := m.collections[collection]
	if !ok {
		return ErrNoDocument
	}
	if _, ok := c.docs[id]; !ok {
		return ErrNoDocument
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count reports how many documents a collection holds.
func (m *MemoryStore) Count(collection string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if c, ok := m.collections[collection]; ok {
		return len(c.docs)
	}
	return 0
}
