package models

import (
	"sort"

	"github.com/temanskyM/scheduler-manager/forms"
)

// Tabular records can be exported as a row under fixed columns.
type Tabular interface {
	Columns() []string
	Row() []interface{}
}

type Kind struct {
	Name       string
	Label      string
	Collection string
	Fields     forms.FieldSet
	build      func(values forms.Values) (Tabular, error)
	empty      func() Tabular
}

// Build turns submitted values into the record stored for this kind.
func (k *Kind) Build(values forms.Values) (Tabular, error) {
	return k.build(values)
}

// New returns an empty record to decode a stored document into.
func (k *Kind) New() Tabular {
	return k.empty()
}

var kinds = map[string]*Kind{}

func register(kind *Kind) *Kind {
	kinds[kind.Collection] = kind
	return kind
}

func KindFromCollection(collection string) (*Kind, bool) {
	kind, ok := kinds[collection]
	return kind, ok
}

func IsKind(collection string) bool {
	_, ok := kinds[collection]
	return ok
}

// Kinds lists every kind ordered by collection name.
func Kinds() []*Kind {
	all := make([]*Kind, 0, len(kinds))
	for _, kind := range kinds {
		all = append(all, kind)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Collection < all[j].Collection
	})
	return all
}

func padded(values []string, count int) []interface{} {
	row := make([]interface{}, count)
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
