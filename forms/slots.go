package forms

import (
	"errors"
	"fmt"

	"github.com/temanskyM/scheduler-manager/funct"
)

var ErrSlotGap = errors.New("subject slots must be filled in order")

// SlotSpec describes a numbered run of fields such as subject1..subject9.
type SlotSpec struct {
	Prefix   string
	Count    int
	Required bool
}

func (s SlotSpec) ID(index int) string {
	return fmt.Sprintf("%s%d", s.Prefix, index)
}

func (s SlotSpec) IDs() []string {
	ids := make([]string, s.Count)
	for i := range ids {
		ids[i] = s.ID(i + 1)
	}
	return ids
}

// Slots returns the slot values ordered by slot index. Optional slots
// must form a prefix: subject3 without subject2 is rejected.
func (v Values) Slots(spec SlotSpec) ([]string, error) {
	ids := spec.IDs()
	present := func(id string) bool {
		_, ok := v[id]
		return ok
	}

	filled := funct.Index(ids, func(id string) bool { return !present(id) })
	if filled == -1 {
		filled = len(ids)
	} else if spec.Required {
		return nil, &MissingFieldError{ID: ids[filled]}
	} else if gap := funct.Index(ids[filled:], present); gap != -1 {
		return nil, fmt.Errorf("%w: %s submitted without %s", ErrSlotGap, ids[filled+gap], ids[filled])
	}

	slots := make([]string, filled)
	for i, id := range ids[:filled] {
		slots[i] = v[id]
	}
	return slots, nil
}
