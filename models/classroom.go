package models

import (
	"github.com/temanskyM/scheduler-manager/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CLASSROOMS_COLLECTION = "classrooms"

type Classroom struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ClassroomNumber string             `json:"classroomnumber" bson:"classroomnumber"`
	ClassCapacity   string             `json:"classcapacity" bson:"classcapacity"`
	// Nil when the form had no subject field.
	ClassroomSubject *string `json:"classroomsubject,omitempty" bson:"classroomsubject,omitempty"`
}

func (c *Classroom) Columns() []string {
	return []string{"classroomnumber", "classcapacity", "classroomsubject"}
}

func (c *Classroom) Row() []interface{} {
	subject := ""
	if c.ClassroomSubject != nil {
		subject = *c.ClassroomSubject
	}
	return []interface{}{c.ClassroomNumber, c.ClassCapacity, subject}
}

func NewModelClassroom(values forms.Values) *Classroom {
	classroom := &Classroom{
		ClassroomNumber: values["classroomnumber"],
		ClassCapacity:   values["classcapacity"],
	}
	if subject, ok := values["classroomsubject"]; ok {
		classroom.ClassroomSubject = &subject
	}
	return classroom
}

var ClassroomKind = register(&Kind{
	Name:       "classroom",
	Label:      "Classroom",
	Collection: CLASSROOMS_COLLECTION,
	Fields:     forms.ClassroomFields,
	build: func(values forms.Values) (Tabular, error) {
		return NewModelClassroom(values), nil
	},
	empty: func() Tabular { return &Classroom{} },
})
