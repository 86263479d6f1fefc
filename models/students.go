package models

import (
	"github.com/temanskyM/scheduler-manager/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const STUDENTS_COLLECTION = "students"

type Student struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Surname    string             `json:"surname" bson:"surname"`
	Patronymic string             `json:"patronymic" bson:"patronymic"`
	Grade      string             `json:"grade" bson:"grade"`
	Subjects   []string           `json:"subjects" bson:"subjects"`
}

func (s *Student) Columns() []string {
	return append([]string{"name", "surname", "patronymic", "grade"}, forms.StudentSubjects.IDs()...)
}

func (s *Student) Row() []interface{} {
	row := []interface{}{s.Name, s.Surname, s.Patronymic, s.Grade}
	return append(row, padded(s.Subjects, forms.StudentSubjects.Count)...)
}

func NewModelStudent(values forms.Values) (*Student, error) {
	subjects, err := values.Slots(forms.StudentSubjects)
	if err != nil {
		return nil, err
	}
	return &Student{
		Name:       values["name"],
		Surname:    values["surname"],
		Patronymic: values["patronymic"],
		Grade:      values["grade"],
		Subjects:   subjects,
	}, nil
}

var StudentKind = register(&Kind{
	Name:       "student",
	Label:      "Student",
	Collection: STUDENTS_COLLECTION,
	Fields:     forms.StudentFields,
	build: func(values forms.Values) (Tabular, error) {
		return NewModelStudent(values)
	},
	empty: func() Tabular { return &Student{} },
})
