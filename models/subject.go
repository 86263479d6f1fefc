package models

import (
	"github.com/temanskyM/scheduler-manager/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SUBJECT_COLLECTION = "subjects"

// Subject names its teacher as free text; nothing checks it against the
// teachers collection.
type Subject struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SubjectName    string             `json:"subjectname" bson:"subjectname"`
	SubjectTeacher string             `json:"subjectteacher" bson:"subjectteacher"`
}

func (s *Subject) Columns() []string {
	return []string{"subjectname", "subjectteacher"}
}

func (s *Subject) Row() []interface{} {
	return []interface{}{s.SubjectName, s.SubjectTeacher}
}

func NewModelSubject(values forms.Values) *Subject {
	return &Subject{
		SubjectName:    values["subjectname"],
		SubjectTeacher: values["subjectteacher"],
	}
}

var SubjectKind = register(&Kind{
	Name:       "subject",
	Label:      "Subject",
	Collection: SUBJECT_COLLECTION,
	Fields:     forms.SubjectFields,
	build: func(values forms.Values) (Tabular, error) {
		return NewModelSubject(values), nil
	},
	empty: func() Tabular { return &Subject{} },
})
