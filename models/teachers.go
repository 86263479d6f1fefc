package models

import (
	"github.com/temanskyM/scheduler-manager/forms"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const TEACHERS_COLLECTION = "teachers"

type Teacher struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Surname    string             `json:"surname" bson:"surname"`
	Patronymic string             `json:"patronymic" bson:"patronymic"`
	Subjects   []string           `json:"subjects" bson:"subjects"`
	Day1Time   string             `json:"day1time" bson:"day1time"`
	Day2Time   string             `json:"day2time" bson:"day2time"`
	Day3Time   string             `json:"day3time" bson:"day3time"`
	Day4Time   string             `json:"day4time" bson:"day4time"`
	Day5Time   string             `json:"day5time" bson:"day5time"`
}

// Availability maps weekday index (1 = first school day) to the time
// text entered for it.
func (t *Teacher) Availability() map[int]string {
	return map[int]string{
		1: t.Day1Time,
		2: t.Day2Time,
		3: t.Day3Time,
		4: t.Day4Time,
		5: t.Day5Time,
	}
}

func (t *Teacher) Columns() []string {
	columns := append([]string{"name", "surname", "patronymic"}, forms.TeacherSubjects.IDs()...)
	for day := 1; day <= forms.TEACHER_DAYS; day++ {
		columns = append(columns, forms.TeacherDayID(day))
	}
	return columns
}

func (t *Teacher) Row() []interface{} {
	row := []interface{}{t.Name, t.Surname, t.Patronymic}
	row = append(row, padded(t.Subjects, forms.TeacherSubjects.Count)...)
	availability := t.Availability()
	for day := 1; day <= forms.TEACHER_DAYS; day++ {
		row = append(row, availability[day])
	}
	return row
}

func NewModelTeacher(values forms.Values) (*Teacher, error) {
	subjects, err := values.Slots(forms.TeacherSubjects)
	if err != nil {
		return nil, err
	}
	return &Teacher{
		Name:       values["name"],
		Surname:    values["surname"],
		Patronymic: values["patronymic"],
		Subjects:   subjects,
		Day1Time:   values[forms.TeacherDayID(1)],
		Day2Time:   values[forms.TeacherDayID(2)],
		Day3Time:   values[forms.TeacherDayID(3)],
		Day4Time:   values[forms.TeacherDayID(4)],
		Day5Time:   values[forms.TeacherDayID(5)],
	}, nil
}

var TeacherKind = register(&Kind{
	Name:       "teacher",
	Label:      "Teacher",
	Collection: TEACHERS_COLLECTION,
	Fields:     forms.TeacherFields,
	build: func(values forms.Values) (Tabular, error) {
		return NewModelTeacher(values)
	},
	empty: func() Tabular { return &Teacher{} },
})
