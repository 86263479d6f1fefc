package forms

import "fmt"

type FieldSet struct {
	Required []string
	Optional []string
}

func (f FieldSet) IDs() []string {
	ids := make([]string, 0, len(f.Required)+len(f.Optional))
	ids = append(ids, f.Required...)
	return append(ids, f.Optional...)
}

var StudentSubjects = SlotSpec{Prefix: "subject", Count: 9, Required: true}

var TeacherSubjects = SlotSpec{Prefix: "subject", Count: 10}

// One availability field per weekday, day1time..day5time.
const TEACHER_DAYS = 5

func TeacherDayID(day int) string {
	return fmt.Sprintf("day%dtime", day)
}

func teacherDayIDs() []string {
	ids := make([]string, TEACHER_DAYS)
	for i := range ids {
		ids[i] = TeacherDayID(i + 1)
	}
	return ids
}

var StudentFields = FieldSet{
	Required: append(
		[]string{"name", "surname", "patronymic", "grade"},
		StudentSubjects.IDs()...,
	),
}

var TeacherFields = FieldSet{
	Required: append(
		[]string{"name", "surname", "patronymic"},
		teacherDayIDs()...,
	),
	Optional: TeacherSubjects.IDs(),
}

var SubjectFields = FieldSet{
	Required: []string{"subjectname", "subjectteacher"},
}

var ClassroomFields = FieldSet{
	Required: []string{"classroomnumber", "classcapacity"},
	Optional: []string{"classroomsubject"},
}
