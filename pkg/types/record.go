package types

import "fmt"

// Record is one student's entry in the roster.
// RollNumber is the lookup key but is not required to be unique; it does not
// change after the record is created. Name and Grade may be edited.
type Record struct {
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
	Grade      string `json:"grade"`
}

// String renders the record the way the shell and the list command print it.
func (r Record) String() string {
	return fmt.Sprintf("Name: %s | Roll No: %s | Grade: %s", r.Name, r.RollNumber, r.Grade)
}

// Validate reports ErrInvalidInput when any field is empty. The store does
// not call it; callers collecting input from a user do.
func (r Record) Validate() error {
	if r.Name == "" || r.RollNumber == "" || r.Grade == "" {
		return fmt.Errorf("%w: fields cannot be empty", ErrInvalidInput)
	}
	return nil
}

// Apply updates Name and Grade in place. An empty value keeps the current one.
func (r *Record) Apply(newName, newGrade string) {
	if newName != "" {
		r.Name = newName
	}
	if newGrade != "" {
		r.Grade = newGrade
	}
}
