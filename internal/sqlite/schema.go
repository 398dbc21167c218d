// Package sqlite implements the SQLite roster backend.
package sqlite

// Schema DDL. position preserves roster order across snapshots.
const (
	createStudents = `CREATE TABLE IF NOT EXISTS students (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    roll_number TEXT NOT NULL,
    grade TEXT NOT NULL
);`

	idxStudentsRoll = `CREATE INDEX IF NOT EXISTS idx_students_roll ON students(roll_number);`
)

// schemaDDL lists all statements run before a snapshot is written.
var schemaDDL = []string{
	createStudents,
	idxStudentsRoll,
}

// Queries used by Backend.
const (
	selectStudents = `SELECT name, roll_number, grade FROM students ORDER BY position`
	deleteStudents = `DELETE FROM students`
	insertStudent  = `INSERT INTO students (position, name, roll_number, grade) VALUES (?, ?, ?, ?)`
)
