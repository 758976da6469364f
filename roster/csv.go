package roster

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"classmark"
)

// csvStudent is one row of a student CSV export.
type csvStudent struct {
	FirstName string `csv:"first_name"`
	LastName  string `csv:"last_name"`
	ID        int    `csv:"id"`
}

// LoadStudentsCSV reads students from a CSV export with the columns
// first_name, last_name and id. School administration systems commonly
// export class lists in this shape.
func LoadStudentsCSV(path string) ([]classmark.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []csvStudent
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("roster: parsing %s: %w", path, err)
	}

	students := make([]classmark.Student, len(rows))
	for i, r := range rows {
		students[i] = classmark.Student{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			ID:        r.ID,
		}
	}
	if err := ValidateStudents(students); err != nil {
		return nil, err
	}
	return students, nil
}
