// Package roster loads the class list that drives document generation:
// the school and teacher printed on every copy, and the students that
// each receive one personalized copy of the template.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"classmark"
	"classmark/mail"
)

// Roster is a loaded class file.
type Roster struct {
	Class classmark.Class
	Mail  *mail.Config // optional delivery settings
}

// fileSpec mirrors the class YAML file.
type fileSpec struct {
	School   string        `yaml:"school"`
	Teacher  teacherSpec   `yaml:"teacher"`
	Students []studentSpec `yaml:"students"`
	Mail     *mail.Config  `yaml:"mail,omitempty"`
}

type teacherSpec struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type studentSpec struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	ID        int    `yaml:"id"`
}

// Load reads and parses a class file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a YAML class file and validates it.
func Parse(data []byte) (*Roster, error) {
	var f fileSpec
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("roster: parsing: %w", err)
	}

	r := &Roster{
		Class: classmark.Class{
			School: f.School,
			Teacher: classmark.Teacher{
				FirstName: f.Teacher.FirstName,
				LastName:  f.Teacher.LastName,
			},
			Students: make([]classmark.Student, len(f.Students)),
		},
		Mail: f.Mail,
	}
	for i, s := range f.Students {
		r.Class.Students[i] = classmark.Student{
			FirstName: s.FirstName,
			LastName:  s.LastName,
			ID:        s.ID,
		}
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks that the roster can drive document generation.
func (r *Roster) Validate() error {
	return ValidateStudents(r.Class.Students)
}

// ValidateStudents checks that a student list can drive document
// generation: at least one student, full names, positive IDs. It is run
// on every student source, class file and CSV export alike.
func ValidateStudents(students []classmark.Student) error {
	if len(students) == 0 {
		return classmark.ErrNoStudents
	}
	for i, s := range students {
		if s.LastName == "" {
			return fmt.Errorf("roster: student %d has no last name", i+1)
		}
		if s.FirstName == "" {
			return fmt.Errorf("roster: student %s has no first name", s.LastName)
		}
		if s.ID <= 0 {
			return fmt.Errorf("roster: student %s has no ID", s.LastName)
		}
	}
	return nil
}
