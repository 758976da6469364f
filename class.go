// Package classmark personalizes a shared template PDF for a class of
// students. Every student receives a copy of the template with identifying
// information (name, ID, teacher, school, page number) stamped onto the
// pages as opaque overlay boxes; all copies are concatenated into one
// combined output document.
//
// The root package holds the domain model shared by the subpackages:
// students, the class they belong to, and the render context handed to
// overlay masks. The actual work happens in the subpackages:
//
//   - mask:     the overlay box family (info box, header box, barcode)
//   - table:    fixed-layout label/value tables drawn inside masks
//   - layout:   the declarative page-to-mask mapping
//   - roster:   class file and CSV loading, collated student ordering
//   - template: template PDF inspection and validation
//   - overlay:  the students-by-pages merge loop producing the output
package classmark

import "strings"

// Student identifies one exam participant.
type Student struct {
	FirstName string
	LastName  string
	ID        int
}

// Teacher identifies the supervising teacher printed on task pages.
type Teacher struct {
	FirstName string
	LastName  string
}

// DisplayName returns the teacher's name as it appears on documents,
// last name first.
func (t Teacher) DisplayName() string {
	return strings.TrimSpace(t.LastName + " " + t.FirstName)
}

// Class groups the students that share one template together with the
// school and teacher data printed on every copy.
type Class struct {
	School   string
	Teacher  Teacher
	Students []Student
}

// Context carries the data available to a mask while it renders one page
// of one student's copy.
type Context struct {
	School  string
	Teacher Teacher
	Student Student
	PageNum int // 0-based index of the current template page
}

// Context builds the render context for the given student and 0-based
// template page number.
func (c *Class) Context(s Student, pageNum int) *Context {
	return &Context{
		School:  c.School,
		Teacher: c.Teacher,
		Student: s,
		PageNum: pageNum,
	}
}
