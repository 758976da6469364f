package roster

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"classmark"
)

// SortStudents orders students by last name, then first name, using the
// collation rules of the given language so that names with diacritics
// sort the way a class register does.
func SortStudents(students []classmark.Student, tag language.Tag) {
	c := collate.New(tag)
	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i], students[j]
		if r := c.CompareString(a.LastName, b.LastName); r != 0 {
			return r < 0
		}
		return c.CompareString(a.FirstName, b.FirstName) < 0
	})
}
