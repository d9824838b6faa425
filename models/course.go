package models

// Subject groups flashcards; slice order is display order.
type Subject struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Flashcards []Flashcard `json:"flashcards"`
}

// Course is the top level of the content tree.
type Course struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Subjects []Subject `json:"subjects"`
}

// CloneCourses deep-copies a content tree. Nil subject and flashcard slices
// come back empty so the tree always encodes as arrays.
func CloneCourses(courses []Course) []Course {
	out := make([]Course, len(courses))
	for i, c := range courses {
		out[i] = Course{ID: c.ID, Name: c.Name, Subjects: make([]Subject, len(c.Subjects))}
		for j, s := range c.Subjects {
			cards := make([]Flashcard, len(s.Flashcards))
			copy(cards, s.Flashcards)
			out[i].Subjects[j] = Subject{ID: s.ID, Name: s.Name, Flashcards: cards}
		}
	}
	return out
}

func FindCourse(courses []Course, id string) (Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

func (c Course) FindSubject(id string) (Subject, bool) {
	for _, s := range c.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// CountCards is the number of flashcards across the whole tree.
func CountCards(courses []Course) int {
	n := 0
	for _, c := range courses {
		for _, s := range c.Subjects {
			n += len(s.Flashcards)
		}
	}
	return n
}
