package curriculum

import "sort"

// Chain holds the flattened lesson order and lookup indices for one course.
// It is built once per course and never mutated; all engine operations
// resolve curriculum ids through it.
type Chain struct {
	course      *Course
	modules     []Module // sorted by Order asc
	order       []string // lesson ids, module order asc then lesson order asc
	index       map[string]int
	lessons     map[string]*Lesson
	moduleByID  map[string]*Module
	moduleOf    map[string]string // lesson id -> module id
	quizzes     map[string]*Quiz
	assignments map[string]*Assignment
	quizLesson  map[string]string // quiz id -> lesson id
}

// NewChain builds the unlock chain for a course. The course is assumed to
// have passed Validate; NewChain does not re-check structural rules.
func NewChain(c *Course) *Chain {
	ch := &Chain{
		course:      c,
		index:       make(map[string]int),
		lessons:     make(map[string]*Lesson),
		moduleByID:  make(map[string]*Module),
		moduleOf:    make(map[string]string),
		quizzes:     make(map[string]*Quiz),
		assignments: make(map[string]*Assignment),
		quizLesson:  make(map[string]string),
	}

	ch.modules = make([]Module, len(c.Modules))
	copy(ch.modules, c.Modules)
	sort.SliceStable(ch.modules, func(i, j int) bool {
		return ch.modules[i].Order < ch.modules[j].Order
	})

	for mi := range ch.modules {
		mod := &ch.modules[mi]
		ch.moduleByID[mod.ID] = mod

		sorted := make([]Lesson, len(mod.Lessons))
		copy(sorted, mod.Lessons)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Order < sorted[j].Order
		})
		mod.Lessons = sorted

		for li := range mod.Lessons {
			les := &mod.Lessons[li]
			ch.index[les.ID] = len(ch.order)
			ch.order = append(ch.order, les.ID)
			ch.lessons[les.ID] = les
			ch.moduleOf[les.ID] = mod.ID
			if les.Quiz != nil {
				ch.quizzes[les.Quiz.ID] = les.Quiz
				ch.quizLesson[les.Quiz.ID] = les.ID
			}
			if les.Assignment != nil {
				ch.assignments[les.Assignment.ID] = les.Assignment
			}
		}
	}
	return ch
}

// Course returns the course the chain was built from.
func (ch *Chain) Course() *Course {
	return ch.course
}

// LessonOrder returns lesson ids in unlock order.
func (ch *Chain) LessonOrder() []string {
	out := make([]string, len(ch.order))
	copy(out, ch.order)
	return out
}

// LessonIndex returns the position of a lesson in the unlock chain.
func (ch *Chain) LessonIndex(lessonID string) (int, bool) {
	i, ok := ch.index[lessonID]
	return i, ok
}

// Lesson returns the lesson with the given id.
func (ch *Chain) Lesson(lessonID string) (*Lesson, bool) {
	l, ok := ch.lessons[lessonID]
	return l, ok
}

// Module returns the module with the given id.
func (ch *Chain) Module(moduleID string) (*Module, bool) {
	m, ok := ch.moduleByID[moduleID]
	return m, ok
}

// Modules returns all modules in order.
func (ch *Chain) Modules() []Module {
	out := make([]Module, len(ch.modules))
	copy(out, ch.modules)
	return out
}

// ModuleOf returns the id of the module containing a lesson.
func (ch *Chain) ModuleOf(lessonID string) (string, bool) {
	m, ok := ch.moduleOf[lessonID]
	return m, ok
}

// Quiz returns the quiz with the given id.
func (ch *Chain) Quiz(quizID string) (*Quiz, bool) {
	q, ok := ch.quizzes[quizID]
	return q, ok
}

// QuizLesson returns the id of the lesson carrying a quiz.
func (ch *Chain) QuizLesson(quizID string) (string, bool) {
	l, ok := ch.quizLesson[quizID]
	return l, ok
}

// Assignment returns the assignment with the given id.
func (ch *Chain) Assignment(assignmentID string) (*Assignment, bool) {
	a, ok := ch.assignments[assignmentID]
	return a, ok
}

// TotalLessons returns the number of lessons across the whole course.
func (ch *Chain) TotalLessons() int {
	return len(ch.order)
}
