package domain

import "fmt"

// Question models an MCQ question with exactly one correct option.
type Question struct {
	Text               string   `json:"text" yaml:"text"`
	Options            []string `json:"options" yaml:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex" yaml:"correctAnswerIndex"`
}

// NewQuestion builds a validated question.
func NewQuestion(text string, options []string, correct int) (Question, error) {
	q := Question{Text: text, Options: append([]string(nil), options...), CorrectAnswerIndex: correct}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks that the question has a prompt, at least two options and a
// correct index that points at one of them.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidQuestion)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: %q has %d options, need at least 2", ErrInvalidQuestion, q.Text, len(q.Options))
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return fmt.Errorf("%w: %q correct index %d out of range [0,%d)", ErrInvalidQuestion, q.Text, q.CorrectAnswerIndex, len(q.Options))
	}
	return nil
}

// Quiz is a fixed, ordered collection of questions.
type Quiz struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Validate checks every question of the quiz.
func (q Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: quiz %q has no questions", ErrInvalidQuiz, q.ID)
	}
	for i, question := range q.Questions {
		if err := question.Validate(); err != nil {
			return fmt.Errorf("quiz %q question %d: %w", q.ID, i+1, err)
		}
	}
	return nil
}

// Selection is either unanswered or a chosen option index. The zero value is unanswered.
type Selection struct {
	index    int
	answered bool
}

// Unanswered returns the empty selection.
func Unanswered() Selection {
	return Selection{}
}

// Selected returns a selection pointing at option i.
func Selected(i int) Selection {
	return Selection{index: i, answered: true}
}

// Index returns the chosen option and whether there is one.
func (s Selection) Index() (int, bool) {
	return s.index, s.answered
}

// IsAnswered reports whether an option has been chosen.
func (s Selection) IsAnswered() bool {
	return s.answered
}

// Is reports whether the selection points at option i.
func (s Selection) Is(i int) bool {
	return s.answered && s.index == i
}

// Screen is the active view of a session.
type Screen int

const (
	// ScreenTaking is the quiz-taking screen and the initial state.
	ScreenTaking Screen = iota
	// ScreenResults is shown after a successful submit.
	ScreenResults
)

func (s Screen) String() string {
	switch s {
	case ScreenTaking:
		return "taking"
	case ScreenResults:
		return "results"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// MarshalText lets screens appear by name in JSON payloads.
func (s Screen) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
