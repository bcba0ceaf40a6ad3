package app

import "quiz-app/internal/domain"

// QuestionView is one question as the quiz screen shows it.
type QuestionView struct {
	Number   int      `json:"number"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Selected *int     `json:"selected"`
}

// QuizView is the quiz-taking screen.
type QuizView struct {
	Title     string         `json:"title"`
	Questions []QuestionView `json:"questions"`
	Ready     bool           `json:"ready"`
}

// ResultsView is the results screen.
type ResultsView struct {
	Score    int      `json:"score"`
	Total    int      `json:"total"`
	Feedback Feedback `json:"feedback"`
}

// View is what a renderer draws. Exactly one of Quiz and Results is set,
// matching Screen.
type View struct {
	Screen  domain.Screen `json:"screen"`
	Quiz    *QuizView     `json:"quiz,omitempty"`
	Results *ResultsView  `json:"results,omitempty"`
}

// Controller picks the active screen and forwards renderer actions to a session.
type Controller struct {
	session *Session
}

func NewController(session *Session) *Controller {
	return &Controller{session: session}
}

func (c *Controller) Session() *Session { return c.session }

// SelectAnswer forwards a selection to the session.
func (c *Controller) SelectAnswer(questionIndex, optionIndex int) error {
	return c.session.SelectAnswer(questionIndex, optionIndex)
}

// Submit scores the quiz; on success the next Render shows results.
func (c *Controller) Submit() error {
	_, err := c.session.Submit()
	return err
}

// Reset is the "try again" action of the results screen.
func (c *Controller) Reset() {
	c.session.Reset()
}

// Render builds the view for the active screen.
func (c *Controller) Render() View {
	s := c.session
	if s.Screen() == domain.ScreenResults {
		return View{
			Screen: domain.ScreenResults,
			Results: &ResultsView{
				Score:    s.Score(),
				Total:    s.Total(),
				Feedback: FeedbackFor(s.Score(), s.Total()),
			},
		}
	}

	selections := s.Selections()
	questions := make([]QuestionView, 0, s.Total())
	for i, q := range s.Questions() {
		qv := QuestionView{
			Number:  i + 1,
			Text:    q.Text,
			Options: q.Options,
		}
		if idx, ok := selections[i].Index(); ok {
			qv.Selected = &idx
		}
		questions = append(questions, qv)
	}
	return View{
		Screen: domain.ScreenTaking,
		Quiz: &QuizView{
			Title:     s.Title(),
			Questions: questions,
			Ready:     s.AllAnswered(),
		},
	}
}
