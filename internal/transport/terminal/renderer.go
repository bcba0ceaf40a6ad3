// Package terminal draws quiz views as plain text and drives a session from line commands.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"quiz-app/internal/app"
	"quiz-app/internal/domain"
)

// Draw writes the view for whichever screen is active.
func Draw(w io.Writer, view app.View) error {
	var b strings.Builder
	switch view.Screen {
	case domain.ScreenResults:
		drawResults(&b, view.Results)
	default:
		drawQuiz(&b, view.Quiz)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func drawQuiz(b *strings.Builder, q *app.QuizView) {
	if q == nil {
		return
	}
	title := q.Title
	if title == "" {
		title = "Quiz"
	}
	fmt.Fprintf(b, "%s\n\n", title)
	for _, question := range q.Questions {
		fmt.Fprintf(b, "Question %d:\n%s\n", question.Number, question.Text)
		for i, option := range question.Options {
			marker := "( )"
			if question.Selected != nil && *question.Selected == i {
				marker = "(*)"
			}
			fmt.Fprintf(b, "  %s %d. %s\n", marker, i+1, option)
		}
		b.WriteString("\n")
	}
	if q.Ready {
		b.WriteString("All questions answered. Type 'submit' to see your score.\n")
	} else {
		b.WriteString("Answer with '<question> <option>', e.g. '1 3'. Submit unlocks once every question is answered.\n")
	}
}

func drawResults(b *strings.Builder, r *app.ResultsView) {
	if r == nil {
		return
	}
	fmt.Fprintf(b, "Quiz Results\n\n")
	fmt.Fprintf(b, "[%s] %s\n", r.Feedback.Icon, strings.ToUpper(string(r.Feedback.Tier)))
	fmt.Fprintf(b, "Your Score\n%d out of %d (%.0f%%)\n\n", r.Score, r.Total, app.Ratio(r.Score, r.Total)*100)
	fmt.Fprintf(b, "%s\n\n", r.Feedback.Message)
	b.WriteString("Type 'again' to try again or 'quit' to exit.\n")
}
