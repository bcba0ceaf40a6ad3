package domain

// DefaultQuizID identifies the built-in quiz.
const DefaultQuizID = "default"

// ReferenceQuiz returns the built-in five-question quiz used when nothing else is configured.
func ReferenceQuiz() Quiz {
	return Quiz{
		ID:    DefaultQuizID,
		Title: "Quiz Time!",
		Questions: []Question{
			{Text: "What is the capital of France?", Options: []string{"London", "Berlin", "Paris", "Madrid"}, CorrectAnswerIndex: 2},
			{Text: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, CorrectAnswerIndex: 1},
			{Text: "What is the largest ocean on Earth?", Options: []string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean", "Pacific Ocean"}, CorrectAnswerIndex: 3},
			{Text: "Who wrote 'Romeo and Juliet'?", Options: []string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"}, CorrectAnswerIndex: 1},
			{Text: "What is the chemical symbol for gold?", Options: []string{"Go", "Gd", "Au", "Ag"}, CorrectAnswerIndex: 2},
		},
	}
}
