package httpdto

import "community-board/internal/domain/question"

// QuestionsResponse wraps the full question list after a write.
type QuestionsResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message,omitempty"`
	Questions []question.Question `json:"questions"`
}

const (
	MsgQuestionSaved     = "Question saved"
	MsgQuestionSaveError = "Error saving question"
	MsgQuestionsFetchErr = "Error fetching questions"
)

// QuestionList never encodes as null.
func QuestionList(questions []question.Question) []question.Question {
	if questions == nil {
		return []question.Question{}
	}
	return questions
}
