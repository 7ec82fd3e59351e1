package opentdb

// Question types reported by the trivia API.
const (
	TypeBoolean  = "boolean"
	TypeMultiple = "multiple"
)

// Record is one fetched trivia question before it becomes part of a quiz.
// Text fields are HTML-escaped exactly as the API returns them.
type Record struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// wireResponse mirrors the response envelope. Pointers mark required fields.
type wireResponse struct {
	ResponseCode *int          `json:"response_code"`
	Results      *[]wireRecord `json:"results"`
}

type wireRecord struct {
	Category         string    `json:"category"`
	Type             *string   `json:"type"`
	Difficulty       string    `json:"difficulty"`
	Question         *string   `json:"question"`
	CorrectAnswer    *string   `json:"correct_answer"`
	IncorrectAnswers *[]string `json:"incorrect_answers"`
}
