package opentdb

import (
	"bytes"
	"encoding/json"
	"io"
)

// ParseResponse decodes a response body into records.
// A response_code of 0 with at least one result is the only success.
func ParseResponse(data []byte) ([]Record, error) {
	var payload wireResponse
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&payload); err != nil {
		return nil, malformed("decode json: %v", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, malformed("trailing data after response object")
	}
	if payload.ResponseCode == nil {
		return nil, malformed("missing response_code")
	}
	if code := *payload.ResponseCode; code != 0 {
		return nil, &StatusError{Code: code}
	}
	if payload.Results == nil {
		return nil, malformed("missing results")
	}
	if len(*payload.Results) == 0 {
		return nil, malformed("empty results")
	}

	records := make([]Record, 0, len(*payload.Results))
	for i, item := range *payload.Results {
		record, err := item.record()
		if err != nil {
			return nil, malformed("results[%d]: %v", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

type fieldError string

func (err fieldError) Error() string { return string(err) }

func (w wireRecord) record() (Record, error) {
	switch {
	case w.Type == nil:
		return Record{}, fieldError("missing type")
	case w.Question == nil:
		return Record{}, fieldError("missing question")
	case w.CorrectAnswer == nil:
		return Record{}, fieldError("missing correct_answer")
	case w.IncorrectAnswers == nil:
		return Record{}, fieldError("missing incorrect_answers")
	}
	incorrect := make([]string, len(*w.IncorrectAnswers))
	copy(incorrect, *w.IncorrectAnswers)
	return Record{
		Category:         w.Category,
		Type:             *w.Type,
		Difficulty:       w.Difficulty,
		Question:         *w.Question,
		CorrectAnswer:    *w.CorrectAnswer,
		IncorrectAnswers: incorrect,
	}, nil
}
