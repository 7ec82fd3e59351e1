package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// TriviaResponse is a canned reply served by TriviaServer.
type TriviaResponse struct {
	Status int
	Body   string
}

// TriviaServer is an in-memory stand-in for the trivia endpoint.
type TriviaServer struct {
	URL string

	mu        sync.Mutex
	responses []TriviaResponse
	requests  []*http.Request
	hold      chan struct{}
}

// StartTriviaServer launches a server that replays responses in order,
// repeating the last one once the list is exhausted.
func StartTriviaServer(t *testing.T, responses ...TriviaResponse) *TriviaServer {
	t.Helper()
	if len(responses) == 0 {
		responses = []TriviaResponse{{Status: http.StatusOK, Body: TriviaPayload(10)}}
	}
	ts := &TriviaServer{responses: responses}
	server := httptest.NewServer(http.HandlerFunc(ts.serve))
	t.Cleanup(func() {
		ts.Release()
		server.Close()
	})
	ts.URL = server.URL + "/api.php"
	return ts
}

// Hold makes subsequent requests block until Release is called.
func (ts *TriviaServer) Hold() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.hold == nil {
		ts.hold = make(chan struct{})
	}
}

// Release unblocks held requests.
func (ts *TriviaServer) Release() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.hold != nil {
		close(ts.hold)
		ts.hold = nil
	}
}

// Requests returns the number of requests served so far.
func (ts *TriviaServer) Requests() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.requests)
}

// LastQuery returns the raw query of the most recent request.
func (ts *TriviaServer) LastQuery() string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if len(ts.requests) == 0 {
		return ""
	}
	return ts.requests[len(ts.requests)-1].URL.RawQuery
}

func (ts *TriviaServer) serve(w http.ResponseWriter, r *http.Request) {
	ts.mu.Lock()
	index := len(ts.requests)
	ts.requests = append(ts.requests, r)
	if index >= len(ts.responses) {
		index = len(ts.responses) - 1
	}
	resp := ts.responses[index]
	hold := ts.hold
	ts.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-r.Context().Done():
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}

type payloadRecord struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// TriviaPayload returns a successful response body with n questions.
// Even positions are multiple choice, odd positions are true/false.
func TriviaPayload(n int) string {
	results := make([]payloadRecord, 0, n)
	for i := 0; i < n; i++ {
		if i%2 == 1 {
			results = append(results, payloadRecord{
				Category:         "General Knowledge",
				Type:             "boolean",
				Difficulty:       "easy",
				Question:         fmt.Sprintf("Statement %d is &quot;true&quot;.", i+1),
				CorrectAnswer:    "True",
				IncorrectAnswers: []string{"False"},
			})
			continue
		}
		results = append(results, payloadRecord{
			Category:         "Science &amp; Nature",
			Type:             "multiple",
			Difficulty:       "medium",
			Question:         fmt.Sprintf("Question %d?", i+1),
			CorrectAnswer:    fmt.Sprintf("right %d", i+1),
			IncorrectAnswers: []string{"wrong a", "wrong b", "wrong c"},
		})
	}
	return mustJSON(map[string]any{"response_code": 0, "results": results})
}

// TriviaStatusPayload returns a response body with the given response_code.
func TriviaStatusPayload(code int) string {
	return mustJSON(map[string]any{"response_code": code, "results": []payloadRecord{}})
}

func mustJSON(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	return string(data)
}
