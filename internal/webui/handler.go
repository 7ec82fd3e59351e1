package webui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"trivia/internal/quiz"
)

// QuizController is the part of quiz.Controller the web host drives.
type QuizController interface {
	StartNewQuiz() error
	SelectAnswer(questionID, answerID string) error
	SubmitQuiz() (quiz.Result, error)
	Snapshot() quiz.Snapshot
}

// ErrStaleQuiz is returned when a request names a quiz that was replaced.
var ErrStaleQuiz = errors.New("quiz was replaced")

const (
	noticeStale    = "That quiz was replaced by a new one. Your answers were not recorded."
	noticeLoading  = "A quiz is already loading."
	noticeRejected = "Your answers could not be recorded."
)

type server struct {
	ctl    QuizController
	logger *zap.Logger
	page   *template.Template
}

// NewHandler builds the HTTP handler for the quiz page and JSON API.
func NewHandler(cfg Config, ctl QuizController, logger *zap.Logger) (http.Handler, error) {
	if ctl == nil {
		return nil, errors.New("webui: controller is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	page, err := parsePage()
	if err != nil {
		return nil, err
	}
	assets, err := embeddedAssetsFS()
	if err != nil {
		return nil, err
	}
	s := &server{ctl: ctl, logger: logger, page: page}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(logger), middleware.Recoverer)

	r.Get("/", s.servePage)
	r.Post("/quiz/new", s.newQuizForm)
	r.Post("/quiz/submit", s.submitForm)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assets))))

	r.Route("/api", func(r chi.Router) {
		if len(cfg.CORSOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: cfg.CORSOrigins,
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type"},
				ExposedHeaders: []string{"Content-Length"},
				MaxAge:         300,
			}))
		}
		r.Get("/quiz", s.getQuiz)
		r.Post("/quiz/new", s.newQuizJSON)
		r.Post("/quiz/answers", s.answersJSON)
		r.Post("/quiz/submit", s.submitJSON)
	})
	return r, nil
}

// pageData is the template input for the quiz page.
type pageData struct {
	State       string
	LoadingText string
	Message     string
	Notice      string
	Refresh     bool
	Quiz        *quiz.QuizView
}

func (s *server) servePage(w http.ResponseWriter, r *http.Request) {
	snapshot := s.ctl.Snapshot()
	data := pageData{
		State:       snapshot.State.String(),
		LoadingText: snapshot.LoadingText,
		Message:     snapshot.Message,
		Notice:      noticeFromQuery(r.URL.Query().Get("notice")),
		Refresh:     snapshot.State == quiz.StateLoading,
		Quiz:        snapshot.Quiz,
	}
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (s *server) newQuizForm(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if err := s.ctl.StartNewQuiz(); err != nil {
		if !errors.Is(err, quiz.ErrLoadInProgress) {
			s.logger.Warn("start quiz", zap.Error(err))
		}
		target = "/?notice=loading"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *server) submitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	answers := map[string]string{}
	for key, values := range r.PostForm {
		if key == "quiz_id" || len(values) == 0 {
			continue
		}
		answers[key] = values[0]
	}
	if err := s.apply(r.PostForm.Get("quiz_id"), answers); err != nil {
		s.logger.Info("form submission rejected", zap.Error(err))
		notice := "rejected"
		if errors.Is(err, ErrStaleQuiz) {
			notice = "stale"
		}
		http.Redirect(w, r, "/?notice="+notice, http.StatusSeeOther)
		return
	}
	if _, err := s.ctl.SubmitQuiz(); err != nil && !errors.Is(err, quiz.ErrAlreadySubmitted) {
		s.logger.Info("form submission rejected", zap.Error(err))
		http.Redirect(w, r, "/?notice=rejected", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/#results", http.StatusSeeOther)
}

// apply selects answers on the quiz named by quizID.
func (s *server) apply(quizID string, answers map[string]string) error {
	snapshot := s.ctl.Snapshot()
	if snapshot.Quiz == nil {
		return quiz.ErrNotLoaded
	}
	if quizID != "" && quizID != snapshot.Quiz.ID {
		return ErrStaleQuiz
	}
	for questionID := range answers {
		if _, ok := snapshot.Quiz.Question(questionID); !ok {
			return fmt.Errorf("%w: %s", quiz.ErrUnknownQuestion, questionID)
		}
	}
	for _, question := range snapshot.Quiz.Questions {
		answerID, ok := answers[question.ID]
		if !ok || answerID == question.SelectedID {
			continue
		}
		if err := s.ctl.SelectAnswer(question.ID, answerID); err != nil {
			return err
		}
	}
	return nil
}

func (s *server) getQuiz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ctl.Snapshot())
}

func (s *server) newQuizJSON(w http.ResponseWriter, _ *http.Request) {
	if err := s.ctl.StartNewQuiz(); err != nil {
		writeErr(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusAccepted, s.ctl.Snapshot())
}

type answersRequest struct {
	QuizID  string            `json:"quiz_id"`
	Answers map[string]string `json:"answers"`
}

func (s *server) answersJSON(w http.ResponseWriter, r *http.Request) {
	var req answersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if err := s.apply(req.QuizID, req.Answers); err != nil {
		writeErr(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s.ctl.Snapshot())
}

type submitRequest struct {
	QuizID string `json:"quiz_id"`
}

func (s *server) submitJSON(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, errors.New("invalid JSON body"))
			return
		}
	}
	if err := s.apply(req.QuizID, nil); err != nil {
		writeErr(w, statusFor(err), err)
		return
	}
	result, err := s.ctl.SubmitQuiz()
	if err != nil {
		writeErr(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// statusFor maps controller errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, quiz.ErrUnknownQuestion), errors.Is(err, quiz.ErrUnknownAnswer):
		return http.StatusBadRequest
	case errors.Is(err, ErrStaleQuiz),
		errors.Is(err, quiz.ErrLoadInProgress),
		errors.Is(err, quiz.ErrNotLoaded),
		errors.Is(err, quiz.ErrAlreadySubmitted),
		errors.Is(err, quiz.ErrLocked):
		return http.StatusConflict
	case errors.Is(err, quiz.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func noticeFromQuery(value string) string {
	switch value {
	case "stale":
		return noticeStale
	case "loading":
		return noticeLoading
	case "rejected":
		return noticeRejected
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errResp{Error: err.Error()})
}

// requestLogger logs each request through zap.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
