package service

import (
	"errors"
	"sync"
	"time"

	"homeschool_backend/internal/model"
	"homeschool_backend/internal/repository"
	"homeschool_backend/internal/util"
	"homeschool_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlayerState is the inner lesson-player flow: reading -> quiz -> result.
// Linear, no backward transitions, result is terminal.
type PlayerState string

const (
	StateReading PlayerState = "reading"
	StateQuiz    PlayerState = "quiz"
	StateResult  PlayerState = "result"
)

// ViewState is the outer screen flow around the player.
type ViewState string

const (
	ViewLogin      ViewState = "login"
	ViewDashboard  ViewState = "dashboard"
	ViewCreate     ViewState = "create"
	ViewCurriculum ViewState = "curriculum"
	ViewReport     ViewState = "report"
	ViewLesson     ViewState = "lesson"
)

// viewTransitions lists the legal moves of the outer flow:
// login -> dashboard <-> {create, curriculum, report} -> lesson -> report.
var viewTransitions = map[ViewState][]ViewState{
	ViewLogin:      {ViewDashboard},
	ViewDashboard:  {ViewCreate, ViewCurriculum, ViewReport, ViewLesson},
	ViewCreate:     {ViewDashboard},
	ViewCurriculum: {ViewDashboard},
	ViewReport:     {ViewDashboard},
	ViewLesson:     {ViewReport, ViewDashboard},
}

// ViewFlow tracks the current screen plus the transient assigning-to context:
// a target student selected on the dashboard that scopes the next create or
// curriculum submission, cleared on consumption or on returning to the
// dashboard.
type ViewFlow struct {
	current     ViewState
	assigningTo *model.User
}

func NewViewFlow() *ViewFlow {
	return &ViewFlow{current: ViewLogin}
}

func (f *ViewFlow) Current() ViewState {
	return f.current
}

// Navigate moves to a view when the transition is legal. Signing out (any
// view back to login) is always allowed. Returning to the dashboard drops the
// assigning-to context.
func (f *ViewFlow) Navigate(to ViewState) error {
	if to == ViewLogin {
		f.current = ViewLogin
		f.assigningTo = nil
		return nil
	}
	for _, allowed := range viewTransitions[f.current] {
		if allowed == to {
			if to == ViewDashboard {
				f.assigningTo = nil
			}
			f.current = to
			return nil
		}
	}
	return util.ErrInvalidTransition
}

// AssignTo selects the student the next create/curriculum action targets.
func (f *ViewFlow) AssignTo(student *model.User) {
	f.assigningTo = student
}

func (f *ViewFlow) Assigning() *model.User {
	return f.assigningTo
}

// ConsumeAssignment returns and clears the assigning-to context; called once
// a scoped submission succeeds.
func (f *ViewFlow) ConsumeAssignment() *model.User {
	student := f.assigningTo
	f.assigningTo = nil
	return student
}

// PlayerSession is one student's walk through one lesson.
type PlayerSession struct {
	ID        string
	StudentID uint
	LessonID  uint
	State     PlayerState
	View      *ViewFlow
	CreatedAt time.Time

	quiz    []model.QuizQuestion
	answers []int // -1 = unanswered
	score   int
}

// SessionView is the wire shape of a session.
type SessionView struct {
	ID        string      `json:"id"`
	StudentID uint        `json:"student_id"`
	LessonID  uint        `json:"lesson_id"`
	State     PlayerState `json:"state"`
	View      ViewState   `json:"view"`
	Questions int         `json:"questions"`
	Answered  int         `json:"answered"`
	Score     *int        `json:"score,omitempty"`
}

func (s *PlayerSession) view() *SessionView {
	answered := 0
	for _, a := range s.answers {
		if a >= 0 {
			answered++
		}
	}
	v := &SessionView{
		ID:        s.ID,
		StudentID: s.StudentID,
		LessonID:  s.LessonID,
		State:     s.State,
		View:      s.View.Current(),
		Questions: len(s.quiz),
		Answered:  answered,
	}
	if s.State == StateResult {
		score := s.score
		v.Score = &score
	}
	return v
}

// PlayerService keeps the live sessions in memory under one lock, the same
// way the hub pattern does for chat connections. Submitting decouples the
// result from persistence: the score is final the moment the quiz is graded,
// and the progress insert happens in the background - a failed insert is
// logged and lost, never shown to the student.
type PlayerService struct {
	LessonRepo *repository.LessonRepository
	Progress   *ProgressService

	mu       sync.RWMutex
	sessions map[string]*PlayerSession
}

func NewPlayerService(lessonRepo *repository.LessonRepository, progress *ProgressService) *PlayerService {
	return &PlayerService{
		LessonRepo: lessonRepo,
		Progress:   progress,
		sessions:   make(map[string]*PlayerSession),
	}
}

// StartSession opens a lesson for a student and enters the reading state.
func (s *PlayerService) StartSession(studentID, lessonID uint) (*SessionView, error) {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	quiz, err := lesson.Quiz()
	if err != nil {
		return nil, err
	}

	flow := NewViewFlow()
	flow.Navigate(ViewDashboard)
	flow.Navigate(ViewLesson)

	answers := make([]int, len(quiz))
	for i := range answers {
		answers[i] = -1
	}

	session := &PlayerSession{
		ID:        uuid.New().String(),
		StudentID: studentID,
		LessonID:  lessonID,
		State:     StateReading,
		View:      flow,
		CreatedAt: time.Now(),
		quiz:      quiz,
		answers:   answers,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session.view(), nil
}

func (s *PlayerService) Get(id string) (*SessionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return session.view(), nil
}

// Advance moves reading -> quiz. The transition is user-triggered and
// unconditional; any other starting state is an error.
func (s *PlayerService) Advance(id string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	if session.State != StateReading {
		return nil, util.ErrInvalidTransition
	}
	session.State = StateQuiz
	return session.view(), nil
}

// Answer records the selected option for one question. Only legal in the quiz
// state; re-selecting overwrites.
func (s *PlayerService) Answer(id string, question, option int) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	if session.State != StateQuiz {
		return nil, util.ErrInvalidTransition
	}
	if question < 0 || question >= len(session.quiz) {
		return nil, errors.New("question index out of range")
	}
	if option < 0 || option >= len(session.quiz[question].Options) {
		return nil, errors.New("option index out of range")
	}
	session.answers[question] = option
	return session.view(), nil
}

// Submit grades the quiz and enters the terminal result state. Every question
// must have an answer. The progress record is written asynchronously; the
// returned result does not wait for, or reflect, the outcome of that write.
func (s *PlayerService) Submit(id string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	if session.State != StateQuiz {
		return nil, util.ErrInvalidTransition
	}
	for _, a := range session.answers {
		if a < 0 {
			return nil, util.ErrQuizIncomplete
		}
	}

	session.score = ScoreAnswers(session.quiz, session.answers)
	session.State = StateResult

	go func(studentID, lessonID uint, score int) {
		if _, err := s.Progress.Record(studentID, lessonID, score, nil); err != nil {
			logger.Log.Error("progress persistence failed after quiz submit",
				zap.Uint("studentId", studentID),
				zap.Uint("lessonId", lessonID),
				zap.Int("score", score),
				zap.Error(err))
		}
	}(session.StudentID, session.LessonID, session.score)

	return session.view(), nil
}

// Close leaves the lesson view toward the report or the dashboard and drops
// the session.
func (s *PlayerService) Close(id string, to ViewState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return util.ErrSessionNotFound
	}
	if err := session.View.Navigate(to); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}
