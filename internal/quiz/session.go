package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

var (
	ErrInvalidAnswer   = errors.New("answer is not an option of the current question")
	ErrSessionFinished = errors.New("session already finished")
)

// ResultSink receives the final classification of a finished session.
// gateway.Client and the user service both implement it.
type ResultSink interface {
	SaveResult(ctx context.Context, name string, analysis Analysis) error
}

// Message is one turn of the visible conversation transcript.
type Message struct {
	Text  string `json:"text"`
	IsBot bool   `json:"is_bot"`
}

// AnswerEvent records one accepted answer.
type AnswerEvent struct {
	QuestionID int    `json:"question_id"`
	Selected   string `json:"selected"`
}

// Session drives one user through the question catalog. It is owned by a
// single caller and is not safe for concurrent use; serialize submissions at
// the owner (the chat session store does this).
type Session struct {
	catalog  *Catalog
	userName string
	sink     ResultSink

	current  int
	finished bool
	answers  []AnswerEvent
	messages []Message
	weights  WeightVector
	result   *Analysis
}

// NewSession starts a fresh session at the first question, with the greeting
// seeded into the transcript. sink may be nil when nothing should be persisted.
func NewSession(catalog *Catalog, userName string, sink ResultSink) *Session {
	greeting := "Olá! Vou ajudar você a descobrir seu tipo de pele. Vamos começar?"
	if userName != "" {
		greeting = fmt.Sprintf("Olá, %s! Vou ajudar você a descobrir seu tipo de pele. Vamos começar?", userName)
	}

	return &Session{
		catalog:  catalog,
		userName: userName,
		sink:     sink,
		weights:  NewWeightVector(),
		messages: []Message{{Text: greeting, IsBot: true}},
	}
}

// CurrentQuestion returns the question awaiting an answer. ok is false once
// the session has finished.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.finished {
		return Question{}, false
	}
	return s.catalog.Get(s.current), true
}

func (s *Session) IsFinished() bool {
	return s.finished
}

// SubmitAnswer accepts one answer for the current question. A rejected answer
// leaves the session untouched. Answering the final question finishes the
// session, resolves the classification and kicks off the background save.
func (s *Session) SubmitAnswer(answer string) error {
	if s.finished {
		return ErrSessionFinished
	}

	q := s.catalog.Get(s.current)
	if !containsOption(q.Options, answer) {
		return ErrInvalidAnswer
	}

	s.answers = append(s.answers, AnswerEvent{QuestionID: q.ID, Selected: answer})
	s.messages = append(s.messages, Message{Text: answer})
	Score(s.weights, q.ID, answer)

	if s.current == s.catalog.Len()-1 {
		// Index saturates at the last question; finished is the source of truth.
		s.finished = true
		analysis := Resolve(s.weights)
		s.result = &analysis
		if s.sink != nil {
			go s.saveResult()
		}
		return nil
	}

	s.current++
	s.messages = append(s.messages, Message{Text: s.catalog.Get(s.current).Prompt, IsBot: true})
	return nil
}

// saveResult persists the classification without gating the user-visible flow.
// A failed save is logged and dropped, never retried.
func (s *Session) saveResult() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.sink.SaveResult(ctx, s.userName, *s.result); err != nil {
		log.Printf("failed to save quiz result for %q: %v", s.userName, err)
	}
}

// Result returns the classification of a finished session, nil before that.
func (s *Session) Result() *Analysis {
	if s.result == nil {
		return nil
	}
	r := *s.result
	r.Characteristics = s.result.Characteristics.Clone()
	return &r
}

// Messages returns a copy of the visible transcript.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Answers returns a copy of the accepted answer events.
func (s *Session) Answers() []AnswerEvent {
	out := make([]AnswerEvent, len(s.answers))
	copy(out, s.answers)
	return out
}

// Weights returns a snapshot of the running weight vector.
func (s *Session) Weights() WeightVector {
	return s.weights.Clone()
}

// Reset discards this session and returns a fresh one for the same user.
func (s *Session) Reset() *Session {
	return NewSession(s.catalog, s.userName, s.sink)
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
