package handlers

import (
	"sync"

	"github.com/thais-adelino/projeto-skin-track/internal/quiz"

	"github.com/google/uuid"
)

// sessionStore owns every active chat session. Sessions are single-owner, so
// every read and mutation happens under the store lock, and the response
// snapshot is rendered inside the critical section: a GET racing a submit
// never touches the same session concurrently.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*quiz.Session
	render   func(id string, s *quiz.Session) ChatSessionState
}

func newSessionStore(render func(string, *quiz.Session) ChatSessionState) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*quiz.Session),
		render:   render,
	}
}

func (st *sessionStore) create(session *quiz.Session) (string, ChatSessionState) {
	id := uuid.NewString()
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[id] = session
	return id, st.render(id, session)
}

func (st *sessionStore) get(id string) (ChatSessionState, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return ChatSessionState{}, false
	}
	return st.render(id, s), true
}

func (st *sessionStore) submit(id, answer string) (ChatSessionState, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return ChatSessionState{}, errSessionNotFound
	}
	if err := s.SubmitAnswer(answer); err != nil {
		return ChatSessionState{}, err
	}
	return st.render(id, s), nil
}

func (st *sessionStore) reset(id string) (ChatSessionState, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return ChatSessionState{}, false
	}
	fresh := s.Reset()
	st.sessions[id] = fresh
	return st.render(id, fresh), true
}
