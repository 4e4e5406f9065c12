package quiz

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu       sync.Mutex
	name     string
	analysis *Analysis
	saved    chan struct{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{saved: make(chan struct{})}
}

func (r *recordingSink) SaveResult(_ context.Context, name string, analysis Analysis) error {
	r.mu.Lock()
	r.name = name
	r.analysis = &analysis
	r.mu.Unlock()
	close(r.saved)
	return nil
}

// answerAll walks the whole catalog picking the option at optionIndex for every
// question (clamped to the last option where the question has fewer).
func answerAll(t *testing.T, s *Session, optionIndex int) {
	t.Helper()
	for !s.IsFinished() {
		q, ok := s.CurrentQuestion()
		require.True(t, ok)
		i := optionIndex
		if i >= len(q.Options) {
			i = len(q.Options) - 1
		}
		require.NoError(t, s.SubmitAnswer(q.Options[i]))
	}
}

func TestSession_SeedsGreeting(t *testing.T) {
	s := NewSession(DefaultCatalog(), "Ana", nil)

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].IsBot)
	assert.Contains(t, msgs[0].Text, "Ana")

	// Greeting is not scored.
	for _, st := range SkinTypes {
		assert.Equal(t, 0, s.Weights()[st])
	}
}

func TestSession_FinishesExactlyOnLastAnswer(t *testing.T) {
	catalog := DefaultCatalog()
	s := NewSession(catalog, "Ana", nil)

	for i := 0; i < catalog.Len(); i++ {
		assert.False(t, s.IsFinished(), "finished before answer %d", i+1)
		q, ok := s.CurrentQuestion()
		require.True(t, ok)
		require.NoError(t, s.SubmitAnswer(q.Options[0]))
	}

	assert.True(t, s.IsFinished())
	assert.Len(t, s.Answers(), catalog.Len())

	_, ok := s.CurrentQuestion()
	assert.False(t, ok)

	q0 := catalog.Get(0)
	assert.ErrorIs(t, s.SubmitAnswer(q0.Options[0]), ErrSessionFinished)
}

func TestSession_RejectedAnswerLeavesStateUntouched(t *testing.T) {
	s := NewSession(DefaultCatalog(), "Ana", nil)

	q, _ := s.CurrentQuestion()
	require.NoError(t, s.SubmitAnswer(q.Options[0]))

	before := s.Weights()
	beforeMsgs := len(s.Messages())
	beforeAnswers := len(s.Answers())
	beforeQ, _ := s.CurrentQuestion()

	assert.ErrorIs(t, s.SubmitAnswer("Pele de crocodilo"), ErrInvalidAnswer)

	assert.Equal(t, before, s.Weights())
	assert.Len(t, s.Messages(), beforeMsgs)
	assert.Len(t, s.Answers(), beforeAnswers)
	afterQ, _ := s.CurrentQuestion()
	assert.Equal(t, beforeQ.ID, afterQ.ID)
}

func TestSession_WeightsMonotonicallyNonDecreasing(t *testing.T) {
	s := NewSession(DefaultCatalog(), "Ana", nil)

	prev := s.Weights()
	for !s.IsFinished() {
		q, _ := s.CurrentQuestion()
		require.NoError(t, s.SubmitAnswer(q.Options[len(q.Options)-1]))

		cur := s.Weights()
		for _, st := range SkinTypes {
			assert.GreaterOrEqual(t, cur[st], prev[st])
		}
		prev = cur
	}
}

func TestSession_TranscriptAlternates(t *testing.T) {
	catalog := DefaultCatalog()
	s := NewSession(catalog, "", nil)

	answerAll(t, s, 0)

	// greeting + per answered question a user turn, plus a bot prompt for
	// every question after the first.
	msgs := s.Messages()
	assert.Len(t, msgs, 1+catalog.Len()+(catalog.Len()-1))
	assert.True(t, msgs[0].IsBot)
	assert.False(t, msgs[1].IsBot)
}

func TestSession_OilyScenario(t *testing.T) {
	s := NewSession(DefaultCatalog(), "Ana", nil)

	answers := []string{
		"Muito oleosa em todo o rosto",
		"Algumas vezes, depende do produto",
		"Grandes e visíveis em todo o rosto",
		"Brilhante ou com excesso de oleosidade",
		"Algumas vezes",
		"Fica um pouco avermelhada, mas depois bronzeia",
		"Apenas lavo o rosto",
		"Acne ou oleosidade excessiva",
	}
	for _, a := range answers {
		require.NoError(t, s.SubmitAnswer(a))
	}

	require.True(t, s.IsFinished())
	result := s.Result()
	require.NotNil(t, result)
	assert.GreaterOrEqual(t, result.Characteristics[SkinTypeOily], 4)
	assert.Equal(t, SkinTypeOily, result.SkinType)
}

func TestSession_SavesResultInBackground(t *testing.T) {
	sink := newRecordingSink()
	s := NewSession(DefaultCatalog(), "Ana", sink)

	answerAll(t, s, 0)
	require.True(t, s.IsFinished())

	select {
	case <-sink.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("result was never saved")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, "Ana", sink.name)
	require.NotNil(t, sink.analysis)
	assert.Equal(t, s.Result().SkinType, sink.analysis.SkinType)
}

func TestSession_ResultNilWhileInProgress(t *testing.T) {
	s := NewSession(DefaultCatalog(), "Ana", nil)
	assert.Nil(t, s.Result())
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(DefaultCatalog(), "Ana", nil)
	answerAll(t, s, 0)
	require.True(t, s.IsFinished())

	fresh := s.Reset()
	assert.False(t, fresh.IsFinished())
	assert.Empty(t, fresh.Answers())

	q, ok := fresh.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, 1, q.ID)
}
