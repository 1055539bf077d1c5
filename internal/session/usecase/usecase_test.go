package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptive-response-engine/internal/agent"
	"adaptive-response-engine/internal/session"
	"adaptive-response-engine/pkg/speech"
)

// sequenceGenerator returns distinct questions so dedup never interferes.
type sequenceGenerator struct {
	mu      sync.Mutex
	replies []string
	calls   int
}

func (g *sequenceGenerator) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	reply := g.replies[g.calls%len(g.replies)]
	g.calls++
	return reply, nil
}

type stubSynthesizer struct {
	err    error
	voices []string
}

func (s *stubSynthesizer) Synthesize(ctx context.Context, text, voice, language string) ([]byte, error) {
	s.voices = append(s.voices, voice)
	if s.err != nil {
		return nil, s.err
	}
	return []byte("audio:" + text), nil
}
func (s *stubSynthesizer) MIMEType() string { return speech.MIMETypeMP3 }
func (s *stubSynthesizer) Name() string     { return "stub" }

type stubTranscriber struct {
	transcript speech.Transcript
	err        error
	hint       string
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audio []byte, languageHint string) (speech.Transcript, error) {
	s.hint = languageHint
	return s.transcript, s.err
}

func testConfig() session.Config {
	return session.Config{
		NumAgents:             2,
		MaxContextTurns:       20,
		SimilarityThreshold:   0.6,
		SimilarityWindow:      5,
		ThreadUpdateInterval:  3,
		MaxThreads:            5,
		ContinuityProbability: 0,
		MaxDedupRetries:       2,
		DefaultLanguage:       "English",
		TTL:                   time.Minute,
		MaxSessions:           10,
	}
}

func newTestUseCase(t *testing.T, deps Deps, mutate func(*session.Config)) *implUseCase {
	t.Helper()
	if deps.Generator == nil {
		deps.Generator = &sequenceGenerator{replies: []string{
			"What happened at work today?",
			"How did your manager respond?",
			"Why does the deadline worry you?",
			"When did you first notice this?",
		}}
	}
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	uc, err := New(deps, cfg)
	require.NoError(t, err)
	return uc
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Deps{Generator: &sequenceGenerator{replies: []string{"x"}}}, session.Config{})
	assert.ErrorIs(t, err, session.ErrInvalidAgentCount)

	_, err = New(Deps{}, testConfig())
	assert.ErrorIs(t, err, session.ErrNoGenerator)
}

func TestNew_AppliesSessionDefaults(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, func(c *session.Config) {
		c.TTL = 0
		c.MaxSessions = 0
	})
	assert.Equal(t, 30*time.Minute, uc.cfg.TTL)
	assert.Equal(t, session.DefaultMaxSessions, uc.cfg.MaxSessions)
}

func TestCreate(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, func(c *session.Config) {
		c.NumAgents = 3
		c.AgentNames = []string{"Ava"}
		c.Voices = []string{"v1", "v2"}
	})

	out, err := uc.Create(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, out.SessionID)
	assert.Equal(t, []session.AgentInfo{
		{Name: "Ava", Voice: "v1"},
		{Name: "Agent_2", Voice: "v2"},
		{Name: "Agent_3", Voice: "v1"},
	}, out.Agents)
	assert.Equal(t, 1, uc.ActiveSessions())
}

func TestProcessTurn_RoundRobinAcrossTurns(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx)
	require.NoError(t, err)

	var speakers []string
	for _, text := range []string{"I had a rough day at work", "My manager yelled at me", "I feel stressed"} {
		out, err := uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: text})
		require.NoError(t, err)
		assert.Equal(t, "English", out.Language)
		speakers = append(speakers, out.Speaker)
	}
	assert.Equal(t, []string{"Agent_1", "Agent_2", "Agent_1"}, speakers)
}

func TestProcessTurn_SessionsAreIsolated(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, nil)
	ctx := context.Background()

	a, err := uc.Create(ctx)
	require.NoError(t, err)
	b, err := uc.Create(ctx)
	require.NoError(t, err)

	_, err = uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: a.SessionID, Text: "I had a rough day at work"})
	require.NoError(t, err)

	outB, err := uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: b.SessionID, Text: "Hello there everyone"})
	require.NoError(t, err)
	assert.Equal(t, "Agent_1", outB.Speaker)

	ctxB, err := uc.Context(ctx, session.ContextInput{SessionID: b.SessionID, MaxTurns: -1})
	require.NoError(t, err)
	require.Len(t, ctxB.Snapshot.Turns, 2)
	assert.Equal(t, "Hello there everyone", ctxB.Snapshot.Turns[0].Text)
}

func TestProcessTurn_Rejections(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, nil)
	ctx := context.Background()

	_, err := uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: "missing", Text: "hello there"})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	created, err := uc.Create(ctx)
	require.NoError(t, err)

	_, err = uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: "   "})
	assert.ErrorIs(t, err, session.ErrEmptyText)

	for _, text := range []string{"ok", "Hmm", "uh", "okay."} {
		_, err = uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: text})
		assert.ErrorIs(t, err, session.ErrTrivialUtterance, text)
	}

	ctxOut, err := uc.Context(ctx, session.ContextInput{SessionID: created.SessionID, MaxTurns: -1})
	require.NoError(t, err)
	assert.Empty(t, ctxOut.Snapshot.Turns)
}

func TestProcessTurn_LanguageTagIsNamed(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, nil)
	ctx := context.Background()
	created, err := uc.Create(ctx)
	require.NoError(t, err)

	out, err := uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: "tengo un mal dia", Language: "es-ES"})
	require.NoError(t, err)
	assert.Equal(t, "Spanish", out.Language)
}

func TestProcessTurn_Speak(t *testing.T) {
	synth := &stubSynthesizer{}
	uc := newTestUseCase(t, Deps{Synthesizer: synth}, func(c *session.Config) {
		c.Voices = []string{"voice-1", "voice-2"}
	})
	ctx := context.Background()
	created, err := uc.Create(ctx)
	require.NoError(t, err)

	out, err := uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: "I had a rough day", Speak: true})
	require.NoError(t, err)
	assert.Equal(t, []byte("audio:"+out.Text), out.Audio)
	assert.Equal(t, speech.MIMETypeMP3, out.AudioMIMEType)
	assert.Equal(t, []string{"voice-1"}, synth.voices)

	out, err = uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: "It was my manager"})
	require.NoError(t, err)
	assert.Nil(t, out.Audio)
}

func TestProcessTurn_SynthesisFailureKeepsTurn(t *testing.T) {
	uc := newTestUseCase(t, Deps{Synthesizer: &stubSynthesizer{err: errors.New("quota exceeded")}}, nil)
	ctx := context.Background()
	created, err := uc.Create(ctx)
	require.NoError(t, err)

	out, err := uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: "I had a rough day", Speak: true})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Text)
	assert.Equal(t, agent.FallbackNone, out.Fallback)
	assert.Nil(t, out.Audio)
}

func TestProcessSpeech(t *testing.T) {
	ctx := context.Background()

	t.Run("no transcriber", func(t *testing.T) {
		uc := newTestUseCase(t, Deps{}, nil)
		created, err := uc.Create(ctx)
		require.NoError(t, err)
		_, err = uc.ProcessSpeech(ctx, session.ProcessSpeechInput{SessionID: created.SessionID, Audio: []byte{1}})
		assert.ErrorIs(t, err, session.ErrNoTranscriber)
	})

	t.Run("transcript drives the turn", func(t *testing.T) {
		stt := &stubTranscriber{transcript: speech.Transcript{Text: "estoy cansado del trabajo", Language: "es-es"}}
		uc := newTestUseCase(t, Deps{Transcriber: stt}, nil)
		created, err := uc.Create(ctx)
		require.NoError(t, err)

		out, err := uc.ProcessSpeech(ctx, session.ProcessSpeechInput{SessionID: created.SessionID, Audio: []byte{1, 2}})
		require.NoError(t, err)
		assert.Equal(t, "English", stt.hint)
		assert.Equal(t, "estoy cansado del trabajo", out.Transcript)
		assert.Equal(t, "Spanish", out.Language)
		assert.Equal(t, "Agent_1", out.Speaker)
	})

	t.Run("trivial transcript", func(t *testing.T) {
		uc := newTestUseCase(t, Deps{Transcriber: &stubTranscriber{transcript: speech.Transcript{Text: "um"}}}, nil)
		created, err := uc.Create(ctx)
		require.NoError(t, err)
		_, err = uc.ProcessSpeech(ctx, session.ProcessSpeechInput{SessionID: created.SessionID, Audio: []byte{1}})
		assert.ErrorIs(t, err, session.ErrTrivialUtterance)
	})

	t.Run("recognizer failure", func(t *testing.T) {
		uc := newTestUseCase(t, Deps{Transcriber: &stubTranscriber{err: errors.New("boom")}}, nil)
		created, err := uc.Create(ctx)
		require.NoError(t, err)
		_, err = uc.ProcessSpeech(ctx, session.ProcessSpeechInput{SessionID: created.SessionID, Audio: []byte{1}})
		assert.ErrorIs(t, err, session.ErrTranscribeFailed)
	})

	t.Run("empty audio", func(t *testing.T) {
		uc := newTestUseCase(t, Deps{Transcriber: &stubTranscriber{}}, nil)
		created, err := uc.Create(ctx)
		require.NoError(t, err)
		_, err = uc.ProcessSpeech(ctx, session.ProcessSpeechInput{SessionID: created.SessionID})
		assert.ErrorIs(t, err, session.ErrEmptyAudio)
	})
}

func TestContext_MaxTurns(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, nil)
	ctx := context.Background()
	created, err := uc.Create(ctx)
	require.NoError(t, err)

	for _, text := range []string{"first thing here", "second thing here"} {
		_, err := uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: text})
		require.NoError(t, err)
	}

	out, err := uc.Context(ctx, session.ContextInput{SessionID: created.SessionID, MaxTurns: 2})
	require.NoError(t, err)
	require.Len(t, out.Snapshot.Turns, 2)
	assert.Equal(t, "second thing here", out.Snapshot.Turns[0].Text)
	assert.Contains(t, out.Rendered, "PRIMARY: second thing here")

	out, err = uc.Context(ctx, session.ContextInput{SessionID: created.SessionID, MaxTurns: 0})
	require.NoError(t, err)
	assert.Empty(t, out.Snapshot.Turns)
}

func TestClose(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, nil)
	ctx := context.Background()
	created, err := uc.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, uc.Close(ctx, created.SessionID))
	assert.Zero(t, uc.ActiveSessions())
	assert.ErrorIs(t, uc.Close(ctx, created.SessionID), session.ErrSessionNotFound)

	_, err = uc.Context(ctx, session.ContextInput{SessionID: created.SessionID, MaxTurns: -1})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

// blockingGenerator parks every call until release is closed.
type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *blockingGenerator) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	g.once.Do(func() { close(g.started) })
	<-g.release
	return "What made today so hard?", nil
}

func TestClose_DuringTurnKeepsSessionClosed(t *testing.T) {
	gen := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	uc := newTestUseCase(t, Deps{Generator: gen}, nil)
	ctx := context.Background()
	created, err := uc.Create(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: "today was rough"})
		done <- err
	}()

	<-gen.started
	require.NoError(t, uc.Close(ctx, created.SessionID))
	close(gen.release)
	require.NoError(t, <-done)

	assert.Zero(t, uc.ActiveSessions())
	_, err = uc.Context(ctx, session.ContextInput{SessionID: created.SessionID, MaxTurns: -1})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestProcessTurn_RefreshesIdleTimer(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, func(c *session.Config) { c.TTL = 150 * time.Millisecond })
	ctx := context.Background()
	created, err := uc.Create(ctx)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		time.Sleep(80 * time.Millisecond)
		_, err = uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: "still talking here"})
		require.NoError(t, err, "turn %d", i)
	}
}

func TestSessionsExpire(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, func(c *session.Config) { c.TTL = 20 * time.Millisecond })
	ctx := context.Background()
	created, err := uc.Create(ctx)
	require.NoError(t, err)

	time.Sleep(60 * time.Millisecond)

	_, err = uc.ProcessTurn(ctx, session.ProcessTurnInput{SessionID: created.SessionID, Text: "are you still there"})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestMaxSessionsEvictsOldest(t *testing.T) {
	uc := newTestUseCase(t, Deps{}, func(c *session.Config) { c.MaxSessions = 2 })
	ctx := context.Background()

	first, err := uc.Create(ctx)
	require.NoError(t, err)
	_, err = uc.Create(ctx)
	require.NoError(t, err)
	_, err = uc.Create(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, uc.ActiveSessions())
	assert.ErrorIs(t, uc.Close(ctx, first.SessionID), session.ErrSessionNotFound)
}
