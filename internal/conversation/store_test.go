package conversation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptive-response-engine/internal/model"
)

func TestStore_AddPrimaryTurn(t *testing.T) {
	s := New(5)
	assert.Equal(t, model.Intent(""), s.LastPrimaryIntent())

	s.AddPrimaryTurn("I feel anxious", model.IntentEmotionalExpression)
	s.AddPrimaryTurn("It started last week", model.IntentInformation)

	assert.Equal(t, 2, s.TurnCount())
	assert.Equal(t, 2, s.PrimaryTurnCount())
	assert.Equal(t, model.IntentInformation, s.LastPrimaryIntent())
	assert.Equal(t, "", s.LastAgent())
	assert.Empty(t, s.RecentAgentOutputs())
}

func TestStore_AddAgentTurn(t *testing.T) {
	s := New(5)
	s.AddPrimaryTurn("hello", model.IntentInformation)
	s.AddAgentTurn("Agent_1", "How are you?", model.StrategyProbeDetails)
	s.AddAgentTurn("Agent_2", "What brings you here?", model.StrategyClarify)

	assert.Equal(t, "Agent_2", s.LastAgent())
	assert.Equal(t, 1, s.PrimaryTurnCount())
	assert.Equal(t, 3, s.TurnCount())
	assert.Equal(t, []string{"How are you?", "What brings you here?"}, s.RecentAgentOutputs())
}

func TestStore_WindowEviction(t *testing.T) {
	const window = 3
	s := New(window)

	for i := 0; i <= window; i++ {
		s.AddAgentTurn("Agent_1", fmt.Sprintf("output %d", i), model.StrategyProbeDetails)
		assert.LessOrEqual(t, len(s.RecentAgentOutputs()), window)
	}

	recent := s.RecentAgentOutputs()
	require.Len(t, recent, window)
	assert.NotContains(t, recent, "output 0")
	assert.Equal(t, "output 2", recent[len(recent)-2])
	assert.Equal(t, "output 3", recent[len(recent)-1])
	assert.Equal(t, window+1, s.TurnCount())
}

func TestStore_RecentAgentOutputsIsDefensiveCopy(t *testing.T) {
	s := New(5)
	s.AddAgentTurn("Agent_1", "original", model.StrategyProbeDetails)

	got := s.RecentAgentOutputs()
	got[0] = "mutated"
	_ = append(got, "extra")

	assert.Equal(t, []string{"original"}, s.RecentAgentOutputs())
}

func TestStore_UpdateThreadsReplacesWholesale(t *testing.T) {
	s := New(5)
	s.UpdateThreads([]string{"work", "stress"})
	s.UpdateThreads([]string{"family"})
	assert.Equal(t, []string{"family"}, s.ActiveThreads())

	in := []string{"sleep"}
	s.UpdateThreads(in)
	in[0] = "mutated"
	assert.Equal(t, []string{"sleep"}, s.ActiveThreads())
}

func TestStore_PrimaryTexts(t *testing.T) {
	s := New(5)
	s.AddPrimaryTurn("one", model.IntentInformation)
	s.AddAgentTurn("Agent_1", "q", model.StrategyProbeDetails)
	s.AddPrimaryTurn("two", model.IntentQuestion)

	assert.Equal(t, []string{"one", "two"}, s.PrimaryTexts())
}

func TestStore_BuildContext(t *testing.T) {
	s := New(5)
	s.AddPrimaryTurn("first", model.IntentInformation)
	s.AddAgentTurn("Agent_1", "second", model.StrategyProbeDetails)
	s.AddPrimaryTurn("third", model.IntentDefensive)
	s.UpdateThreads([]string{"work"})

	t.Run("keeps last maxTurns oldest first", func(t *testing.T) {
		snap := s.BuildContext(2)
		require.Len(t, snap.Turns, 2)
		assert.Equal(t, "second", snap.Turns[0].Text)
		assert.Equal(t, "third", snap.Turns[1].Text)
		assert.Equal(t, []string{"work"}, snap.ActiveThreads)
		assert.Equal(t, "Agent_1", snap.LastAgent)
		assert.Equal(t, model.IntentDefensive, snap.LastPrimaryIntent)
	})

	t.Run("maxTurns larger than log", func(t *testing.T) {
		assert.Len(t, s.BuildContext(100).Turns, 3)
	})

	t.Run("non positive maxTurns", func(t *testing.T) {
		assert.Empty(t, s.BuildContext(0).Turns)
		assert.Empty(t, s.BuildContext(-1).Turns)
	})

	t.Run("pure with unchanged state", func(t *testing.T) {
		a := s.BuildContext(10)
		b := s.BuildContext(10)
		assert.Equal(t, a, b)
		assert.Equal(t, a.String(), b.String())
	})
}

func TestStore_SnapshotIsNotLiveView(t *testing.T) {
	s := New(5)
	s.AddPrimaryTurn("first", model.IntentInformation)
	s.UpdateThreads([]string{"work"})

	snap := s.BuildContext(10)
	rendered := snap.String()

	s.AddAgentTurn("Agent_1", "later", model.StrategyProbeDetails)
	s.UpdateThreads([]string{"other"})

	assert.Len(t, snap.Turns, 1)
	assert.Equal(t, []string{"work"}, snap.ActiveThreads)
	assert.Equal(t, "", snap.LastAgent)
	assert.Equal(t, rendered, snap.String())
}

func TestSnapshot_String(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		want := "CONVERSATION HISTORY:\n\n" +
			"ACTIVE THREADS:\n- None identified yet\n\n" +
			"LAST AGENT WHO SPOKE:\nNONE\n\n" +
			"LAST PRIMARY INTENT:\nNONE"
		assert.Equal(t, want, New(5).BuildContext(10).String())
	})

	t.Run("populated", func(t *testing.T) {
		s := New(5)
		s.AddPrimaryTurn("I hate my job", model.IntentEmotionalExpression)
		s.AddAgentTurn("Agent_1", "What do you dislike most?", model.StrategyProbeEmotion)
		s.UpdateThreads([]string{"hate", "job"})

		want := "CONVERSATION HISTORY:\n" +
			"PRIMARY: I hate my job\n" +
			"Agent_1: What do you dislike most?\n\n" +
			"ACTIVE THREADS:\n- hate\n- job\n\n" +
			"LAST AGENT WHO SPOKE:\nAgent_1\n\n" +
			"LAST PRIMARY INTENT:\nEMOTIONAL_EXPRESSION"
		assert.Equal(t, want, s.BuildContext(10).String())
	})
}

func TestSnapshot_LastPrimaryText(t *testing.T) {
	s := New(5)
	assert.Equal(t, "", s.BuildContext(10).LastPrimaryText())

	s.AddPrimaryTurn("one", model.IntentInformation)
	s.AddAgentTurn("Agent_1", "q", model.StrategyProbeDetails)
	assert.Equal(t, "one", s.BuildContext(10).LastPrimaryText())
}

func TestNew_DefaultWindow(t *testing.T) {
	s := New(0)
	for i := 0; i < DefaultSimilarityWindow+2; i++ {
		s.AddAgentTurn("Agent_1", fmt.Sprint(i), model.StrategyProbeDetails)
	}
	assert.Len(t, s.RecentAgentOutputs(), DefaultSimilarityWindow)
}
