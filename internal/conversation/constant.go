package conversation

// DefaultSimilarityWindow is the number of agent outputs kept for dedup checks.
const DefaultSimilarityWindow = 5

// Snapshot serialization labels.
const (
	headerHistory       = "CONVERSATION HISTORY:"
	headerThreads       = "ACTIVE THREADS:"
	headerLastAgent     = "LAST AGENT WHO SPOKE:"
	headerPrimaryIntent = "LAST PRIMARY INTENT:"
	noThreads           = "- None identified yet"
	none                = "NONE"
)
