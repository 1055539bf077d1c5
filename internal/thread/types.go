package thread

// History is the read/write view of a conversation the inferencer works on.
type History interface {
	PrimaryTurnCount() int
	PrimaryTexts() []string
	UpdateThreads(threads []string)
}

// Config configures an Inferencer.
type Config struct {
	UpdateInterval int // recompute every Nth primary turn
	MaxThreads     int // cap on returned keywords
}
