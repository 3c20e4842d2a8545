package conversation

// ProcessInput carries one conversation request. Either Text or Audio must
// be present; Text wins when both are set.
type ProcessInput struct {
	UserID string
	Text   string
	Audio  []byte
}

// ProcessOutput is the pipeline's reply. AudioResponse is empty when speech
// synthesis is unavailable or failed; the text reply still stands.
type ProcessOutput struct {
	Success       bool
	TextResponse  string
	AudioResponse []byte
	IntentKind    string
	Confidence    float64
	Data          map[string]any
}
