package openai

const (
	defaultChatModel = "gpt-4o-mini"
	defaultSTTModel  = "whisper-1"
	defaultTTSModel  = "tts-1"
	defaultTTSVoice  = "alloy"
)
