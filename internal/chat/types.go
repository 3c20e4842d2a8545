package chat

type MessageInput struct {
	UserID         string
	Text           string
	IncludeContext bool
}

type MessageOutput struct {
	Response string
}
