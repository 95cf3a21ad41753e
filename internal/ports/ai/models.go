package ai

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

type ChatRequest struct {
	Messages []Message

	// JSONOnly asks the model for a bare JSON object response.
	JSONOnly    bool
	Temperature float32
	MaxTokens   int
}

type ImageRequest struct {
	Prompt   string
	MIMEType string
	Data     []byte
}
