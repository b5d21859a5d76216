package prompting

// Part is one piece of a message: either inline text or a reference to an
// uploaded document.
type Part struct {
	Type     string
	Text     string
	FileURI  string
	MIMEType string
}

// NewTextPart creates a text part.
func NewTextPart(text string) *Part {
	return &Part{Type: "text", Text: text}
}

// NewFilePart creates a part that references a Files API upload.
func NewFilePart(fileURI, mimeType string) *Part {
	return &Part{Type: "file", FileURI: fileURI, MIMEType: mimeType}
}

// Message represents a message in a conversation.
type Message struct {
	Role  string
	Parts []*Part
}

// NewUserMessage creates a new user message.
func NewUserMessage(parts ...*Part) *Message {
	return &Message{Role: "user", Parts: parts}
}
