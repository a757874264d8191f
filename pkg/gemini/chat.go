package gemini

import "context"

// Chat pairs a client with a fixed history. It does not record new turns;
// callers extend History themselves.
type Chat struct {
	client  IGemini
	history []Content
}

// History returns the turns sent ahead of every message.
func (c *Chat) History() []Content {
	return c.history
}

// SendMessage sends text and images as the next user turn.
func (c *Chat) SendMessage(ctx context.Context, text string, images []string) (Result, error) {
	return c.client.Send(ctx, Message{Text: text, Images: images, History: c.history})
}
