package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BuildInput is everything that goes into one request body.
type BuildInput struct {
	SystemInstruction string
	History           []Content
	Text              string
	Images            []string
	// GenerationConfig is emitted as "generationConfig" when non-nil.
	GenerationConfig *GenerationConfig
}

// BuildRequest is Builder.Build without logging.
func BuildRequest(in BuildInput) (Request, error) {
	return NewBuilder(nil).Build(context.Background(), in)
}

// Build assembles the request envelope. History is copied, never modified,
// and passed through without shape checks; the current user turn is last.
func (b *Builder) Build(ctx context.Context, in BuildInput) (Request, error) {
	parts, err := b.EncodeContent(ctx, in.Text, in.Images)
	if err != nil {
		return Request{}, err
	}

	contents := make([]Content, 0, len(in.History)+1)
	contents = append(contents, in.History...)
	contents = append(contents, Content{Role: RoleUser, Parts: parts})

	req := Request{
		Contents:         contents,
		GenerationConfig: in.GenerationConfig,
	}
	if in.SystemInstruction != "" {
		req.SystemInstruction = &SystemInstruction{Parts: TextPart{Text: in.SystemInstruction}}
	}

	b.logger.Debugf(ctx, "request built: %d history turns, %d parts in current turn", len(in.History), len(parts))
	return req, nil
}

// ValidateHistory checks that every turn has a known role and at least one
// well formed part.
func ValidateHistory(validate *validator.Validate, history []Content) error {
	if validate == nil {
		validate = validator.New()
	}
	for i, turn := range history {
		if err := validate.Struct(turn); err != nil {
			return fmt.Errorf("%w: turn %d: %w", ErrInvalidHistory, i, err)
		}
	}
	return nil
}

// logString renders req for logs with inline data replaced by its size.
func (r Request) logString() string {
	redacted := Request{
		SystemInstruction: r.SystemInstruction,
		GenerationConfig:  r.GenerationConfig,
		Contents:          make([]Content, len(r.Contents)),
	}
	for i, c := range r.Contents {
		parts := make([]Part, len(c.Parts))
		for j, p := range c.Parts {
			parts[j] = p
			if p.InlineData != nil {
				parts[j].InlineData = &InlineData{
					MimeType: p.InlineData.MimeType,
					Data:     fmt.Sprintf("[%d base64 chars]", len(p.InlineData.Data)),
				}
			}
		}
		redacted.Contents[i] = Content{Role: c.Role, Parts: parts}
	}
	b, err := json.Marshal(redacted)
	if err != nil {
		return fmt.Sprintf("<unprintable request: %v>", err)
	}
	return string(b)
}
