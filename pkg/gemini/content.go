package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"gemini-client/pkg/log"
)

// Builder turns prompts, image paths and history into request bodies.
type Builder struct {
	logger log.Logger
}

// NewBuilder returns a Builder logging to l.
func NewBuilder(l log.Logger) *Builder {
	if l == nil {
		l = log.NewNop()
	}
	return &Builder{logger: l}
}

// EncodeContent is Builder.EncodeContent without logging.
func EncodeContent(text string, paths []string) ([]Part, error) {
	return NewBuilder(nil).EncodeContent(context.Background(), text, paths)
}

// EncodeContent returns one inline data part per path, in order, followed by a
// text part when text is non-empty.
func (b *Builder) EncodeContent(ctx context.Context, text string, paths []string) ([]Part, error) {
	parts := make([]Part, 0, len(paths)+1)

	for _, path := range paths {
		mimeType, err := mimeTypeOf(path)
		if err != nil {
			b.logger.Errorf(ctx, "unsupported file type: %s", path)
			return nil, err
		}

		data, err := readFile(path)
		if err != nil {
			b.logger.Errorf(ctx, "file not found: %s", path)
			return nil, err
		}

		if detected := mimetype.Detect(data); !detected.Is(mimeType) {
			b.logger.Warnf(ctx, "file %s has extension type %s but content looks like %s", path, mimeType, detected.String())
		}

		parts = append(parts, Part{
			InlineData: &InlineData{
				MimeType: mimeType,
				Data:     base64.StdEncoding.EncodeToString(data),
			},
		})
		b.logger.Infof(ctx, "file encoded: %s (%d bytes)", path, len(data))
	}

	if text != "" {
		parts = append(parts, Part{Text: text})
	}

	return parts, nil
}

func mimeTypeOf(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mimeType, ok := mimeTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
	return mimeType, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	return data, nil
}
