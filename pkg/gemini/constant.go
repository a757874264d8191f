package gemini

const (
	// BaseURL is the models collection of the Generative Language API.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	DefaultModel             = "gemini-1.5-flash"
	DefaultSystemInstruction = "You are an assistant"
	DefaultMaxOutputTokens   = 8192
	DefaultTemperature       = 1.0

	RoleUser  = "user"
	RoleModel = "model"

	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
)

var mimeTypes = map[string]string{
	".jpg":  MimeTypeJPEG,
	".jpeg": MimeTypeJPEG,
	".png":  MimeTypePNG,
}

// DefaultConfig returns a Config with the library defaults. APIKey is left empty.
func DefaultConfig() Config {
	temperature := DefaultTemperature
	return Config{
		Model:             DefaultModel,
		SystemInstruction: DefaultSystemInstruction,
		MaxOutputTokens:   DefaultMaxOutputTokens,
		Temperature:       &temperature,
	}
}
