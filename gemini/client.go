package gemini

import (
	"context"
	"fmt"
	"os"
	"sync"

	"google.golang.org/genai"
)

// DefaultModel is the model every production prompt goes to.
const DefaultModel = "gemini-2.5-flash"

// Language mapping for better translation context.
var LanguageMap = map[string]string{
	"en": "English",
	"hi": "Hindi (हिंदी)",
	"ta": "Tamil (தமிழ்)",
	"te": "Telugu (తెలుగు)",
	"kn": "Kannada (ಕನ್ನಡ)",
	"mr": "Marathi (मराठी)",
}

// LanguageName resolves a language code to its prompt-friendly name.
func LanguageName(code string) string {
	if name, ok := LanguageMap[code]; ok {
		return name
	}
	return code
}

var (
	mu        sync.Mutex
	client    *genai.Client
	clientErr error
)

// Configured reports whether a Gemini API key is present. Endpoints that
// have no fallback payload 500 when it is not.
func Configured() bool {
	return os.Getenv("GEMINI_API_KEY") != ""
}

// Client returns the process-wide genai client, creating it on first use.
func Client(ctx context.Context) (*genai.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil || clientErr != nil {
		return client, clientErr
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		clientErr = fmt.Errorf("GEMINI_API_KEY is not set")
		return nil, clientErr
	}

	client, clientErr = genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	return client, clientErr
}

// Reset clears the cached client so tests can isolate themselves.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	client = nil
	clientErr = nil
}

// Generate sends one prompt to the default model and returns the raw text.
func Generate(ctx context.Context, prompt string) (string, error) {
	return GenerateWithModel(ctx, DefaultModel, prompt)
}

// GenerateWithModel is Generate with an explicit model name. The diagnostic
// endpoint uses it to probe candidate models.
func GenerateWithModel(ctx context.Context, model, prompt string) (string, error) {
	c, err := Client(ctx)
	if err != nil {
		return "", err
	}

	resp, err := c.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
