package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// TranslateText translates text into the target language. On any model
// failure the original text comes back unchanged so the UI always has
// something to show.
func TranslateText(ctx context.Context, text, targetLanguage string) string {
	targetLangName := LanguageName(targetLanguage)

	prompt := fmt.Sprintf(`Translate the following text to %s.
Keep the translation natural and culturally appropriate for Indian market contexts.
If the text contains market/agricultural terms, use appropriate local terminology.

Text to translate: %q

Provide only the translation, no explanations.`, targetLangName, text)

	translated, err := Generate(ctx, prompt)
	if err != nil {
		log.Printf("Translation error: %v", err)
		return text
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return text
	}
	return translated
}
