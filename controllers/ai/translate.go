package aicontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Naren1520/Vanijya-Ai/gemini"
)

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

// POST /api/translate
func Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" || req.TargetLanguage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text and target language are required"})
		return
	}

	if !gemini.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API key not configured"})
		return
	}

	translated := gemini.TranslateText(c.Request.Context(), req.Text, req.TargetLanguage)

	c.JSON(http.StatusOK, gin.H{
		"originalText":   req.Text,
		"translatedText": translated,
		"targetLanguage": req.TargetLanguage,
		"success":        true,
	})
}
