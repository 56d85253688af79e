package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnalysisRequest(t *testing.T) {
	req := BuildAnalysisRequest("claude-3-haiku-20240307", 1000, "I love this product!")

	assert.Equal(t, "claude-3-haiku-20240307", req.Model)
	assert.Equal(t, 1000, req.MaxTokens)
	assert.Equal(t, SystemInstruction(), req.System)

	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "I love this product!", req.Messages[0].Content)
}

func TestSystemInstruction_NamesEveryContractField(t *testing.T) {
	instruction := SystemInstruction()

	for _, field := range []string{"sentiment", "primaryEmotion", "emotionScores", "confidence", "analysis"} {
		assert.True(t, strings.Contains(instruction, field),
			"instruction should name response field %q", field)
	}

	for _, label := range []string{"POSITIVE", "NEGATIVE", "NEUTRAL", "JOY", "SADNESS", "ANGER", "FEAR", "SURPRISE", "DISGUST", "TRUST", "ANTICIPATION", "NONE"} {
		assert.True(t, strings.Contains(instruction, label),
			"instruction should name vocabulary label %q", label)
	}
}
