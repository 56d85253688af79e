package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/matpia/sentiment-api/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// RemoveLinks strips markdown links (keeping the anchor text) and bare URLs,
// which would otherwise skew the lexicon scores.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and collapses whitespace so the
// lexicon scorer sees plain prose.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// LabelForScore maps a VADER compound score onto the sentiment vocabulary
// with a ±0.20 neutral dead zone.
func LabelForScore(score float64) models.SentimentType {
	switch {
	case score >= 0.20:
		return models.SentimentPositive
	case score <= -0.20:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// AnalyzeWithVADER scores text locally without any external call and returns
// the compound score alongside its sentiment label.
func AnalyzeWithVADER(text string) (float64, models.SentimentType) {
	plainText := ConvertMarkdownToText(text)

	score := analyzer.PolarityScores(plainText).Compound

	return score, LabelForScore(score)
}
