package models

import "strings"

// SentimentType is the closed sentiment vocabulary. Every normalized analysis
// carries exactly one of these values.
type SentimentType string

const (
	SentimentPositive SentimentType = "POSITIVE"
	SentimentNegative SentimentType = "NEGATIVE"
	SentimentNeutral  SentimentType = "NEUTRAL"
)

// EmotionType is the closed emotion vocabulary. EmotionNone is the explicit
// "no dominant emotion" sentinel and never appears in score maps.
type EmotionType string

const (
	EmotionJoy          EmotionType = "JOY"
	EmotionSadness      EmotionType = "SADNESS"
	EmotionAnger        EmotionType = "ANGER"
	EmotionFear         EmotionType = "FEAR"
	EmotionSurprise     EmotionType = "SURPRISE"
	EmotionDisgust      EmotionType = "DISGUST"
	EmotionTrust        EmotionType = "TRUST"
	EmotionAnticipation EmotionType = "ANTICIPATION"
	EmotionNone         EmotionType = "NONE"
)

var scoredEmotions = []EmotionType{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionSurprise,
	EmotionDisgust,
	EmotionTrust,
	EmotionAnticipation,
}

// ScoredEmotions lists every emotion a model reply may score, i.e. the full
// vocabulary without the NONE sentinel.
func ScoredEmotions() []EmotionType {
	return scoredEmotions
}

var sentimentLookup = map[string]SentimentType{
	string(SentimentPositive): SentimentPositive,
	string(SentimentNegative): SentimentNegative,
	string(SentimentNeutral):  SentimentNeutral,
}

var emotionLookup = map[string]EmotionType{
	string(EmotionJoy):          EmotionJoy,
	string(EmotionSadness):      EmotionSadness,
	string(EmotionAnger):        EmotionAnger,
	string(EmotionFear):         EmotionFear,
	string(EmotionSurprise):     EmotionSurprise,
	string(EmotionDisgust):      EmotionDisgust,
	string(EmotionTrust):        EmotionTrust,
	string(EmotionAnticipation): EmotionAnticipation,
	string(EmotionNone):         EmotionNone,
}

// ParseSentimentType maps a free-text label onto the sentiment vocabulary,
// case-insensitively. Unrecognized values yield SentimentNeutral and ok=false;
// the caller decides whether that is a defaulting situation or a client error.
func ParseSentimentType(value string) (SentimentType, bool) {
	sentiment, ok := sentimentLookup[strings.ToUpper(value)]
	if !ok {
		return SentimentNeutral, false
	}
	return sentiment, true
}

// ParseEmotionType is the emotion counterpart of ParseSentimentType; unknown
// values yield EmotionNone and ok=false.
func ParseEmotionType(value string) (EmotionType, bool) {
	emotion, ok := emotionLookup[strings.ToUpper(value)]
	if !ok {
		return EmotionNone, false
	}
	return emotion, true
}
