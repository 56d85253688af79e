package clients

import "time"

const (
	// Timeouts are a transport concern; request-level retries are deliberately
	// absent, every analysis gets exactly one upstream call.
	ANTHROPIC_REQUEST_TIMEOUT = 60 * time.Second
	OPENAI_REQUEST_TIMEOUT    = 60 * time.Second

	USER_AGENT = "sentiment-api/1.0 (+https://github.com/matpia/sentiment-api)"
)
