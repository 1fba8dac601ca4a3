package service

import (
	"encoding/json"

	"chatai-be/pkg/n8n"
)

const (
	N8nStatusSuccess = "success"
	N8nStatusError   = "error"
)

// deriveBotReply turns a gateway result into the bot message body plus the
// status tag carried in the response envelope. Gateway failures degrade to an
// apologetic message; they never fail the request.
func deriveBotReply(res n8n.Result) (content, status string) {
	if !res.Success {
		return "Sorry, I could not process your message right now. Error: " + res.Error, N8nStatusError
	}

	if out, ok := res.Data["output"].(string); ok && out != "" {
		return out, N8nStatusSuccess
	}
	if resp, ok := res.Data["response"].(string); ok && resp != "" {
		return resp, N8nStatusSuccess
	}

	raw, err := json.Marshal(res.Data)
	if err != nil {
		return "Sorry, I could not process your message right now. Error: " + err.Error(), N8nStatusError
	}
	return string(raw), N8nStatusSuccess
}

// truncateTalkName derives a talk name from the first message: 50 runes plus
// an ellipsis marker when the message is longer.
func truncateTalkName(message string) string {
	runes := []rune(message)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return message
}
