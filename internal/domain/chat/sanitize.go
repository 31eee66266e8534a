package chat

import (
	"strings"
	"unicode/utf8"
)

// Instruction-delimiter tokens that some free-tier models leak into their
// output verbatim.
var artifactTokens = []string{
	"<|im_start|>",
	"<|im_end|>",
	"<|endoftext|>",
	"[INST]",
	"[/INST]",
	"<s>",
	"</s>",
}

// maxReplyRunes bounds the sanitized reply. The model is asked for at most
// 500 output tokens; anything past this ceiling is a degenerate repetition
// loop, not an answer.
const maxReplyRunes = 2000

// Markers that survive token stripping only when the output is mangled mid
// delimiter.
var garbageMarkers = []string{"<|", "[/INST", "�"}

// sanitizeReply strips known formatting artifacts and trims whitespace.
func sanitizeReply(raw string) string {
	cleaned := raw
	for _, token := range artifactTokens {
		cleaned = strings.ReplaceAll(cleaned, token, "")
	}
	return strings.TrimSpace(cleaned)
}

// replyUsable reports whether a sanitized reply is fit to show the user.
// Known-bad output is treated like a failed model call and replaced with the
// persona fallback.
func replyUsable(reply string) bool {
	if reply == "" {
		return false
	}
	if utf8.RuneCountInString(reply) > maxReplyRunes {
		return false
	}
	for _, marker := range garbageMarkers {
		if strings.Contains(reply, marker) {
			return false
		}
	}
	return true
}
