package chat

import (
	"strings"
	"testing"
)

func TestSanitizeReply(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain text untouched",
			raw:  "Tenang, pengeluaranmu sudah saya catat.",
			want: "Tenang, pengeluaranmu sudah saya catat.",
		},
		{
			name: "strips chatml delimiters",
			raw:  "<|im_start|>assistant\nHalo!<|im_end|>",
			want: "assistant\nHalo!",
		},
		{
			name: "strips instruct tokens",
			raw:  "[INST]halo[/INST] Siap, sudah dicatat. </s>",
			want: "halo Siap, sudah dicatat.",
		},
		{
			name: "trims surrounding whitespace",
			raw:  "  \n Oke! \t",
			want: "Oke!",
		},
		{
			name: "endoftext mid sentence",
			raw:  "Sudah tercatat ya.<|endoftext|>",
			want: "Sudah tercatat ya.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeReply(tt.raw); got != tt.want {
				t.Errorf("sanitizeReply(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestReplyUsable(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{name: "normal reply", reply: "Pengeluaran 20 ribu sudah dicatat.", want: true},
		{name: "empty", reply: "", want: false},
		{name: "mangled delimiter", reply: "Halo <|im_sta", want: false},
		{name: "partial inst tag", reply: "jawaban [/INST", want: false},
		{name: "replacement character", reply: "Halo � dunia", want: false},
		{name: "at rune ceiling", reply: strings.Repeat("a", maxReplyRunes), want: true},
		{name: "over rune ceiling", reply: strings.Repeat("a", maxReplyRunes+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := replyUsable(tt.reply); got != tt.want {
				t.Errorf("replyUsable(%q...) = %v, want %v", truncateForLog(tt.reply), got, tt.want)
			}
		})
	}
}

func truncateForLog(s string) string {
	if len(s) > 40 {
		return s[:40]
	}
	return s
}

func TestSanitizedArtifactOnlyOutputIsUnusable(t *testing.T) {
	raw := "<|im_start|><|im_end|>  "
	if got := sanitizeReply(raw); replyUsable(got) {
		t.Errorf("artifact-only output should be unusable, got %q", got)
	}
}
