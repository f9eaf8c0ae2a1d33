package nlp

import (
	"reflect"
	"testing"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "mixed french input with url hashtag and number",
			raw:  "Bonjour le monde! http://x.co #fun 123 café",
			want: []string{"bonjour", "monde", "cafe"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "  \t\n  ",
			want: nil,
		},
		{
			name: "all stopwords yields empty",
			raw:  "The and of le la",
			want: nil,
		},
		{
			name: "emoji stripped",
			raw:  "space launch 🚀😀 replay",
			want: []string{"space", "launch", "replay"},
		},
		{
			name: "brackets become spaces and splice words",
			raw:  "guide[full]version",
			want: []string{"guide", "full", "version"},
		},
		{
			name: "https url stripped",
			raw:  "watch premiere https://example.com/v?id=42 now",
			want: []string{"watch", "premiere", "now"},
		},
		{
			name: "hashtags stripped",
			raw:  "sunset timelapse #nature #4k",
			want: []string{"sunset", "timelapse"},
		},
		{
			name: "french elisions stripped",
			raw:  "L'été c'est l'amour",
			want: []string{"amour"},
		},
		{
			name: "standalone numbers dropped but alphanumerics kept",
			raw:  "top 10 mp3 converters 2024",
			want: []string{"top", "mp3", "converters"},
		},
		{
			name: "hyphen kept inside word dropped around spaces",
			raw:  "well-known recipe - quick",
			want: []string{"well-known", "recipe", "quick"},
		},
		{
			name: "accents folded before stopword match",
			raw:  "même été différent",
			want: []string{"different"},
		},
		{
			name: "punctuation class removed",
			raw:  `"quoted", stuff; mixed: tokens...`,
			want: []string{"quoted", "stuff", "mixed", "tokens"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// 归一化必须是幂等的：对已归一化的文本再跑一遍不应产生变化。
func TestNormalizer_Idempotent(t *testing.T) {
	n := New()

	inputs := []string{
		"Bonjour le monde! http://x.co #fun 123 café",
		"well-known recipe - quick",
		"space launch 🚀 replay",
		"L'été c'est l'amour",
	}
	for _, raw := range inputs {
		once := n.NormalizeJoined(raw)
		twice := n.NormalizeJoined(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalizer_WithStopwords(t *testing.T) {
	n := New(WithStopwords([]string{"foo"}))

	got := n.Normalize("foo the bar")
	// 自定义词表完全替换默认词表："the" 不再是停用词
	want := []string{"the", "bar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizer_NormalizeJoined(t *testing.T) {
	n := New()

	if got := n.NormalizeJoined("Bonjour le monde! café"); got != "bonjour monde cafe" {
		t.Errorf("NormalizeJoined = %q", got)
	}
	if got := n.NormalizeJoined(""); got != "" {
		t.Errorf("NormalizeJoined(empty) = %q", got)
	}
}
