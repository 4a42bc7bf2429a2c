package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \t\n ", want: ""},
		{name: "latin", input: "  Hello World ", want: "hello world"},
		{name: "cyrillic", input: "Срочная УГРОЗА", want: "срочная угроза"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestContainsAny(t *testing.T) {
	t.Parallel()

	assert.True(t, ContainsAny("горы и вода", []string{"мор", "вод"}))
	assert.False(t, ContainsAny("ясное небо", []string{"вод", "гор"}))
	assert.False(t, ContainsAny("anything", []string{""}))
	assert.False(t, ContainsAny("anything", nil))
}

func TestContainsWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		words []string
		want  bool
	}{
		{name: "whole word", text: "гром под горой", words: []string{"горой"}, want: true},
		{name: "punctuation boundary", text: "вода, гора.", words: []string{"гора"}, want: true},
		{name: "prefix of longer word", text: "лес горит", words: []string{"гор", "гора"}, want: false},
		{name: "inside longer word", text: "мудрое руководство", words: []string{"вод", "вода"}, want: false},
		{name: "no words", text: "вода", words: nil, want: false},
		{name: "empty text", text: "", words: []string{"вода"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsWord(tt.text, tt.words))
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	got, ok := FirstNonEmpty("", "  ", " second ", "third")
	assert.True(t, ok)
	assert.Equal(t, "second", got)

	got, ok = FirstNonEmpty("", " ")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestSplitSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "four sentences", input: "A. B. C. D.", want: []string{"A.", "B.", "C.", "D."}},
		{name: "no trailing period", input: "Идите вперёд. Не спешите", want: []string{"Идите вперёд.", "Не спешите."}},
		{name: "only periods", input: " . .. ", want: []string{}},
		{name: "decimal is split", input: "Шанс 0.5", want: []string{"Шанс 0.", "5."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2}, Truncate([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1}, Truncate([]int{1}, 3))
}
