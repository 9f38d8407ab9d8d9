package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "none", text: "hello world", want: 0},
		{name: "empty", text: "", want: 0},
		{name: "https", text: "look https://go.dev/doc now", want: 1},
		{name: "two", text: "https://a.example.com and http://b.example.org/x?y=1", want: 2},
		{name: "media placeholder", text: "<Media omitted>\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FindURLs(tt.text), tt.want)
		})
	}
}

func TestFindURLs_Values(t *testing.T) {
	assert.Equal(t, []string{"https://go.dev/doc"}, FindURLs("see https://go.dev/doc\n"))
}

func TestIsEmoji(t *testing.T) {
	for _, c := range []string{"😂", "👍", "🔥", "🎉"} {
		assert.True(t, IsEmoji(c), c)
	}
	for _, c := range []string{"", "a", " ", "!", "é", "中"} {
		assert.False(t, IsEmoji(c), c)
	}
}

func TestEmojis(t *testing.T) {
	assert.Equal(t, []string{"😂", "😂", "🔥"}, Emojis("lol 😂😂 that is 🔥"))
	assert.Empty(t, Emojis("plain text"))
	assert.Empty(t, Emojis(""))
}
