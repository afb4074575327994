package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fabula/pkg/parse"
)

func TestCleanStory(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips preamble before title",
			in:   "Here is your story\nThe Lonely Comet\nOnce there was a comet...",
			want: "The Lonely Comet\n\nOnce there was a comet...",
		},
		{
			name: "clean reply passes through",
			in:   "The Brave Gear\n\nIn a workshop at the edge of town, a small gear dreamed of turning.",
			want: "The Brave Gear\n\nIn a workshop at the edge of town, a small gear dreamed of turning.",
		},
		{
			name: "no qualifying line keeps everything",
			in:   "It was raining all week.\nEveryone stayed inside.",
			want: "It was raining all week.\n\nEveryone stayed inside.",
		},
		{
			name: "once opener is not a title regardless of case",
			in:   "once upon a time in a distant town\nThe Map\nA girl found a map in the attic.",
			want: "The Map\n\nA girl found a map in the attic.",
		},
		{
			name: "here opener is not a title",
			in:   "Here's a short story for you\nThe Quiet Pond\nFrogs sang all night.",
			want: "The Quiet Pond\n\nFrogs sang all night.",
		},
		{
			name: "long line is not a title",
			in:   strings.Repeat("a", 120) + "\nThe End of Waiting\nThe bus finally came.",
			want: "The End of Waiting\n\nThe bus finally came.",
		},
		{
			name: "punctuated title-like line is dropped",
			in:   "An Ending!\nThe Next Day\nThe sun rose anyway.",
			want: "The Next Day\n\nThe sun rose anyway.",
		},
		{
			name: "blank and padded lines are normalized",
			in:   "  The Tiny Robot  \n\n\n  It beeped twice.  \n",
			want: "The Tiny Robot\n\nIt beeped twice.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   "  \n\t\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parse.CleanStory(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, parse.CleanStory(got), "cleaning its own output should change nothing")
		})
	}
}

func TestCleanStoryKeepsUnicodeTitles(t *testing.T) {
	in := "Voici une histoire :\nLa Comète Solitaire\nIl était une fois une comète."
	want := "La Comète Solitaire\n\nIl était une fois une comète."
	assert.Equal(t, want, parse.CleanStory(in))
}

func TestCleanStoryCountsRunesNotBytes(t *testing.T) {
	// 99 two-byte runes is 198 bytes but still under the 100-rune ceiling.
	title := strings.Repeat("é", 99)
	in := title + "\nThe body follows here."
	assert.Equal(t, title+"\n\nThe body follows here.", parse.CleanStory(in))
}
