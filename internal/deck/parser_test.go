package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []Card
		wantErr error
	}{
		{
			name: "single card with answer and trailing rule",
			text: "**Question 1**\nWhat is 2+2?\n**Answer:**\n4\n---\nextra",
			want: []Card{
				{ID: "1", Question: "What is 2+2?", Answer: "4"},
			},
		},
		{
			name: "german card without answer gets placeholder",
			text: "**Frage A**\nEin Text ohne Antwort.",
			want: []Card{
				{ID: "A", Question: "Ein Text ohne Antwort.", Answer: NoAnswerPlaceholder},
			},
		},
		{
			name: "bare Antwort: without emphasis still splits",
			text: "**Frage 3**\nWie heißt die Hauptstadt?\nAntwort: Berlin",
			want: []Card{
				{ID: "3", Question: "Wie heißt die Hauptstadt?", Answer: "Berlin"},
			},
		},
		{
			name: "multiple cards in document order",
			text: "intro text is discarded\n\n**Question 1**\nFirst?\n**Answer:**\nA1\n\n**Question 2**\nSecond?\n**Answer:**\nA2\n",
			want: []Card{
				{ID: "1", Question: "First?", Answer: "A1"},
				{ID: "2", Question: "Second?", Answer: "A2"},
			},
		},
		{
			name: "case insensitive markers and separators",
			text: "**qUeStIoN X**\nBody?\n**aNsWeR**\nYes",
			want: []Card{
				{ID: "X", Question: "Body?", Answer: "Yes"},
			},
		},
		{
			name: "answer truncated at heading",
			text: "**Question 7**\nQ?\n**Answer:**\nline one\nline two\n# Next section\nignored",
			want: []Card{
				{ID: "7", Question: "Q?", Answer: "line one\nline two"},
			},
		},
		{
			name: "answer truncated at indented heading",
			text: "**Question 8**\nQ?\n**Answer:**\nkept\n   # heading with leading spaces\ndropped",
			want: []Card{
				{ID: "8", Question: "Q?", Answer: "kept"},
			},
		},
		{
			name: "only first separator splits",
			text: "**Question 9**\nQ?\n**Answer:**\nfirst\nAnswer: second",
			want: []Card{
				{ID: "9", Question: "Q?", Answer: "first\nAnswer: second"},
			},
		},
		{
			name: "marker with no body yields empty question and placeholder",
			text: "**Question 10**",
			want: []Card{
				{ID: "10", Question: "", Answer: NoAnswerPlaceholder},
			},
		},
		{
			name: "separator with nothing after it yields empty answer",
			text: "**Question 11**\nQ?\n**Answer:**",
			want: []Card{
				{ID: "11", Question: "Q?", Answer: ""},
			},
		},
		{
			name: "empty label is legal",
			text: "**Question  **\nBody?",
			want: []Card{
				{ID: "", Question: "Body?", Answer: NoAnswerPlaceholder},
			},
		},
		{
			name: "duplicate labels are kept as distinct cards",
			text: "**Question 1**\nFirst?\n**Question 1**\nSecond?",
			want: []Card{
				{ID: "1", Question: "First?", Answer: NoAnswerPlaceholder},
				{ID: "1", Question: "Second?", Answer: NoAnswerPlaceholder},
			},
		},
		{
			name:    "no markers",
			text:    "# Just a document\n\nNothing to study here.",
			wantErr: ErrNoQuestionsFound,
		},
		{
			name:    "empty input",
			text:    "",
			wantErr: ErrNoQuestionsFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.text)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Idempotence(t *testing.T) {
	text := "**Question 1**\nQ1?\n**Answer:**\nA1\n\n**Frage 2**\nQ2?\nAntwort: A2\n"

	first, err := Parse(text)
	require.NoError(t, err)
	second, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
