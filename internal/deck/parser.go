package deck

import (
	"errors"
	"regexp"
	"strings"
)

// NoAnswerPlaceholder is used as the answer for blocks without an answer separator.
const NoAnswerPlaceholder = "No answer provided."

// ErrNoQuestionsFound is returned when the input contains no recognizable question markers.
var ErrNoQuestionsFound = errors.New("no questions found in the markdown (expected **Frage X** or **Question X**)")

var (
	questionPattern    = regexp.MustCompile(`(?i)\*\*(?:Frage|Question)\s+([^*]+)\*\*`)
	answerSplitPattern = regexp.MustCompile(`(?i)\*\*(?:Antwort|Answer):?\*\*|(?:Antwort|Answer):`)
	headingPattern     = regexp.MustCompile(`^\s*#`)
)

// Parse extracts all cards from a markdown deck in document order.
// A card block spans from its question marker to the next marker or the end
// of the document. Text before the first marker is discarded.
func Parse(text string) ([]Card, error) {
	matches := questionPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil, ErrNoQuestionsFound
	}

	cards := make([]Card, 0, len(matches))
	for i, match := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		block := strings.TrimSpace(text[match[0]:end])

		// Skip the **Frage ...** line itself.
		lines := strings.Split(block, "\n")
		content := strings.TrimSpace(strings.Join(lines[1:], "\n"))

		var question, answer string
		parts := answerSplitPattern.Split(content, 2)
		if len(parts) == 2 {
			question = strings.TrimSpace(parts[0])
			answer = cleanAnswer(strings.TrimSpace(parts[1]))
		} else {
			question = content
			answer = NoAnswerPlaceholder
		}

		cards = append(cards, Card{
			ID:       strings.TrimSpace(text[match[2]:match[3]]),
			Question: question,
			Answer:   answer,
		})
	}

	return cards, nil
}

// cleanAnswer truncates an answer so that trailing document structure is not shown.
// Accumulation stops at the first markdown heading line or horizontal rule.
func cleanAnswer(answer string) string {
	var cleaned []string
	for _, line := range strings.Split(answer, "\n") {
		if headingPattern.MatchString(line) {
			break
		}
		if strings.TrimSpace(line) == "---" {
			break
		}
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
