package gemini

import (
	"fmt"
	"strings"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
)

// The remote model only sees a bounded snippet; very large documents are
// truncated the same way every time.
const maxPromptChars = 10000

var lengthInstructions = map[domain.LengthSetting]string{
	domain.LengthShort:  "in 2-3 sentences",
	domain.LengthMedium: "in 4-6 sentences",
	domain.LengthLong:   "in a detailed paragraph of 8-10 sentences",
}

func buildSummaryPrompt(text string, length domain.LengthSetting) string {
	instruction, ok := lengthInstructions[length]
	if !ok {
		instruction = lengthInstructions[domain.LengthMedium]
	}
	return fmt.Sprintf(`Summarize the following text %s.
Focus on the main ideas and key information. Be concise and clear.

TEXT:
%s

SUMMARY:`, instruction, truncate(text))
}

func buildKeyPointsPrompt(text string, maxPoints int) string {
	return fmt.Sprintf(`Extract exactly %d key points from the following text.
Format each point as a clear, concise bullet point.
Return ONLY the bullet points, one per line, starting with "-".

TEXT:
%s

KEY POINTS:`, maxPoints, truncate(text))
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxPromptChars {
		return text
	}
	return string(runes[:maxPromptChars])
}

// parseBulletList pulls bullet lines out of a freeform model response,
// stripping bullet markers and numbering.
func parseBulletList(raw string, maxPoints int) []string {
	points := make([]string, 0, maxPoints)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "•-*— \t")
		line = trimNumbering(line)
		if line == "" {
			continue
		}
		points = append(points, line)
		if len(points) == maxPoints {
			break
		}
	}
	if len(points) == 0 {
		points = append(points, strings.TrimSpace(raw))
	}
	return points
}

// trimNumbering removes a leading "1." / "2)" style ordinal.
func trimNumbering(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) {
		return line
	}
	if line[i] != '.' && line[i] != ')' {
		return line
	}
	return strings.TrimSpace(line[i+1:])
}
