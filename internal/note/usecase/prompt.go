package usecase

import (
	"fmt"
	"time"

	"ai-notes/pkg/datemath"
)

const extractSystemPrompt = `Extract the user's notes into the following structured fields:
1. Title: A concise title of the notes less than 5 words
2. Notes: The notes based on user input written in full sentences.
3. Tags (A list): At most 3 Keywords or tags that categorize the content of the notes.
Output in JSON format without code fences. Output title and notes in the language: %s.
Example:
Input: "Badminton tmr 5pm @polyu".
Output:
{
"Title": "Badminton at PolyU",
"Notes": "Remember to play badminton at 5pm tomorrow at PolyU.",
"Tags": ["badminton", "sports"]
}`

// timeContextTemplate anchors the model to the user's local day. Relative
// wording is kept so the schedule inferrers see the same cues the user wrote.
const timeContextTemplate = `

Time context:
- Today: %s (%s)
- Tomorrow: %s
Keep relative dates and times such as "tomorrow" or "next Monday" as the user wrote them.`

func buildExtractPrompt(language string, now time.Time) string {
	return fmt.Sprintf(extractSystemPrompt, language) + buildTimeContext(now)
}

func buildTimeContext(now time.Time) string {
	return fmt.Sprintf(timeContextTemplate,
		now.Format(datemath.DateLayout),
		now.Weekday().String(),
		now.AddDate(0, 0, 1).Format(datemath.DateLayout),
	)
}

func buildTranslatePrompt(language, text string) string {
	return fmt.Sprintf("Translate the following text to %s:\n\n%s", language, text)
}
