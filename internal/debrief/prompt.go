package debrief

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced emergency medicine attending debriefing a learner after a simulated case. Be direct, specific, and constructive. Ground every point in the decisions the learner actually made.`

func buildUserPrompt(in Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Case: %s\n", in.Scenario.Title))
	b.WriteString(fmt.Sprintf("Presentation: %s\n", in.Scenario.Presentation))
	b.WriteString(fmt.Sprintf("Score: %d/100\n", in.Result.Score))

	b.WriteString("\nActions the learner took:\n")
	if len(in.Result.Outcomes) == 0 {
		b.WriteString("None\n")
	}
	for _, o := range in.Result.Outcomes {
		verdict := "correct"
		if !o.Correct {
			verdict = "incorrect"
		}
		b.WriteString(fmt.Sprintf("- [%s] %s\n", verdict, o.Action.Action))
	}

	if len(in.Result.MissedActions) > 0 {
		b.WriteString("\nCritical actions the learner missed:\n")
		for _, a := range in.Result.MissedActions {
			b.WriteString(fmt.Sprintf("- %s (%s)\n", a.Action, a.Category))
		}
	}

	b.WriteString(`
Instructions:
Write a debrief of this attempt:
1. Summarize how the case was managed in 3-5 sentences, naming the pivotal decisions.
2. List 2-4 specific strengths based on the correct actions taken.
3. List 2-4 specific improvements, prioritizing any missed time-critical actions.
4. State the single most important teaching point from this case in one sentence.
Keep every point tied to the actions listed above. Plain text only.`)

	return b.String()
}
