package tutor

import (
	"fmt"
	"strings"

	"github.com/Yashshokeen-11/ALP/internal/pathgen"
)

const narrationSystemPrompt = `You are a calm, encouraging study coach. A learner is about to start a sequence of concepts chosen for them. Write a short narration of the plan: one headline sentence, then one brief note per step. Be concrete and warm, never condescending.`

func buildNarrationUserMessage(path *pathgen.Path) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Subject: %s\n", path.SubjectID))
	b.WriteString(fmt.Sprintf("Total estimated time: %d minutes\n", path.TotalEstimatedMins))

	b.WriteString("\nSteps in order:\n")
	for i, step := range path.Steps {
		b.WriteString(fmt.Sprintf("%d. %s (id: %s, difficulty %.1f, ~%d min, current mastery %.0f%%)\n",
			i+1, step.Concept.Title, step.Concept.ID, step.Concept.Difficulty,
			step.Concept.EstimatedMins, step.Mastery*100))
	}

	if len(path.Gaps) > 0 {
		b.WriteString("\nPrerequisites holding back later material:\n")
		for _, g := range path.Gaps {
			b.WriteString(fmt.Sprintf("- %s\n", g))
		}
	}

	b.WriteString(`
Instructions:
1. Write one headline sentence for the whole plan. Mention the subject and roughly how long it takes.
2. For each step, write one short encouragement (under 20 words). Reference what the step builds on or unlocks where that helps.
3. Return exactly one entry per step, keyed by the concept id shown above, in the same order.
4. Plain text only. No markdown, no emoji.`)

	return b.String()
}

const explainSystemPrompt = `You are a calm, encouraging study coach. A learner wants to understand what a concept is before studying it. Introduce the concept in their terms, connect it to what they already know, and suggest how to start. Be concrete and warm, never condescending.`

func buildExplainUserMessage(in ExplainInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Concept: %s (id: %s)\n", in.Concept.Title, in.Concept.ID))
	b.WriteString(fmt.Sprintf("Subject: %s\n", in.Concept.SubjectID))
	b.WriteString(fmt.Sprintf("Difficulty %.1f, about %d minutes of study\n", in.Concept.Difficulty, in.Concept.EstimatedMins))
	b.WriteString(fmt.Sprintf("Learner's current mastery: %.0f%% (proficiency bar is %.0f%%)\n", in.Mastery*100, in.Threshold*100))

	if len(in.Prereqs) > 0 {
		b.WriteString("\nWhat it builds on:\n")
		for _, p := range in.Prereqs {
			standing := "not there yet"
			if p.Satisfied {
				standing = "solid"
			}
			b.WriteString(fmt.Sprintf("- %s (mastery %.0f%%, %s)\n", p.Concept.Title, p.Mastery*100, standing))
		}
	}

	if len(in.Unlocks) > 0 {
		b.WriteString("\nWhat it unlocks:\n")
		for _, u := range in.Unlocks {
			b.WriteString(fmt.Sprintf("- %s\n", u.Title))
		}
	}

	b.WriteString(`
Instructions:
1. "overview": two or three sentences on what this concept actually is.
2. "why_now": one or two sentences connecting it to the prerequisites the learner already holds and to what it unlocks.
3. "first_steps": two or three concrete ways to begin, each under 15 words.
4. Plain text only. No markdown, no emoji.`)

	return b.String()
}
