package services

import (
	"fmt"

	"github.com/quizforge/quizforge-core/internal/core/domain"
)

// ocrPrompt instructs the model to extract text from an image of handwritten
// notes as strict JSON. The model is still free to ignore the instruction;
// the normalizer handles whatever comes back.
const ocrPrompt = `Extract the textual contents of the provided image of handwritten notes and return STRICT JSON only.
Return your answer as a JSON object with exactly these two fields:
JSON format:
{
  "text": "<full extracted text as a single string>",
  "lines": ["line1", "line2", ...]
}
Both fields must always be present, even if empty. Do not add any commentary or extra fields. Return only valid JSON.`

const mcqPromptFmt = `<DOC>
%s
</DOC>
Generate exactly %d multiple-choice questions (MCQs) from the text above.
Return a JSON array, where each item has:
{
"question": "the question text",
"options": ["A) option 1", "B) option 2", "C) option 3", "D) option 4"],
"answer": "the correct option (as text)",
"explanation": "a short explanation",
"source_span": "the relevant text span from the DOC"
}

Return ONLY valid JSON, no commentary or markdown.`

const shortPromptFmt = `<DOC>
%s
</DOC>
Generate exactly %d short-answer questions from the text above.
Return a JSON array, where each item has:
- question: the question text (expects a short textual answer)
- answer: the short answer text
- explanation: a short explanation or rubric
- source_span: the relevant text span from the DOC

Return ONLY valid JSON, no commentary or markdown.`

const longPromptFmt = `<DOC>
%s
</DOC>
Generate exactly %d long-answer (essay) questions from the text above.
Return a JSON array, where each item has:
- question: the question text (expects a longer written answer)
- answer: an exemplar/outline answer (can be multi-paragraph)
- explanation: guidance on marking/expected key points
- source_span: the relevant text span from the DOC

Return ONLY valid JSON, no commentary or markdown.`

// questionPrompt builds the category-specific generation prompt embedding
// the source text and requested count
func questionPrompt(kind domain.QuestionType, text string, count int) string {
	switch kind {
	case domain.QuestionMCQ:
		return fmt.Sprintf(mcqPromptFmt, text, count)
	case domain.QuestionShort:
		return fmt.Sprintf(shortPromptFmt, text, count)
	default:
		return fmt.Sprintf(longPromptFmt, text, count)
	}
}
