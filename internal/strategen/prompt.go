package strategen

import (
	"fmt"
	"strings"
)

// maxContentRunes caps how much lesson text goes into a prompt.
const maxContentRunes = 10000

const strategiesSystemPrompt = `You are an educational consultant for the Saudi Ministry of Education.
Analyze the provided lesson content and generate 4 to 6 distinct Active Learning Strategies suitable for this content.

You MUST strictly choose from the following strategies and adapt them to the content:

1. The Hot Chair (الكرسي الساخن)
2. Four to Win (بالأربعة تربح) - Strategy where groups compete to connect 4 correct answers (vertical, horizontal, or diagonal).
3. Fast Pen / The Balloon (البالون / القلم السريع) - A competition where a student stands 8m away. Teacher throws a balloon, student runs to screen to choose between 2 answers (Correct/Wrong). If correct, they must catch balloon before it hits ground (30pts) or after (15pts).
4. X & O (إكس أو) - Using a tic-tac-toe grid filled with questions derived from the lesson.
5. Cooperative Learning (التعلم التعاوني) - Group roles and shared tasks.
6. Memory Power (قوة الذاكرة / تحدي الذاكرة) - A team competition game. Teams answer a lesson question to unlock a "Memory Challenge" where they must find the hidden logo among shuffling cards.
7. Learning by Play (التعلم باللعب) - General gamification of the lesson content.

For each strategy, provide:
- Strategy Name (Arabic)
- Main Idea (summary of how it works for this lesson)
- 3 Specific Behavioral Objectives (Ahdaf)
- Step-by-Step Implementation Guide
- Tools/Materials needed (e.g., Cards, Board, Timer, Balloon)
- Questions Bank: Extract specific questions (with short answers) DIRECTLY from the provided content. CRITICAL: Provide one 'answer' (correct) and one 'wrongAnswer' (distractor) for each question.

Return the response in strict JSON format.`

func buildStrategiesUserMessage(in Input) string {
	var b strings.Builder

	b.WriteString("Context:\n")
	b.WriteString(fmt.Sprintf("Subject: %s\n", in.Subject))
	b.WriteString(fmt.Sprintf("Grade: %s\n", in.Grade))

	if content := truncateContent(in.Content); content != "" {
		b.WriteString(fmt.Sprintf("\nLesson Content Input: %q\n", content))
	}

	if in.File != nil {
		b.WriteString("\nCRITICAL: A file is attached (Image/PDF). The text extraction might be incomplete. Use your vision capabilities to analyze the visual content of the attached file directly to generate the strategies and questions.\n")
	} else {
		b.WriteString("\nNo file attached.\n")
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
- Strategy Generation: Generate 4 to 6 strategies from the allowed list.
- Question Extraction: For each strategy, extract EXACTLY %d specific questions.
- CRITICAL for "Balloon" strategy: You MUST provide 'wrongAnswer' for every question.
- Output valid JSON.`, in.QuestionsCount))

	return b.String()
}

const questionBankSystemPrompt = `You are an expert educational consultant. Extract a comprehensive question bank from the provided lesson content.`

func buildQuestionBankUserMessage(in Input) string {
	var b strings.Builder

	b.WriteString("Context:\n")
	b.WriteString(fmt.Sprintf("Subject: %s\n", in.Subject))
	b.WriteString(fmt.Sprintf("Grade: %s\n", in.Grade))
	b.WriteString("\nTask: Generate a \"Comprehensive Question Bank\".\n")

	if in.File != nil {
		b.WriteString("\nCRITICAL: A file is attached. Use your vision capabilities to read and analyze ALL text and visual content from the file to extract questions.\n")
	}
	if content := truncateContent(in.Content); content != "" {
		b.WriteString(fmt.Sprintf("\nProvided Text: %q\n", content))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
1. Generate EXACTLY %d high-quality questions based ONLY on the provided content.
2. Provide a plausible wrong answer for each question.
3. Name: "%s"
4. Output valid JSON.`, in.QuestionsCount, QuestionBankName))

	return b.String()
}

const ocrPrompt = `You are an OCR expert. Extract ALL readable text from this image/PDF strictly as it is. Do not summarize. Do not add markdown formatting. Just return the raw text.`

// truncateContent limits lesson text to the prompt budget.
func truncateContent(s string) string {
	runes := []rune(s)
	if len(runes) <= maxContentRunes {
		return s
	}
	return string(runes[:maxContentRunes])
}
