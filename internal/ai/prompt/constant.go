package prompt

// Prompt templates. The wording is part of the contract: downstream parsing
// (numbered task lists) and the product tone depend on it, so changes here
// must stay in sync with the response parser.
const (
	summarizeTemplate = `Please provide a concise summary of the following text.
Keep the summary brief but capture all key points.

Text to summarize:
%s
`

	generateTasksTemplate = `Based on the following text, generate a list of actionable tasks.
Format each task as a clear, concise action item.
Return the tasks as a numbered list.

Text:
%s
`

	dailySummaryTemplate = `Generate a motivational daily productivity summary based on the following data:
- Completed tasks: %d
- Pending tasks: %d
- Notes created: %d

Include:
1. A brief summary of accomplishments
2. Encouragement for pending tasks
3. One productivity tip

Keep it concise and positive.
`

	insightsTemplate = `Based on the user's notes and tasks, provide actionable insights and recommendations.

Notes content:
%s

Tasks:
%s

Provide:
1. Key patterns or themes identified
2. Priority recommendations
3. Time management suggestions
4. Potential blockers to watch out for

Keep the insights practical and actionable.
`

	chatPreamble = "You are a helpful productivity assistant. Help users manage their tasks, notes, and improve productivity.\n\n"

	chatHistoryHeader = "Previous conversation:\n"

	// Placeholders for missing insight inputs.
	placeholderNoNotes = "No notes"
	placeholderNoTasks = "No tasks"
)
