package llm

import "fmt"

const blogPromptTemplate = `Generate a detailed, informative, and engaging blog post on the topic %q.

INSTRUCTION: DO NOT include the title in the generated text. Start your response directly with the introduction paragraph.

- Structure the response with an introduction, several main body sections (using ## for section titles), and a conclusion.
- Format the entire response using standard Markdown.
- Use appropriate Markdown headings (##), bold text (**), and lists (*) for structure.`

// BlogPrompt builds the draft generation prompt for a title.
func BlogPrompt(title string) string {
	return fmt.Sprintf(blogPromptTemplate, title)
}
