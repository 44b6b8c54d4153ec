// Package chatbot assembles answers for student queries: routing by intent,
// composing content into child-friendly responses, translating them into the
// student's language, and tracking the conversation.
package chatbot

import (
	"fmt"
	"strings"

	"github.com/tatvax/edubot/internal/language"
)

// Template keys understood by ResponseTemplate.
const (
	TemplateGreeting      = "greeting"
	TemplateClarification = "clarification"
	TemplateNotFound      = "not_found"
	TemplateError         = "error"
)

var responseTemplates = map[language.Code]map[string]string{
	language.English: {
		TemplateGreeting:      "Hello! How can I help you today?",
		TemplateClarification: "Could you please provide more details about your question?",
		TemplateNotFound:      "I don't have specific information about that topic. Could you try rephrasing your question?",
		TemplateError:         "I'm sorry, I encountered an error while processing your request.",
	},
	language.Hindi: {
		TemplateGreeting:      "नमस्ते! आज मैं आपकी कैसे मदद कर सकता हूँ?",
		TemplateClarification: "कृपया अपने प्रश्न के बारे में और विस्तार से बताएं?",
		TemplateNotFound:      "मेरे पास इस विषय की विशिष्ट जानकारी नहीं है। कृपया अपना प्रश्न दूसरे तरीके से पूछने की कोशिश करें?",
		TemplateError:         "मुझे खेद है, आपके अनुरोध को संसाधित करते समय मुझे एक त्रुटि आई।",
	},
}

// ResponseTemplate returns a canned response in the requested language,
// falling back to English and then to the error template.
func ResponseTemplate(key string, lang language.Code) string {
	templates, ok := responseTemplates[lang]
	if !ok {
		templates = responseTemplates[language.English]
	}
	if text, ok := templates[key]; ok {
		return text
	}
	return templates[TemplateError]
}

// Summarizer condenses long content before it is framed as a response.
type Summarizer interface {
	Summarize(text string, sentences int) string
}

// Composer turns ranked content into a finished chat response.
type Composer struct {
	summarizer Summarizer
}

func NewComposer(summarizer Summarizer) *Composer {
	if summarizer == nil {
		summarizer = ExtractiveSummarizer{}
	}
	return &Composer{summarizer: summarizer}
}

// ComposeSubject frames educational content as an encouraging answer.
func (c *Composer) ComposeSubject(subject, content string) string {
	if strings.TrimSpace(content) == "" {
		return c.makeChildFriendly(fmt.Sprintf(
			"I don't have specific information about that %s topic. Could you try asking about a different concept?",
			subject,
		))
	}

	if len([]rune(content)) > 500 {
		if summary := c.summarizer.Summarize(content, 3); strings.TrimSpace(summary) != "" {
			content = summary
		}
	}

	response := fmt.Sprintf("Here's what I can tell you about your %s question:\n\n", subject)
	response += content
	response += "\n\nWould you like me to explain any specific part in more detail?"
	return c.makeChildFriendly(response)
}

// ComposeInstitutional frames school information as an organized answer.
func (c *Composer) ComposeInstitutional(content string) string {
	if strings.TrimSpace(content) == "" {
		return "I don't have specific information about that. Please contact the school office for detailed information."
	}

	response := "Here's the information you requested:\n\n"
	response += content
	response += "\n\nIf you need more specific details, please contact the school office or check the official website."
	return c.makeInformative(response)
}

// GeneralEducational answers a learning question with no matching content.
func (c *Composer) GeneralEducational(query string) string {
	lower := strings.ToLower(query)
	for _, word := range []string{"what", "how", "why", "when", "where"} {
		if strings.Contains(lower, word) {
			return "That's a great question! While I don't have specific information about that topic right now, " +
				"I encourage you to explore this further. You could ask your teacher, check your textbook, " +
				"or research this topic online with a parent or guardian."
		}
	}
	return "I understand you're curious about this topic. Keep asking questions - that's how we learn! " +
		"Try asking your teacher or looking in your study materials for more detailed information."
}

// GeneralInstitutional answers a school question with no matching content.
func (c *Composer) GeneralInstitutional() string {
	return "For specific information about school policies, procedures, or schedules, " +
		"I recommend contacting the school office directly. They will be able to provide " +
		"you with the most accurate and up-to-date information."
}

// makeChildFriendly softens wording and tags the answer with a subject emoji.
func (c *Composer) makeChildFriendly(text string) string {
	text = strings.ReplaceAll(text, "You should", "You can")
	text = strings.ReplaceAll(text, "You must", "It's good to")
	text = strings.ReplaceAll(text, "difficult", "challenging but fun")
	text = strings.ReplaceAll(text, "hard", "needs practice")
	text = strings.ReplaceAll(text, "complex", "interesting")

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "mathematics") || strings.Contains(lower, "math"):
		text = "🔢 " + text
	case strings.Contains(lower, "science"):
		text = "🔬 " + text
	case strings.Contains(lower, "english"):
		text = "📚 " + text
	case strings.Contains(lower, "history") || strings.Contains(lower, "geography"):
		text = "🌍 " + text
	}
	return text
}

// makeInformative reshapes dense institutional prose into bullets and tags
// the standard labels.
func (c *Composer) makeInformative(text string) string {
	sentences := strings.Split(text, ". ")
	if len(sentences) > 3 {
		var b strings.Builder
		b.WriteString(sentences[0] + ".\n\n")
		for _, sentence := range sentences[1:] {
			sentence = strings.TrimSpace(sentence)
			if sentence != "" {
				b.WriteString("• " + sentence + "\n")
			}
		}
		text = b.String()
	}

	text = strings.ReplaceAll(text, "Important:", "\n📌 Important:")
	text = strings.ReplaceAll(text, "Note:", "\n💡 Note:")
	text = strings.ReplaceAll(text, "Contact:", "\n📞 Contact:")
	return text
}
