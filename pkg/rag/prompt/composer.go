package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"portfolio-chat-be/internal/constant"
	"portfolio-chat-be/pkg/llm"
)

// historyWindow is how many trailing history turns are carried into the
// composed message list, independent of how much the session retains.
const historyWindow = 5

// Composer assembles the ordered message list for the generation client:
// one system-policy message, the trailing history window, then one user
// message with the context block and query substituted into the template.
type Composer struct {
	systemPrompt string
	userTmpl     *template.Template
}

// NewComposer parses the user template once. A malformed template is a fatal
// configuration error, not a runtime condition.
func NewComposer(systemPrompt, userTemplate string) (*Composer, error) {
	tmpl, err := template.New("user_prompt").Parse(userTemplate)
	if err != nil {
		return nil, fmt.Errorf("malformed user prompt template: %w", err)
	}
	return &Composer{
		systemPrompt: systemPrompt,
		userTmpl:     tmpl,
	}, nil
}

// Compose is pure: identical inputs always yield an identical message list,
// and the result is built fresh on every call.
func (c *Composer) Compose(query, contextBlock string, history []llm.Message) []llm.Message {
	var userMsg strings.Builder
	// Execute on a strings.Builder cannot fail for a template that only
	// references .Context and .Query on a struct carrying both.
	_ = c.userTmpl.Execute(&userMsg, struct {
		Context string
		Query   string
	}{Context: contextBlock, Query: query})

	window := history
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}

	messages := make([]llm.Message, 0, len(window)+2)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: c.systemPrompt,
	})
	messages = append(messages, window...)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: userMsg.String(),
	})

	return messages
}
