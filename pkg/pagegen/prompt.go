package pagegen

import (
	"fmt"
	"strings"

	"bevgenie-be/pkg/knowledge"
)

const (
	maxSnippets     = 3
	snippetMaxChars = 200
	maxHistoryTurns = 2
)

// buildSelectionPrompt asks the model to pick the best template for the
// visitor's message from the candidates' bestFor descriptions.
func buildSelectionPrompt(message string, candidates []*Template) string {
	var b strings.Builder
	b.WriteString("You route a visitor message to the best landing-page template.\n\n")
	b.WriteString("<templates>\n")
	for _, t := range candidates {
		b.WriteString(fmt.Sprintf("- %s: best for %s\n", t.Name, strings.Join(t.BestFor, ", ")))
	}
	b.WriteString("</templates>\n\n")
	b.WriteString("<visitor_message>\n")
	b.WriteString(message)
	b.WriteString("\n</visitor_message>\n\n")
	b.WriteString("Respond with ONLY this JSON format: {\"template\": \"<name>\"}. No other text.")
	return b.String()
}

// buildFillPrompt asks for placeholder values only; the structure itself is
// fixed by the template.
func buildFillPrompt(t *Template, req *Request, snippets []knowledge.Snippet) string {
	var b strings.Builder
	b.WriteString("You write landing-page copy for BevGenie, a retail-execution intelligence platform for the beverage industry.\n")
	b.WriteString("Fill ONLY the placeholder values below. Do not invent new fields.\n\n")

	writeVisitorContext(&b, req, snippets)

	b.WriteString("<placeholders>\n")
	for _, slot := range t.Slots() {
		b.WriteString("- ")
		b.WriteString(slot)
		b.WriteString(": ")
		b.WriteString(slotGuidance(slot))
		b.WriteString("\n")
	}
	b.WriteString("</placeholders>\n\n")

	b.WriteString("Respond with ONLY a JSON object mapping every placeholder name to its value. No other text.")
	return b.String()
}

// buildSynthesisPrompt asks for the entire page body. Violations from prior
// attempts are appended as corrective feedback.
func buildSynthesisPrompt(req *Request, snippets []knowledge.Snippet, feedback []string) string {
	var b strings.Builder
	b.WriteString("You generate a complete one-screen landing page for BevGenie, a retail-execution intelligence platform for the beverage industry.\n\n")

	b.WriteString("<schema>\n")
	b.WriteString("Respond with ONLY a JSON object with these fields:\n")
	b.WriteString("- headline: string, 20-80 chars\n")
	b.WriteString("- subtitle: string, 15-60 chars\n")
	b.WriteString("- insights: array of 3-5 objects {\"text\": string 50-250 chars}\n")
	b.WriteString("- stats: array of exactly 3 objects {\"value\": string <=15 chars, \"label\": string <=40 chars}\n")
	b.WriteString("- visual: object {\"type\": \"case_study\"|\"highlight_box\"|\"example\", \"title\": string, \"body\": string}\n")
	b.WriteString("- steps: array of 3-5 strings, each 20-100 chars\n")
	b.WriteString("- ctas: array of 2-3 objects {\"text\": string <=40 chars, \"action\": \"book_demo\"|\"contact_sales\"|\"learn_more\"|\"download\"}\n")
	b.WriteString("</schema>\n\n")

	writeVisitorContext(&b, req, snippets)

	if len(feedback) > 0 {
		b.WriteString("<previous_attempt_violations>\n")
		b.WriteString("Your previous output violated these rules. Fix every one of them:\n")
		for _, f := range feedback {
			b.WriteString("- ")
			b.WriteString(f)
			b.WriteString("\n")
		}
		b.WriteString("</previous_attempt_violations>\n\n")
	}

	b.WriteString("Respond with ONLY the JSON object. No markdown, no commentary.")
	return b.String()
}

func writeVisitorContext(b *strings.Builder, req *Request, snippets []knowledge.Snippet) {
	b.WriteString("<visitor_context>\n")
	b.WriteString("Message: ")
	b.WriteString(req.Message)
	b.WriteString("\n")
	if req.ClickContext != "" {
		b.WriteString("Clicked: ")
		b.WriteString(req.ClickContext)
		b.WriteString("\n")
	}
	if req.Persona != nil {
		b.WriteString("Visitor persona: ")
		b.WriteString(req.Persona.Describe())
		b.WriteString("\n")
	}
	b.WriteString("Page type: ")
	b.WriteString(string(req.PageType))
	b.WriteString("\n</visitor_context>\n\n")

	if len(snippets) > 0 {
		b.WriteString("<knowledge>\n")
		for i, s := range snippets {
			if i >= maxSnippets {
				break
			}
			content := s.Content
			if len(content) > snippetMaxChars {
				content = content[:snippetMaxChars] + "..."
			}
			b.WriteString(fmt.Sprintf("[%s] %s\n", s.SourceType, content))
		}
		b.WriteString("</knowledge>\n\n")
	}

	if len(req.History) > 0 {
		b.WriteString("<recent_conversation>\n")
		start := len(req.History) - maxHistoryTurns
		if start < 0 {
			start = 0
		}
		for _, msg := range req.History[start:] {
			b.WriteString(msg.Role)
			b.WriteString(": ")
			b.WriteString(msg.Content)
			b.WriteString("\n")
		}
		b.WriteString("</recent_conversation>\n\n")
	}
}

func slotGuidance(slot string) string {
	switch {
	case slot == "headline":
		return "page headline, 20-80 chars, specific to the visitor's question"
	case slot == "subtitle":
		return "supporting subtitle, 15-60 chars"
	case strings.HasPrefix(slot, "insight_"):
		return "one concrete insight sentence, 50-250 chars"
	case strings.HasSuffix(slot, "_value"):
		return "short stat value like \"37%\" or \"2.4x\", max 15 chars"
	case strings.HasSuffix(slot, "_label"):
		return "what the stat measures, max 40 chars"
	case slot == "visual_title":
		return "short title for the visual block"
	case slot == "visual_body":
		return "2-3 sentence body for the visual block"
	case strings.HasPrefix(slot, "step_"):
		return "one how-it-works step, 20-100 chars"
	default:
		return "short marketing copy"
	}
}
