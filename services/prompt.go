package services

import "fmt"

const promptTemplate = `You are helping prepare deal listings. Rewrite the following info
into a catchy product title, a short HTML-formatted description (with
<h2>, <ul>, <li>, and a few emojis if appropriate), and a 1-2 sentence SEO description.

Deal Title: %s
Deal Description: %s

Respond in JSON with keys: title, html_description, seo_description.`

// BuildPrompt renders the generation prompt for one cleaned row. Pure and
// deterministic: the same title/description pair always yields the same
// prompt.
func BuildPrompt(title, description string) string {
	return fmt.Sprintf(promptTemplate, title, description)
}
