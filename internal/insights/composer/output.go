package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
)

type modelOutput struct {
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
}

// parseOutput extracts the JSON object from a completion, tolerating code fences and
// surrounding prose.
func parseOutput(raw string) (modelOutput, error) {
	text := strings.TrimSpace(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return modelOutput{}, ErrMalformedOutput
	}

	var out modelOutput
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return modelOutput{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	out.Subject = strings.TrimSpace(out.Subject)
	out.BodyHTML = strings.TrimSpace(out.BodyHTML)
	if out.Subject == "" || out.BodyHTML == "" {
		return modelOutput{}, ErrIncompleteOutput
	}
	return out, nil
}

// hasHTMLElements reports whether body contains at least one element.
func hasHTMLElements(body string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return false
	}
	return doc.Find("body").Children().Length() > 0
}

// markdownToHTML renders model output that came back as markdown or plain text.
func markdownToHTML(body string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
