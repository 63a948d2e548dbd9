// Package classify decides whether recognized text looks like a programming
// task. It is a keyword heuristic, not a parser.
package classify

import "strings"

type Classifier struct {
	keywords []string
}

// New builds a classifier over keywords. Matching is case-insensitive and
// blank keywords are ignored.
func New(keywords []string) *Classifier {
	c := &Classifier{}
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			c.keywords = append(c.keywords, k)
		}
	}
	return c
}

// LooksLikeCodeTask reports whether any keyword occurs in text as a
// substring. Empty text is never a task.
func (c *Classifier) LooksLikeCodeTask(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, k := range c.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func (c *Classifier) Keywords() []string {
	return append([]string(nil), c.keywords...)
}
