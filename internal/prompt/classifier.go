package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Category is the coarse intent bucket assigned to an incoming message.
// It selects the conversational frame the generation prompt is wrapped in.
type Category string

const (
	CategoryCode     Category = "code"
	CategoryCreate   Category = "create"
	CategoryQuestion Category = "question"
	CategoryFile     Category = "file"
	CategoryGeneral  Category = "general"
)

//go:embed prompts.yaml
var promptsYAML []byte

type rule struct {
	Category Category
	Keywords []string
	LeadIn   string
}

var rules = loadRules()

func loadRules() []rule {
	raw := struct {
		Categories []struct {
			Name     string   `yaml:"name"`
			Keywords []string `yaml:"keywords"`
			LeadIn   string   `yaml:"lead_in"`
		} `yaml:"categories"`
	}{}

	if err := yaml.Unmarshal(promptsYAML, &raw); err != nil {
		panic(fmt.Sprintf("invalid embedded prompts.yaml: %v", err))
	}

	out := make([]rule, 0, len(raw.Categories))
	for _, c := range raw.Categories {
		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			keywords = append(keywords, strings.ToLower(kw))
		}
		out = append(out, rule{
			Category: Category(c.Name),
			Keywords: keywords,
			LeadIn:   c.LeadIn,
		})
	}
	return out
}

// Classify assigns an intent category via case-insensitive substring
// matching. Rules are evaluated in table order and the first matching
// category wins, so code beats create beats question beats file. Falls
// through to general when nothing matches.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Category
			}
		}
	}
	return CategoryGeneral
}

// Keywords returns the keyword set for a category so tests and admin
// tooling can enumerate the table directly.
func Keywords(category Category) []string {
	for _, r := range rules {
		if r.Category == category {
			return append([]string(nil), r.Keywords...)
		}
	}
	return nil
}

func leadInFor(category Category) string {
	for _, r := range rules {
		if r.Category == category {
			return r.LeadIn
		}
	}
	return leadInFor(CategoryGeneral)
}
