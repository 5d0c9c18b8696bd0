// Package coach generates prescriptive feedback cards from session metrics.
// It is a fallback for result files whose summary carries no cards; the
// thresholds mirror the analysis backend's own prescription rules.
package coach

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maastricht-university/ohcr-dashboard/clients"
)

// Rule fires when the named metric falls below the threshold.
type Rule struct {
	Metric string   `yaml:"metric"`
	Below  float64  `yaml:"below"`
	Title  string   `yaml:"title"`
	Why    string   `yaml:"why"`
	How    []string `yaml:"how"`
}

// DefaultRules returns the built-in rule set.
func DefaultRules() []Rule {
	return []Rule{
		{
			Metric: "kc_score",
			Below:  0.4,
			Title:  "Encourage Deeper Concept Linking",
			Why:    "Knowledge construction score is low, meaning teacher and student dialogue didn't go deep enough.",
			How: []string{
				"Prompt students with open-ended 'why' or 'how' questions.",
				"Ask follow-ups that connect current discussion to prior knowledge.",
				"Encourage peer-to-peer questioning.",
			},
		},
		{
			Metric: "student_talk_pct",
			Below:  0.25,
			Title:  "Increase Student Talk Ratio",
			Why:    "Students spoke less than 25% of the total discourse.",
			How: []string{
				"Include student-led reflection rounds.",
				"Ask for multiple viewpoints before summarizing yourself.",
				"Give students short prompts to summarize what was discussed.",
			},
		},
		{
			Metric: "level5_pct",
			Below:  0.15,
			Title:  "Promote Level-5 Discourse",
			Why:    "Very few moments reached evaluative or reflective discourse (Level 5).",
			How: []string{
				"Ask learners to critique an idea or offer alternative perspectives.",
				"Use metacognitive questions like 'What led you to that conclusion?'",
				"Encourage summarizing and contrasting multiple solutions.",
			},
		},
	}
}

// LoadRules reads a YAML rules file. An empty path yields the defaults.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	var rules []Rule
	if err := yaml.Unmarshal(b, &rules); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return rules, nil
}

// Prescribe applies the rules to the metrics and returns a card per fired
// rule, in rule order. Rules naming an unknown metric never fire.
func Prescribe(rules []Rule, m clients.SessionMetrics) []clients.FeedbackCard {
	var cards []clients.FeedbackCard
	for _, r := range rules {
		v, ok := metricValue(r.Metric, m)
		if !ok || v >= r.Below {
			continue
		}
		cards = append(cards, clients.FeedbackCard{Title: r.Title, Why: r.Why, How: r.How})
	}
	return cards
}

func metricValue(name string, m clients.SessionMetrics) (float64, bool) {
	switch name {
	case "kc_score":
		return m.KCScore, true
	case "ohcr_index":
		return m.OHCRIndex, true
	case "avg_hc_depth":
		return m.AvgHCDepth, true
	case "max_hc_depth":
		return m.MaxHCDepth, true
	case "student_talk_pct":
		return m.StudentTalkPct, true
	case "level5_pct":
		return m.Level5Pct, true
	}
	return 0, false
}
