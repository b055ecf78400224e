// Package chatbot implements the scripted SecureBank assistant.
package chatbot

import (
	"fmt"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Greeting seeds every new transcript.
const Greeting = "Hello! I'm your SecureBank assistant. How can I help you today?"

// DefaultReply is returned when no rule matches.
const DefaultReply = "Thank you for your question. For specific account-related queries, please contact your relationship manager or visit our nearest branch. Is there anything else I can help you with?"

// Rule maps a set of keywords to a canned reply.
type Rule struct {
	Keywords []string
	Reply    string
}

// DefaultRules is evaluated in order; the first rule with a matching keyword wins.
var DefaultRules = []Rule{
	{
		Keywords: []string{"balance", "account"},
		Reply:    `To check your account balance, please navigate to your dashboard or use the "View Accounts" section. For security reasons, I cannot display sensitive information here.`,
	},
	{
		Keywords: []string{"transfer", "payment"},
		Reply:    "For fund transfers and payments, please use the secure transaction portal in your dashboard. You can also visit any branch for assistance.",
	},
	{
		Keywords: []string{"loan", "credit"},
		Reply:    "For loan applications and credit inquiries, please speak with your relationship manager or visit our loan section. They can guide you through the application process.",
	},
	{
		Keywords: []string{"support", "help"},
		Reply:    "I'm here to help! You can also contact our support team at 1-800-SECURE or create a support ticket through your dashboard.",
	},
	{
		Keywords: []string{"kyc", "document"},
		Reply:    `For KYC document submission and status, please check the "KYC Documents" section in your dashboard. You can upload required documents there.`,
	},
}

// Responder picks a reply by case-insensitive substring keyword matching.
// All keywords live in one Aho-Corasick automaton; among the matches found,
// the one belonging to the earliest rule wins.
type Responder struct {
	matcher  *goahocorasick.Machine
	ruleOf   map[string]int
	rules    []Rule
	fallback string
}

// NewResponder builds the automaton for rules.
func NewResponder(rules []Rule, fallback string) (*Responder, error) {
	ruleOf := make(map[string]int)
	for i, rule := range rules {
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				return nil, fmt.Errorf("rule %d: empty keyword", i)
			}
			if _, dup := ruleOf[kw]; !dup {
				ruleOf[kw] = i
			}
		}
	}

	r := &Responder{ruleOf: ruleOf, rules: rules, fallback: fallback}
	if len(ruleOf) == 0 {
		return r, nil
	}

	words := make([]string, 0, len(ruleOf))
	for kw := range ruleOf {
		words = append(words, kw)
	}
	sort.Strings(words)
	patterns := make([][]rune, len(words))
	for i, w := range words {
		patterns[i] = []rune(w)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("build keyword automaton: %w", err)
	}
	r.matcher = m
	return r, nil
}

// Reply returns the reply for text.
func (r *Responder) Reply(text string) string {
	if r.matcher == nil {
		return r.fallback
	}
	content := []rune(strings.ToLower(text))
	if len(content) == 0 {
		return r.fallback
	}

	best := len(r.rules)
	for _, term := range r.matcher.MultiPatternSearch(content, false) {
		if idx, ok := r.ruleOf[string(term.Word)]; ok && idx < best {
			best = idx
		}
	}
	if best == len(r.rules) {
		return r.fallback
	}
	return r.rules[best].Reply
}

var defaultResponder = mustResponder(DefaultRules, DefaultReply)

func mustResponder(rules []Rule, fallback string) *Responder {
	r, err := NewResponder(rules, fallback)
	if err != nil {
		panic(err)
	}
	return r
}

// ComputeReply answers text with the default rule table.
func ComputeReply(text string) string {
	return defaultResponder.Reply(text)
}
