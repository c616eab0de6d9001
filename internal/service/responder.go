package service

import (
	"fmt"
	"strings"
	"unicode"

	"company-ai/internal/models"

	"go.uber.org/zap"
)

// Tier identifies which stage of the matcher produced an answer.
type Tier int

const (
	TierExactPhrase Tier = iota + 1
	TierKeyword
	TierCompanyName
	TierProduct
	TierIntent
)

func (t Tier) String() string {
	switch t {
	case TierExactPhrase:
		return "exact_phrase"
	case TierKeyword:
		return "keyword"
	case TierCompanyName:
		return "company_name"
	case TierProduct:
		return "product"
	case TierIntent:
		return "intent"
	default:
		return "unknown"
	}
}

// KeywordMatch selects how a trigger word is compared with the input in
// the keyword tier.
type KeywordMatch string

const (
	// KeywordMatchWord requires the trigger word to equal one of the input words.
	KeywordMatchWord KeywordMatch = "word"
	// KeywordMatchSubstring accepts the trigger word anywhere in the input,
	// including inside longer words.
	KeywordMatchSubstring KeywordMatch = "substring"
)

// ParseKeywordMatch maps a config value to a KeywordMatch, defaulting to word.
func ParseKeywordMatch(s string) (KeywordMatch, error) {
	switch KeywordMatch(strings.ToLower(strings.TrimSpace(s))) {
	case "", KeywordMatchWord:
		return KeywordMatchWord, nil
	case KeywordMatchSubstring:
		return KeywordMatchSubstring, nil
	default:
		return KeywordMatchWord, fmt.Errorf("unknown keyword match mode %q", s)
	}
}

// Match is the outcome of Respond. RuleID names the rule, product or
// intent that fired.
type Match struct {
	Answer string
	Tier   Tier
	RuleID string
}

type intentGroup struct {
	id       string
	words    []string
	template func(p models.OrganizationProfile) string
}

var intentGroups = []intentGroup{
	{
		id:    "intent:greeting",
		words: []string{"hello", "hi", "hey"},
		template: func(p models.OrganizationProfile) string {
			return fmt.Sprintf("Hello! Welcome to %s. I'm here to help you learn about our company, products, and services. How can I assist you today?", p.Name)
		},
	},
	{
		id:    "intent:help",
		words: []string{"help", "assist", "support"},
		template: func(p models.OrganizationProfile) string {
			return fmt.Sprintf("I can help you with information about %s, including our products, services, company history, and how to contact us. What would you like to know?", p.Name)
		},
	},
	{
		id:    "intent:thanks",
		words: []string{"thank", "thanks"},
		template: func(models.OrganizationProfile) string {
			return "You're welcome! I'm happy to help. Is there anything else you'd like to know about our company?"
		},
	},
}

// Responder maps free text to exactly one canned answer. It only reads
// its KnowledgeBase and is safe for concurrent use.
type Responder struct {
	profile models.OrganizationProfile
	rules   []models.QuestionRule
	words   [][]string
	mode    KeywordMatch
	logger  *zap.Logger
}

func NewResponder(kb *KnowledgeBase, mode KeywordMatch, logger *zap.Logger) *Responder {
	if mode == "" {
		mode = KeywordMatchWord
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	rules := kb.Rules()
	words := make([][]string, len(rules))
	for i, r := range rules {
		words[i] = splitWords(r.Trigger, mode)
	}
	return &Responder{
		profile: kb.Profile(),
		rules:   rules,
		words:   words,
		mode:    mode,
		logger:  logger,
	}
}

// Respond evaluates the tiers in order and returns the first hit. The
// final intent tier always answers, so the result is never empty.
func (r *Responder) Respond(input string) Match {
	text := strings.ToLower(strings.TrimSpace(input))

	m := r.match(text, r.profile)
	r.logger.Debug("Responder matched",
		zap.String("tier", m.Tier.String()),
		zap.String("rule", m.RuleID),
	)
	return m
}

func (r *Responder) match(text string, profile models.OrganizationProfile) Match {
	for _, rule := range r.rules {
		if strings.Contains(text, rule.Trigger) {
			return Match{Answer: rule.Answer, Tier: TierExactPhrase, RuleID: rule.ID}
		}
	}

	inputWords := wordSet(text)
	for i, rule := range r.rules {
		if r.keywordHit(text, inputWords, r.words[i]) {
			return Match{Answer: rule.Answer, Tier: TierKeyword, RuleID: rule.ID}
		}
	}

	if name := strings.ToLower(profile.Name); name != "" && strings.Contains(text, name) {
		return Match{
			Answer: fmt.Sprintf("Yes, %s is our company. %s", profile.Name, profile.Mission),
			Tier:   TierCompanyName,
			RuleID: "company_name",
		}
	}

	for _, product := range profile.Products {
		fields := strings.Fields(product)
		if len(fields) == 0 {
			continue
		}
		if strings.Contains(text, strings.ToLower(fields[0])) {
			return Match{
				Answer: fmt.Sprintf("%s is one of our flagship products. It's designed to help our customers achieve their goals.", product),
				Tier:   TierProduct,
				RuleID: "product:" + fields[0],
			}
		}
	}

	for _, group := range intentGroups {
		for _, w := range group.words {
			if strings.Contains(text, w) {
				return Match{Answer: group.template(profile), Tier: TierIntent, RuleID: group.id}
			}
		}
	}

	return Match{
		Answer: fmt.Sprintf("I'm not sure about that specific question, but I'd be happy to tell you about %s. You can ask me about our products, services, company values, or how to contact us. What interests you?", profile.Name),
		Tier:   TierIntent,
		RuleID: "intent:unknown",
	}
}

func (r *Responder) keywordHit(text string, inputWords map[string]struct{}, triggerWords []string) bool {
	for _, w := range triggerWords {
		if r.mode == KeywordMatchSubstring {
			if strings.Contains(text, w) {
				return true
			}
			continue
		}
		if _, ok := inputWords[w]; ok {
			return true
		}
	}
	return false
}

// splitWords tokenizes a trigger. Substring mode keeps whitespace tokens
// as-is; word mode splits on anything that is not a letter or digit so
// punctuation never blocks a match.
func splitWords(s string, mode KeywordMatch) []string {
	if mode == KeywordMatchSubstring {
		return strings.Fields(s)
	}
	return strings.FieldsFunc(s, isWordSeparator)
}

func wordSet(text string) map[string]struct{} {
	words := strings.FieldsFunc(text, isWordSeparator)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func isWordSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
