package service

import (
	"fmt"
	"strings"

	"company-ai/internal/models"
)

// KnowledgeBase holds the organization profile and the ordered rule list.
// It is never mutated after NewKnowledgeBase returns, so it can be shared
// between request goroutines without locking.
type KnowledgeBase struct {
	profile models.OrganizationProfile
	rules   []models.QuestionRule
}

// DefaultProfile is used when no company profile is configured.
func DefaultProfile() models.OrganizationProfile {
	return models.OrganizationProfile{
		Name:     "Your Company Name",
		Industry: "Your Industry",
		Founded:  "2020",
		Mission:  "To provide innovative solutions to our customers",
		Products: []string{
			"Product A - Description of what it does",
			"Product B - Description of what it does",
			"Product C - Description of what it does",
		},
		Services: []string{
			"Service 1 - What it provides",
			"Service 2 - What it provides",
		},
		Values: []string{
			"Innovation",
			"Customer Focus",
			"Quality",
			"Integrity",
		},
		Contact: models.Contact{
			Email:   "info@yourcompany.com",
			Phone:   "+1-555-0123",
			Website: "https://yourcompany.com",
		},
	}
}

// NewKnowledgeBase derives the built-in rules from profile and appends
// custom in the given order. Duplicated triggers are kept; the earlier
// rule wins at match time.
func NewKnowledgeBase(profile models.OrganizationProfile, custom []models.QuestionRule) *KnowledgeBase {
	profile = cloneProfile(profile)

	rules := builtinRules(profile)
	for i, r := range custom {
		trigger := NormalizeTrigger(r.Trigger)
		if trigger == "" || r.Answer == "" {
			continue
		}
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("custom:%d", i)
		}
		rules = append(rules, models.QuestionRule{
			ID:      id,
			Source:  models.RuleSourceCustom,
			Trigger: trigger,
			Answer:  r.Answer,
		})
	}

	return &KnowledgeBase{
		profile: profile,
		rules:   rules,
	}
}

// Rules returns a copy of the rules in match order.
func (kb *KnowledgeBase) Rules() []models.QuestionRule {
	out := make([]models.QuestionRule, len(kb.rules))
	copy(out, kb.rules)
	return out
}

// Profile returns a copy of the organization profile.
func (kb *KnowledgeBase) Profile() models.OrganizationProfile {
	return cloneProfile(kb.profile)
}

// CustomRules converts configured question/answer pairs into rules,
// numbering them from offset so ids stay unique across sources.
func CustomRules(pairs []models.CustomQA, offset int) []models.QuestionRule {
	rules := make([]models.QuestionRule, 0, len(pairs))
	for i, p := range pairs {
		rules = append(rules, models.QuestionRule{
			ID:      fmt.Sprintf("custom:%d", offset+i),
			Source:  models.RuleSourceCustom,
			Trigger: p.Question,
			Answer:  p.Answer,
		})
	}
	return rules
}

// NormalizeTrigger lowercases s and collapses whitespace runs to one space.
func NormalizeTrigger(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func builtinRules(p models.OrganizationProfile) []models.QuestionRule {
	topics := []struct {
		id      string
		trigger string
		answer  string
	}{
		{
			id:      "company",
			trigger: "what does your company do",
			answer:  fmt.Sprintf("We are %s, a company in the %s industry. %s", p.Name, p.Industry, p.Mission),
		},
		{
			id:      "products",
			trigger: "what are your products",
			answer:  "Our main products include: " + strings.Join(p.Products, ", "),
		},
		{
			id:      "services",
			trigger: "what services do you offer",
			answer:  "We offer: " + strings.Join(p.Services, ", "),
		},
		{
			id:      "values",
			trigger: "what are your company values",
			answer:  "Our core values are: " + strings.Join(p.Values, ", "),
		},
		{
			id:      "contact",
			trigger: "how can I contact you",
			answer: fmt.Sprintf("You can reach us at %s, call %s, or visit %s",
				p.Contact.Email, p.Contact.Phone, p.Contact.Website),
		},
		{
			id:      "founded",
			trigger: "when was your company founded",
			answer:  "Our company was founded in " + p.Founded,
		},
		{
			id:      "industry",
			trigger: "what industry are you in",
			answer:  fmt.Sprintf("We operate in the %s industry", p.Industry),
		},
	}

	rules := make([]models.QuestionRule, 0, len(topics))
	for _, t := range topics {
		rules = append(rules, models.QuestionRule{
			ID:      "builtin:" + t.id,
			Source:  models.RuleSourceBuiltin,
			Trigger: NormalizeTrigger(t.trigger),
			Answer:  t.answer,
		})
	}
	return rules
}

func cloneProfile(p models.OrganizationProfile) models.OrganizationProfile {
	p.Products = append([]string(nil), p.Products...)
	p.Services = append([]string(nil), p.Services...)
	p.Values = append([]string(nil), p.Values...)
	if p.Team != nil {
		team := *p.Team
		team.Locations = append([]string(nil), team.Locations...)
		team.Specialties = append([]string(nil), team.Specialties...)
		p.Team = &team
	}
	return p
}
