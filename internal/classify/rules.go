// Package classify maps ticket text to intents with an ordered keyword rule
// table and assigns each intent an automation tier. The rules are simple
// substring checks on lowercased text; rule order is the tie-breaker for
// tickets matching more than one rule.
package classify

import (
	"strings"

	"triage/internal/ticket"
)

// rule pairs an intent with the substrings that select it.
type rule struct {
	intent   ticket.Intent
	keywords []string
}

// rules are evaluated top to bottom; the first match wins. The keyword lists
// and their order are fixed taxonomy, not tuning knobs.
var rules = []rule{
	{ticket.IntentMembershipCancellation, []string{"cancel", "cancellation", "unsubscribe", "end my account", "close my account"}},
	{ticket.IntentPasswordReset, []string{"password", "reset", "forgot", "login issue", "can't log in"}},
	{ticket.IntentRefundRequest, []string{"refund", "money back", "reimburse"}},
	{ticket.IntentBillingInquiry, []string{"billing", "charge", "invoice", "overcharged", "double charge"}},
	{ticket.IntentUpdatePayment, []string{"update card", "new card", "payment method", "credit card update"}},
	{ticket.IntentTechnicalIssue, []string{"not working", "error", "issue", "problem", "bug"}},
	{ticket.IntentStoreHours, []string{"hours", "open", "close", "location", "address"}},
	{ticket.IntentGeneralQuestion, []string{"how to", "question", "inquiry", "information"}},
	{ticket.IntentPlanChange, []string{"upgrade", "downgrade", "change plan"}},
	{ticket.IntentProductFeature, []string{"product", "service", "feature request"}},
}

// reducedRules covers only the intents the topic stage carves out before
// modeling the residue; everything else collapses into Other.
var reducedRules = rules[:3]

// Classify returns the intent for pre-lowercased ticket text. Text with no
// matching keyword classifies as Other.
func Classify(text string) ticket.Intent {
	return match(rules, text)
}

// ClassifyReduced classifies with the reduced rule set used to isolate the
// Other bucket for topic discovery.
func ClassifyReduced(text string) ticket.Intent {
	return match(reducedRules, text)
}

func match(rs []rule, text string) ticket.Intent {
	for _, r := range rs {
		if containsAny(text, r.keywords) {
			return r.intent
		}
	}
	return ticket.IntentOther
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
