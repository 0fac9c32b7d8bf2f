package classify

import "triage/internal/ticket"

var fullAutomationIntents = map[ticket.Intent]bool{
	ticket.IntentPasswordReset:   true,
	ticket.IntentStoreHours:      true,
	ticket.IntentGeneralQuestion: true,
	ticket.IntentBillingInquiry:  true,
	ticket.IntentPlanChange:      true,
}

var agenticWorkflowIntents = map[ticket.Intent]bool{
	ticket.IntentMembershipCancellation: true,
	ticket.IntentRefundRequest:          true,
	ticket.IntentUpdatePayment:          true,
}

// sentimentKeywords force human handling no matter which tier the intent
// earned. Checked against the full ticket text, not the intent.
var sentimentKeywords = []string{
	"angry", "frustrated", "disappointed", "legal", "lawsuit",
	"complaint", "escalate", "manager", "unresolved",
}

// AssignTier maps an intent plus the original text to an automation tier.
// The sentiment and Other overrides run last and win over any upgrade.
func AssignTier(intent ticket.Intent, text string) ticket.Tier {
	tier := ticket.TierHumanInLoop
	if fullAutomationIntents[intent] {
		tier = ticket.TierFullAutomation
	}
	if agenticWorkflowIntents[intent] {
		tier = ticket.TierAgenticWorkflow
	}
	if containsAny(text, sentimentKeywords) {
		tier = ticket.TierHumanInLoop
	}
	if intent == ticket.IntentOther {
		tier = ticket.TierHumanInLoop
	}
	return tier
}
