// Package blueprint provides the static automation copy the report prints
// for each intent: how a fully automatable intent would be served, the
// step-by-step workflow for agentic intents, and the escalation story for
// everything routed to a human.
package blueprint

import (
	"fmt"
	"strings"

	"triage/internal/ticket"
)

// Automation type labels for fully automatable intents.
const (
	KindDataLookup = "Simple data lookup via API"
	KindKnowledge  = "RAG from knowledge base"
)

// dataLookupIntents answer from live account data; every other fully
// automatable intent answers from the knowledge base.
var dataLookupIntents = map[ticket.Intent]bool{
	ticket.IntentPasswordReset:  true,
	ticket.IntentBillingInquiry: true,
}

// FullAutomationKind returns the automation type label for a fully
// automatable intent.
func FullAutomationKind(intent ticket.Intent) string {
	if dataLookupIntents[intent] {
		return KindDataLookup
	}
	return KindKnowledge
}

// agenticSteps is the fixed multi-step workflow per agentic intent.
var agenticSteps = map[ticket.Intent][]string{
	ticket.IntentRefundRequest: {
		"Get user account ID",
		"Look up transaction history",
		"Check against refund policy",
		"Process via API or flag for approval",
	},
	ticket.IntentMembershipCancellation: {
		"Confirm user identity",
		"Present retention offer (optional)",
		"Process cancellation via API",
		"Send confirmation email",
	},
	ticket.IntentUpdatePayment: {
		"Authenticate user",
		"Provide secure link to payment portal",
		"Confirm update via API",
		"Notify user of success",
	},
}

// AgenticWorkflow returns the numbered workflow line for an agentic intent,
// e.g. "1. Authenticate user -> 2. ... -> 4. Notify user of success." and
// false when the intent has no scripted workflow.
func AgenticWorkflow(intent ticket.Intent) (string, bool) {
	steps, ok := agenticSteps[intent]
	if !ok {
		return "", false
	}
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return strings.Join(parts, " -> ") + ".", true
}

// HumanCharacteristics lists what routes a ticket past automation entirely.
func HumanCharacteristics() []string {
	return []string{
		"Contains high-sentiment keywords (e.g., 'angry', 'legal', 'frustrated').",
		"Intent is uncategorized ('Other').",
		"Involves multiple, layered issues within a single ticket.",
	}
}

// Layer is one tier of the proposed assistant architecture.
type Layer struct {
	Name  string
	Lines []string
}

// Architecture returns the three-layer system proposal printed at the end
// of the analysis report.
func Architecture() []Layer {
	return []Layer{
		{
			Name: "Layer 1: The AI Triage Engine",
			Lines: []string{
				"An AI model receives every ticket via API. It performs semantic analysis on the subject/description to determine the 'True Intent' and checks for high-sentiment keywords. It then assigns the ticket to one of the three categories (Full Automation, Agentic, Human).",
			},
		},
		{
			Name: "Layer 2: The Automation Toolkit",
			Lines: []string{
				"A collection of specialized AI agents, each designed for a specific task:",
				"    * `KnowledgeBot`: Handles 'General Question' and 'Store Hours' by performing RAG on a knowledge base of company policies and information.",
				"    * `UserAccountAgent`: Manages 'Password Reset' and 'Update Payment Method' by interacting with user account APIs.",
				"    * `BillingAgent`: Handles 'Billing Inquiry' and 'Refund Request' workflows by securely accessing billing systems and Stripe/payment processor APIs.",
				"    * `MembershipAgent`: Manages 'Membership Cancellation' and 'Plan Change' requests via API integration.",
			},
		},
		{
			Name: "Layer 3: The Human Escalation Protocol",
			Lines: []string{
				"When the Triage Engine flags a ticket for a human, it doesn't just forward it. It pre-packages it for 10x faster resolution:",
				"    1.  **Summarization:** The AI generates a one-sentence summary of the issue.",
				"    2.  **Data Pre-fetch:** It fetches the customer's account details, order history, and previous support interactions.",
				"    3.  **Contextualization:** It identifies the core issue (e.g., 'High-Sentiment Billing Dispute') and pulls up the relevant internal policy document.",
				"    4.  **Smart Routing:** The ticket is routed to the correct human queue (e.g., Tier 2 Support, Billing Department, Leadership).",
			},
		},
	}
}
