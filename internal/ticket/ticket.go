// Package ticket holds the support-ticket model shared by the classifier,
// topic discovery, and reporting layers, plus the CSV dataset loader.
package ticket

// Intent is the keyword-derived classification of a ticket.
type Intent string

const (
	IntentMembershipCancellation Intent = "Membership Cancellation"
	IntentPasswordReset          Intent = "Password Reset / Login Issue"
	IntentRefundRequest          Intent = "Refund Request"
	IntentBillingInquiry         Intent = "Billing Inquiry"
	IntentUpdatePayment          Intent = "Update Payment Method"
	IntentTechnicalIssue         Intent = "Technical Issue"
	IntentStoreHours             Intent = "Store Hours/Location Inquiry"
	IntentGeneralQuestion        Intent = "General Question"
	IntentPlanChange             Intent = "Plan Change Request"
	IntentProductFeature         Intent = "Product/Feature Request"
	IntentOther                  Intent = "Other"
)

// Tier is the automation feasibility category assigned once the intent is
// known.
type Tier string

const (
	TierFullAutomation  Tier = "Full Automation"
	TierAgenticWorkflow Tier = "Agentic Workflow"
	TierHumanInLoop     Tier = "Human-in-the-Loop"
)

// Ticket is one support ticket row. Text is derived at load time and is the
// only field the classifiers inspect.
type Ticket struct {
	Subject          string
	Description      string
	ReasonForContact string
	Type             string

	Text   string // lowercased Subject + " " + Description
	Intent Intent
	Tier   Tier
}
