package report

import (
	"strings"
	"testing"

	"triage/internal/tables"
	"triage/internal/ticket"
	"triage/internal/topics"
)

func analysisFixture() *Stats {
	var tickets []ticket.Ticket
	add := func(n int, intent ticket.Intent, tier ticket.Tier, reason, typ string) {
		for i := 0; i < n; i++ {
			tickets = append(tickets, ticket.Ticket{
				Intent: intent, Tier: tier,
				ReasonForContact: reason, Type: typ,
			})
		}
	}
	add(3, ticket.IntentPasswordReset, ticket.TierFullAutomation, "Account Access", "Problem")
	add(2, ticket.IntentRefundRequest, ticket.TierAgenticWorkflow, "Billing", "Problem")
	add(3, ticket.IntentOther, ticket.TierHumanInLoop, "Misc", "Question")
	return Compute(tickets)
}

func TestRender_Sections(t *testing.T) {
	out := Render(analysisFixture(), Options{Mode: tables.Markdown})

	for _, want := range []string{
		"AI Support Ticket Automation Analysis",
		"### 1. Executive Summary",
		"### 2. Ticket Anatomy & Triage Analysis",
		"### 3. Automation Blueprint",
		"### 4. Proposed AI System Architecture",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRender_Summary(t *testing.T) {
	out := Render(analysisFixture(), Options{Mode: tables.Markdown})

	// 5 of 8 tickets are automatable.
	for _, want := range []string{
		"**Automatable Potential:** **62.5%**",
		"* **Fully Automatable:** 3 tickets",
		"* **Partially Automatable (Agentic):** 2 tickets",
		"1. **Password Reset / Login Issue** (3 tickets)",
		"2. **Refund Request** (2 tickets)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestRender_Tables(t *testing.T) {
	out := Render(analysisFixture(), Options{Mode: tables.Markdown})

	for _, want := range []string{
		"**Top 10 Reasons for Contact (by Volume):**",
		"**Top 10 Ticket Types (by Volume):**",
		"**Semantic Intent Clustering (True Intent):**",
		"| Reason for Contact",
		"| Account Access",
		"| TOTAL",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("anatomy section missing %q", want)
		}
	}
}

func TestRender_TopNFlag(t *testing.T) {
	out := Render(analysisFixture(), Options{Mode: tables.Markdown, TopN: 2})

	if !strings.Contains(out, "**Top 2 Reasons for Contact (by Volume):**") {
		t.Error("TopN not reflected in section heading")
	}
	if strings.Contains(out, "| Misc") {
		t.Error("third reason should be trimmed by TopN=2")
	}
}

func TestRender_Blueprint(t *testing.T) {
	out := Render(analysisFixture(), Options{Mode: tables.Markdown})

	for _, want := range []string{
		"**Category 1: Full Automation Candidates (Low-Hanging Fruit)**",
		"    * **Automation Type:** Simple data lookup via API",
		"**Category 2: Agentic Workflow Candidates (Multi-Step Processes)**",
		"    * **AI Workflow:** 1. Get user account ID -> 2. Look up transaction history -> 3. Check against refund policy -> 4. Process via API or flag for approval.",
		"**Category 3: Human-in-the-Loop (Complex/High-Sentiment)**",
		"    * Intent is uncategorized ('Other').",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("blueprint section missing %q", want)
		}
	}
}

func TestRender_Architecture(t *testing.T) {
	out := Render(analysisFixture(), Options{Mode: tables.Markdown})

	for _, want := range []string{
		"**Layer 1: The AI Triage Engine**",
		"**Layer 2: The Automation Toolkit**",
		"    * `KnowledgeBot`:",
		"**Layer 3: The Human Escalation Protocol**",
		"    4.  **Smart Routing:**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("architecture section missing %q", want)
		}
	}
}

func TestRender_ASCIIMode(t *testing.T) {
	out := Render(analysisFixture(), Options{Mode: tables.ASCII})

	if !strings.Contains(out, "─") {
		t.Error("ASCII mode should render box-drawing tables")
	}
	if strings.Contains(out, "| Intent") {
		t.Error("ASCII mode should not emit markdown table rows")
	}
}

func TestRender_NoTickets(t *testing.T) {
	out := Render(Compute(nil), Options{Mode: tables.Markdown})

	if !strings.Contains(out, "**Automatable Potential:** **0.0%**") {
		t.Error("empty input should render a 0.0% potential, not panic")
	}
}

func TestRenderTopics(t *testing.T) {
	res := &topics.Result{
		Topics: []topics.Summary{
			{Topic: 0, Count: 12, Keywords: []string{"gym", "class", "trainer"}},
			{Topic: 3, Count: 5, Keywords: []string{"app"}},
		},
	}

	out := RenderTopics(res)

	for _, want := range []string{
		"Discovered 2 Topics in the 'Other' Category",
		"## Topic #1 (12 tickets)",
		"   -> Keywords: gym, class, trainer",
		"## Topic #4 (5 tickets)",
		"   -> Your Suggested Name: _________",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("topics report missing %q", want)
		}
	}
}
