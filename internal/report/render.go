package report

import (
	"fmt"
	"strings"

	"triage/internal/blueprint"
	"triage/internal/tables"
	"triage/internal/ticket"
	"triage/internal/topics"
)

// Options controls report rendering.
type Options struct {
	Mode tables.Mode
	TopN int // rows in the reason/type tables; <= 0 means 10
}

const defaultTopN = 10

// Render produces the full four-section analysis report.
func Render(st *Stats, opts Options) string {
	n := opts.TopN
	if n <= 0 {
		n = defaultTopN
	}

	var b strings.Builder
	b.WriteString("=========================================================\n")
	b.WriteString("      AI Support Ticket Automation Analysis\n")
	b.WriteString("=========================================================\n\n")

	renderSummary(&b, st)
	renderAnatomy(&b, st, opts.Mode, n)
	renderBlueprint(&b, st)
	renderArchitecture(&b)
	return b.String()
}

func renderSummary(b *strings.Builder, st *Stats) {
	b.WriteString("### 1. Executive Summary\n\n")
	automatable := st.FullAutomation + st.AgenticWorkflow
	fmt.Fprintf(b, "* **Automatable Potential:** **%s** of all support tickets are realistically automatable (fully or partially).\n",
		tables.Pct(automatable, st.Total))
	fmt.Fprintf(b, "  * **Fully Automatable:** %d tickets\n", st.FullAutomation)
	fmt.Fprintf(b, "  * **Partially Automatable (Agentic):** %d tickets\n\n", st.AgenticWorkflow)
	b.WriteString("* **Top 3 Automation Opportunities (80/20 Rule):**\n")
	for i, c := range firstN(st.AutomatableIntents, 3) {
		fmt.Fprintf(b, "  %d. **%s** (%d tickets)\n", i+1, c.Value, c.N)
	}
}

func renderAnatomy(b *strings.Builder, st *Stats, mode tables.Mode, n int) {
	b.WriteString("\n### 2. Ticket Anatomy & Triage Analysis\n\n")
	fmt.Fprintf(b, "**Top %d Reasons for Contact (by Volume):**\n", n)
	b.WriteString(countTable(mode, "Reason for Contact", firstN(st.ReasonCounts, n)))
	fmt.Fprintf(b, "\n\n**Top %d Ticket Types (by Volume):**\n", n)
	b.WriteString(countTable(mode, "Ticket Type", firstN(st.TypeCounts, n)))
	b.WriteString("\n\n**Semantic Intent Clustering (True Intent):**\n")
	b.WriteString(intentTable(mode, st))
	b.WriteString("\n")
}

func countTable(mode tables.Mode, label string, counts []Count) string {
	tb := tables.New(mode)
	tb.Header(label, "Count")
	for _, c := range counts {
		tb.Row(c.Value, c.N)
	}
	tb.Columns(tables.Column{Number: 2, Align: tables.AlignRight})
	return tb.String()
}

func intentTable(mode tables.Mode, st *Stats) string {
	tb := tables.New(mode)
	tb.Header("Intent", "Count")
	for _, c := range st.IntentCounts {
		tb.Row(c.Value, c.N)
	}
	tb.Footer("TOTAL", st.Total)
	tb.Columns(tables.Column{Number: 2, Align: tables.AlignRight})
	return tb.String()
}

func renderBlueprint(b *strings.Builder, st *Stats) {
	b.WriteString("\n### 3. Automation Blueprint\n\n")

	b.WriteString("**Category 1: Full Automation Candidates (Low-Hanging Fruit)**\n")
	b.WriteString("* These are repetitive, rule-based tickets that can be resolved instantly by an AI.\n")
	for _, c := range firstN(st.FullAutoIntents, 5) {
		fmt.Fprintf(b, "* **%s** (%d tickets)\n", c.Value, c.N)
		fmt.Fprintf(b, "    * **Automation Type:** %s\n", blueprint.FullAutomationKind(ticket.Intent(c.Value)))
	}

	b.WriteString("\n**Category 2: Agentic Workflow Candidates (Multi-Step Processes)**\n")
	b.WriteString("* These tickets require a sequence of actions, data gathering, and decision-making.\n")
	for _, c := range firstN(st.AgenticIntents, 3) {
		fmt.Fprintf(b, "* **%s** (%d tickets)\n", c.Value, c.N)
		if line, ok := blueprint.AgenticWorkflow(ticket.Intent(c.Value)); ok {
			fmt.Fprintf(b, "    * **AI Workflow:** %s\n", line)
		}
	}

	b.WriteString("\n**Category 3: Human-in-the-Loop (Complex/High-Sentiment)**\n")
	b.WriteString("* These tickets are too complex, emotionally charged, or novel for full automation. The AI's job is to prep the ticket for a human.\n")
	b.WriteString("* **Key Characteristics:**\n")
	for _, line := range blueprint.HumanCharacteristics() {
		fmt.Fprintf(b, "    * %s\n", line)
	}
}

func renderArchitecture(b *strings.Builder) {
	b.WriteString("\n### 4. Proposed AI System Architecture\n\n")
	for i, layer := range blueprint.Architecture() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "**%s**\n", layer.Name)
		for _, line := range layer.Lines {
			if strings.HasPrefix(line, " ") {
				fmt.Fprintf(b, "%s\n", line)
			} else {
				fmt.Fprintf(b, "* %s\n", line)
			}
		}
	}
}

// RenderTopics produces the topic discovery report over the residual
// uncategorized tickets.
func RenderTopics(res *topics.Result) string {
	var b strings.Builder
	b.WriteString("================================================================\n")
	fmt.Fprintf(&b, "      Discovered %d Topics in the 'Other' Category\n", len(res.Topics))
	b.WriteString("================================================================\n\n")
	for _, s := range res.Topics {
		fmt.Fprintf(&b, "## Topic #%d (%d tickets)\n", s.Topic+1, s.Count)
		fmt.Fprintf(&b, "   -> Keywords: %s\n", strings.Join(s.Keywords, ", "))
		b.WriteString("   -> Your Suggested Name: _________________________________\n\n")
	}
	return b.String()
}
