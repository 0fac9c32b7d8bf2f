// Package report aggregates annotated tickets and renders the automation
// analysis and topic discovery output as text with embedded tables.
package report

import (
	"sort"

	"triage/internal/ticket"
)

// Count is one distinct value with its occurrence count.
type Count struct {
	Value string
	N     int
}

// Stats carries everything the renderer needs, pre-aggregated.
type Stats struct {
	Total           int
	FullAutomation  int
	AgenticWorkflow int
	HumanInLoop     int

	IntentCounts       []Count // all tickets by intent, by volume
	ReasonCounts       []Count
	TypeCounts         []Count
	AutomatableIntents []Count // intents of non-human tickets, by volume
	FullAutoIntents    []Count // intents of fully automatable tickets
	AgenticIntents     []Count // intents of agentic tickets
}

// Compute aggregates annotated tickets. All by-volume orderings break ties
// by first appearance in the input.
func Compute(tickets []ticket.Ticket) *Stats {
	st := &Stats{Total: len(tickets)}

	var intents, reasons, types, automatable, fullAuto, agentic []string
	for _, t := range tickets {
		intents = append(intents, string(t.Intent))
		reasons = append(reasons, t.ReasonForContact)
		types = append(types, t.Type)

		switch t.Tier {
		case ticket.TierFullAutomation:
			st.FullAutomation++
			fullAuto = append(fullAuto, string(t.Intent))
			automatable = append(automatable, string(t.Intent))
		case ticket.TierAgenticWorkflow:
			st.AgenticWorkflow++
			agentic = append(agentic, string(t.Intent))
			automatable = append(automatable, string(t.Intent))
		default:
			st.HumanInLoop++
		}
	}

	st.IntentCounts = valueCounts(intents)
	st.ReasonCounts = valueCounts(reasons)
	st.TypeCounts = valueCounts(types)
	st.AutomatableIntents = valueCounts(automatable)
	st.FullAutoIntents = valueCounts(fullAuto)
	st.AgenticIntents = valueCounts(agentic)
	return st
}

// valueCounts tallies values and orders them by count descending; equal
// counts keep first-seen order.
func valueCounts(values []string) []Count {
	pos := make(map[string]int)
	var counts []Count
	for _, v := range values {
		i, ok := pos[v]
		if !ok {
			i = len(counts)
			pos[v] = i
			counts = append(counts, Count{Value: v})
		}
		counts[i].N++
	}
	sort.SliceStable(counts, func(a, b int) bool { return counts[a].N > counts[b].N })
	return counts
}

// firstN returns at most n leading entries; n <= 0 means all.
func firstN(counts []Count, n int) []Count {
	if n > 0 && len(counts) > n {
		return counts[:n]
	}
	return counts
}
