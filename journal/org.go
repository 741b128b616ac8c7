package journal

import (
	"fmt"
	"strings"
)

// FormatOpenOrg renders an open trade as an Org-mode block: structured facts
// in a PROPERTIES drawer, free text below it.
func FormatOpenOrg(t OpenTrade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** %s  #%d\n", t.Stock, t.ID)
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %d\n", t.ID)
	fmt.Fprintf(&b, ":STOCK: %s\n", t.Stock)
	fmt.Fprintf(&b, ":ENTRY: %.2f\n", t.EntryPrice)
	fmt.Fprintf(&b, ":TARGET: %.2f\n", t.TargetPrice)
	fmt.Fprintf(&b, ":STOP: %.2f\n", t.StopLoss)
	fmt.Fprintf(&b, ":VOLUME: %d\n", t.Volume)
	fmt.Fprintf(&b, ":CONFIDENCE: %d\n", t.Confidence)
	if t.TradeType != "" {
		fmt.Fprintf(&b, ":TYPE: %s\n", t.TradeType)
	}
	if t.Tags != "" {
		fmt.Fprintf(&b, ":TAGS: %s\n", t.Tags)
	}
	if t.Reminder != "" {
		fmt.Fprintf(&b, ":REMINDER: %s\n", t.Reminder)
	}
	fmt.Fprintf(&b, ":OPENED: %s\n", t.OpenedAt.Format(TimeLayout))
	b.WriteString(":END:\n")
	if t.Notes != "" {
		fmt.Fprintf(&b, "- %s\n", t.Notes)
	}
	return b.String()
}

// FormatOpenTradesOrg renders multiple open trades separated by blank lines.
func FormatOpenTradesOrg(trades []OpenTrade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatOpenOrg(t))
	}
	return b.String()
}

// FormatCompletedOrg renders a completed trade as an Org-mode block.
func FormatCompletedOrg(rec CompletedTrade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** %s  %s (%+.2f)\n", rec.Stock, rec.Result, rec.PnL)
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":REF: %s\n", rec.Ref)
	fmt.Fprintf(&b, ":STOCK: %s\n", rec.Stock)
	fmt.Fprintf(&b, ":BUY: %.2f\n", rec.BuyPrice)
	fmt.Fprintf(&b, ":TARGET: %.2f\n", rec.TargetPrice)
	fmt.Fprintf(&b, ":STOP: %.2f\n", rec.StopLoss)
	fmt.Fprintf(&b, ":VOLUME: %d\n", rec.Volume)
	fmt.Fprintf(&b, ":RESULT: %s\n", rec.Result)
	fmt.Fprintf(&b, ":OUTCOME: %.2f\n", rec.OutcomePrice)
	fmt.Fprintf(&b, ":PNL: %.2f\n", rec.PnL)
	fmt.Fprintf(&b, ":CLOSED: %s\n", rec.ClosedAt.Format(TimeLayout))
	b.WriteString(":END:\n")
	return b.String()
}

// FormatCompletedTradesOrg renders the close history separated by blank lines.
func FormatCompletedTradesOrg(recs []CompletedTrade) string {
	var b strings.Builder
	for i, rec := range recs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatCompletedOrg(rec))
	}
	return b.String()
}
