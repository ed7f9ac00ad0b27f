package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fysioscribe/dcsph-engine/internal/memory"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the resolution ledger db")
	last := flag.Int("last", 20, "show N most recent outcomes")
	conversationID := flag.String("conversation", "", "show the decision trail of one conversation")
	stats := flag.Bool("stats", false, "show acceptance stats per source")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/dcsph_outcomes.db [--last N] [--conversation id] [--stats] [--json]")
		os.Exit(2)
	}

	ledger, err := memory.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer ledger.Close()

	switch {
	case *stats:
		err = runStats(ledger, *jsonOut)
	case *conversationID != "":
		err = runDecisions(ledger, *conversationID, *jsonOut)
	default:
		err = runOutcomes(ledger, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region outcomes

func runOutcomes(ledger *memory.Ledger, last int, jsonOut bool) error {
	outcomes, err := ledger.RecentOutcomes(last)
	if err != nil {
		return err
	}
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(outcomes)
	}
	fmt.Printf("%-36s  %-9s  %-3s  %-8s  %-5s  %-5s  %s\n",
		"CONVERSATION", "SOURCE", "ATT", "ACCEPTED", "SCORE", "CONF", "QUERY")
	for _, o := range outcomes {
		accepted := "no"
		if o.Accepted {
			accepted = "yes"
		}
		fmt.Printf("%-36s  %-9s  %-3d  %-8s  %.2f  %.2f  %s\n",
			o.ConversationID, o.Source, o.AttemptNum, accepted,
			o.ValidationScore, o.Confidence, truncate(o.Query, 40))
	}
	return nil
}

// #endregion outcomes

// #region decisions

func runDecisions(ledger *memory.Ledger, conversationID string, jsonOut bool) error {
	decisions, err := ledger.ConversationDecisions(conversationID)
	if err != nil {
		return err
	}
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(decisions)
	}
	if len(decisions) == 0 {
		fmt.Println("no decisions recorded for this conversation")
		return nil
	}
	for _, d := range decisions {
		fmt.Printf("%s  %-14s  %s\n", d.CreatedAt.Format("15:04:05"), d.Decision, d.Detail)
	}
	return nil
}

// #endregion decisions

// #region stats

func runStats(ledger *memory.Ledger, jsonOut bool) error {
	stats, err := ledger.SourceStats()
	if err != nil {
		return err
	}
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(stats)
	}
	fmt.Printf("%-10s  %-6s  %-8s  %-10s  %s\n", "SOURCE", "COUNT", "ACCEPTED", "MEAN SCORE", "MEAN CONF")
	for _, s := range stats {
		fmt.Printf("%-10s  %-6d  %-8d  %-10.2f  %.2f\n", s.Source, s.Count, s.Accepted, s.MeanScore, s.MeanConfidence)
	}
	return nil
}

// #endregion stats

// #region helpers

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// #endregion helpers
