package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/fysioscribe/dcsph-engine/internal/config"
	"github.com/fysioscribe/dcsph-engine/internal/conversation"
	"github.com/fysioscribe/dcsph-engine/internal/llm"
	"github.com/fysioscribe/dcsph-engine/internal/memory"
	"github.com/fysioscribe/dcsph-engine/internal/resolver"
)

// #region main

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CLI] load .env: %v", err)
	}
	cfg := config.Load()

	var generator llm.Generator
	if cfg.ModelAPIKey != "" {
		client, err := llm.NewClient(cfg.ModelAPIKey, cfg.ModelName, llm.WithBaseURL(cfg.ModelBaseURL))
		if err != nil {
			log.Fatalf("build model client: %v", err)
		}
		generator = client
	} else {
		// Without a key every attempt fails fast and the knowledge
		// base answers, which makes the CLI usable offline.
		generator = &llm.Fake{Err: errors.New("no model configured")}
		fmt.Println("Geen DCSPH_MODEL_API_KEY gezet; alleen de kennisbank wordt gebruikt.")
	}

	ledger, err := memory.Open(cfg.LedgerPath)
	if err != nil {
		log.Fatalf("open ledger %s: %v", cfg.LedgerPath, err)
	}
	defer ledger.Close()

	conversations := conversation.NewStore(nil)
	orchestrator := resolver.New(generator, conversations, ledger, resolver.Options{
		FallbackDiscount: cfg.FallbackDiscount,
		EnrichmentBoost:  cfg.EnrichmentBoost,
		RetryBackoffBase: cfg.RetryBackoffBase,
	})

	fmt.Println("DCSPH-resolver klaar.")
	fmt.Println("Beschrijf een klacht (of 'quit' om te stoppen):")

	scanner := bufio.NewScanner(os.Stdin)
	conversationID := ""

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "quit" || query == "exit" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		res, err := orchestrator.Resolve(ctx, query, conversationID)
		cancel()
		if err != nil {
			var re *resolver.Error
			if errors.As(err, &re) && re.Code == resolver.CodeClarificationBudget {
				fmt.Println("Maximum aantal verduidelijkingsvragen bereikt; begin een nieuwe klacht.")
				conversationID = ""
				continue
			}
			log.Printf("resolve error: %v", err)
			conversationID = ""
			continue
		}

		if res.NeedsClarification {
			fmt.Printf("\n%s\n\n", res.ClarifyingQuestion)
			conversationID = res.ConversationID
			continue
		}

		fmt.Println()
		for i, s := range res.Suggestions {
			fmt.Printf("%d. %s  %s  (%.0f%%)\n   %s\n", i+1, s.Code.Code, s.Code.FullDescription, s.Confidence*100, s.Rationale)
		}
		fmt.Printf("\n[bron: %s]\n\n", res.Source)
		conversationID = ""
	}
}

// #endregion
