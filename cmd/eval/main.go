package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fysioscribe/dcsph-engine/internal/eval"
)

// #region main

func main() {
	fixturePath := flag.String("fixtures", "", "path to a fixture JSON file (default: built-in set)")
	jsonOut := flag.Bool("json", false, "output the report as JSON")
	flag.Parse()

	fixtures := eval.DefaultFixtures()
	if *fixturePath != "" {
		loaded, err := loadFixtures(*fixturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load fixtures: %v\n", err)
			os.Exit(1)
		}
		fixtures = loaded
	}

	report := eval.NewHarness().Run(fixtures)

	if *jsonOut {
		if err := json.NewEncoder(os.Stdout).Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "encode report: %v\n", err)
			os.Exit(1)
		}
	} else {
		for _, c := range report.Cases {
			mark := "PASS"
			if !c.Pass {
				mark = "FAIL"
			}
			fmt.Printf("%-4s  %-24s", mark, c.Name)
			if c.Reason != "" {
				fmt.Printf("  %s", c.Reason)
			}
			fmt.Println()
		}
		fmt.Printf("\n%d/%d fixtures passed\n", report.Passed, report.Total)
	}

	if report.Passed != report.Total {
		os.Exit(1)
	}
}

// #endregion main

// #region load

func loadFixtures(path string) ([]eval.Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixtures []eval.Fixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%s contains no fixtures", path)
	}
	return fixtures, nil
}

// #endregion load
