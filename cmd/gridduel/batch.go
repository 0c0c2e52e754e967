package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"sync"

	"gridduel/internal/config"
	"gridduel/internal/grid"
	"gridduel/internal/policy"
)

type Mismatch struct {
	Scenario string `json:"scenario"`
	Want     string `json:"want"`
	Got      string `json:"got"`
	Rule     int    `json:"rule"`
	Reason   string `json:"reason"`
}

type Failure struct {
	Scenario string `json:"scenario"`
	Error    string `json:"error"`
}

type Summary struct {
	Runs       int            `json:"runs"`
	Errors     int            `json:"errors"`
	ByAction   map[string]int `json:"by_action"`
	ByRule     map[string]int `json:"by_rule"`
	Mismatches []Mismatch     `json:"mismatches,omitempty"`
	Failures   []Failure      `json:"failures,omitempty"`
}

// runBatch evaluates every scenario on a pool of workers sharing pol.
// Mismatches and failures are reported in scenario order.
func runBatch(pol *policy.Policy, items []config.Scenario, workers int) Summary {
	if workers < 1 {
		workers = 1
	}
	type result struct {
		d   policy.Decision
		err error
	}
	results := make([]result, len(items))

	var wg sync.WaitGroup
	jobs := make(chan int, len(items))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := items[i]
				d, err := pol.Decide(policy.Input{
					PlayerID: s.Player,
					Board:    s.Board,
					Life:     s.Life,
					Bullets:  s.Bullets,
				})
				results[i] = result{d, err}
			}
		}()
	}
	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sum := Summary{
		Runs:     len(items),
		ByAction: map[string]int{},
		ByRule:   map[string]int{},
	}
	for i, r := range results {
		s := items[i]
		if r.err != nil {
			sum.Errors++
			sum.Failures = append(sum.Failures, Failure{Scenario: s.Name, Error: r.err.Error()})
			continue
		}
		sum.ByAction[string(r.d.Action)]++
		sum.ByRule[strconv.Itoa(r.d.Rule)+":"+r.d.Reason]++
		if s.Expect != "" && s.Expect != string(r.d.Action) {
			sum.Mismatches = append(sum.Mismatches, Mismatch{
				Scenario: s.Name, Want: s.Expect, Got: string(r.d.Action),
				Rule: r.d.Rule, Reason: r.d.Reason,
			})
		}
	}
	return sum
}

func randomScenarios(rng *rand.Rand, n int) []config.Scenario {
	out := make([]config.Scenario, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, config.Scenario{
			Name:    fmt.Sprintf("random-%d", i+1),
			Player:  1 + rng.Intn(2),
			Board:   grid.Random(rng).String(),
			Life:    [2]int{1 + rng.Intn(10), 1 + rng.Intn(10)},
			Bullets: [2]int{rng.Intn(3), rng.Intn(3)},
		})
	}
	return out
}

func marshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
