package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridduel/internal/config"
	"gridduel/internal/grid"
	"gridduel/internal/policy"
	"gridduel/internal/util"
)

func defaultPolicy() *policy.Policy { return policy.New(config.DefaultPolicy(), nil) }

func TestRunSinglePrintsOneLine(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runSingle(&out, &errOut, defaultPolicy(),
		[]string{"1", "1000000000000000000000002", "10", "10", "0", "0"}, false)
	require.NoError(t, err)
	assert.Equal(t, "down\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunSingleMissingPlayer(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runSingle(&out, &errOut, defaultPolicy(),
		[]string{"1", "0000000000002000000000000", "10", "10", "0", "0"}, false)
	require.NoError(t, err)
	assert.Equal(t, "up\n", out.String())
}

func TestRunSingleRender(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runSingle(&out, &errOut, defaultPolicy(),
		[]string{"2", "1000000000000000000000002", "10", "10", "0", "0"}, true)
	require.NoError(t, err)
	assert.Equal(t, "up\n", out.String())
	assert.Contains(t, errOut.String(), "🔵")
	assert.Contains(t, errOut.String(), "🔴")
}

func TestRunSingleBadBoard(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runSingle(&out, &errOut, defaultPolicy(),
		[]string{"1", "10000", "10", "10", "0", "0"}, false)
	assert.ErrorIs(t, err, grid.ErrInvalidBoardFormat)
	assert.Empty(t, out.String())
}

func TestRunBatch(t *testing.T) {
	items := []config.Scenario{
		{Name: "chase", Player: 1, Board: "1000000000000000000000002", Life: [2]int{10, 10}, Expect: "down"},
		{Name: "finish", Player: 1, Board: "1200000000000000000000000", Life: [2]int{10, 1}, Expect: "attack"},
		{Name: "wrong", Player: 1, Board: "1000000000000000000000002", Life: [2]int{10, 10}, Expect: "left"},
		{Name: "broken", Player: 1, Board: "12", Life: [2]int{10, 10}},
	}
	sum := runBatch(defaultPolicy(), items, 3)
	assert.Equal(t, 4, sum.Runs)
	assert.Equal(t, 1, sum.Errors)
	assert.Equal(t, map[string]int{"down": 2, "attack": 1}, sum.ByAction)
	assert.Equal(t, map[string]int{"8:chase": 2, "1:finish": 1}, sum.ByRule)
	require.Len(t, sum.Mismatches, 1)
	assert.Equal(t, Mismatch{Scenario: "wrong", Want: "left", Got: "down", Rule: 8, Reason: "chase"}, sum.Mismatches[0])
	require.Len(t, sum.Failures, 1)
	assert.Equal(t, "broken", sum.Failures[0].Scenario)

	var decoded Summary
	require.NoError(t, json.Unmarshal(marshalPretty(sum), &decoded))
	assert.Equal(t, sum, decoded)
}

func TestRunBatchRandomIsDeterministic(t *testing.T) {
	rng, _ := util.New(2024)
	items := randomScenarios(rng, 500)
	a := runBatch(defaultPolicy(), items, 8)
	b := runBatch(defaultPolicy(), items, 1)
	assert.Equal(t, a, b)
	assert.Equal(t, 500, a.Runs)
	assert.Zero(t, a.Errors)

	total := 0
	for k, v := range a.ByAction {
		assert.True(t, policy.Action(k).Valid(), k)
		total += v
	}
	assert.Equal(t, 500, total)
}

func TestShippedAssets(t *testing.T) {
	pc, err := config.LoadPolicy("../../assets/policy.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPolicy(), *pc)

	sc, err := config.LoadScenarios("../../assets/scenarios.yaml")
	require.NoError(t, err)
	sum := runBatch(policy.New(*pc, nil), sc.Scenarios, 4)
	assert.Zero(t, sum.Errors)
	assert.Empty(t, sum.Mismatches)
	assert.Equal(t, len(sc.Scenarios), sum.Runs)
}
