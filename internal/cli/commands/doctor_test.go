package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/brewround/internal/core"
	"github.com/leapstack-labs/brewround/internal/repository"
)

func TestCalculateHealthScore(t *testing.T) {
	tests := []struct {
		name        string
		checks      []HealthCheck
		peopleCount int
		minScore    int
		maxScore    int
	}{
		{
			name:        "no checks returns 100",
			checks:      nil,
			peopleCount: 5,
			minScore:    100,
			maxScore:    100,
		},
		{
			name: "all passing returns 100",
			checks: []HealthCheck{
				{RuleID: "DF01", Status: statusPass},
				{RuleID: "RS01", Status: statusPass},
			},
			peopleCount: 5,
			minScore:    100,
			maxScore:    100,
		},
		{
			name: "warnings reduce score",
			checks: []HealthCheck{
				{RuleID: "MN02", Status: statusWarn, IssueCount: 2},
			},
			peopleCount: 5,
			minScore:    90,
			maxScore:    90,
		},
		{
			name: "errors count double",
			checks: []HealthCheck{
				{RuleID: "RS01", Status: statusError, IssueCount: 2},
			},
			peopleCount: 5,
			minScore:    80,
			maxScore:    80,
		},
		{
			name: "bigger roster softens each issue",
			checks: []HealthCheck{
				{RuleID: "MN02", Status: statusWarn, IssueCount: 5},
			},
			peopleCount: 100,
			minScore:    95,
			maxScore:    95,
		},
		{
			name: "many issues clamp to 0",
			checks: []HealthCheck{
				{RuleID: "RS01", Status: statusError, IssueCount: 20},
			},
			peopleCount: 2,
			minScore:    0,
			maxScore:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := calculateHealthScore(tt.checks, tt.peopleCount)
			assert.GreaterOrEqual(t, score, tt.minScore)
			assert.LessOrEqual(t, score, tt.maxScore)
		})
	}
}

func TestGetRecommendation(t *testing.T) {
	for _, id := range []string{"DF01", "DF02", "DF03", "RS01", "MN01", "MN02", "HS01", "HS02"} {
		assert.NotEmpty(t, getRecommendation(id), "expected recommendation for %s", id)
	}
	assert.Empty(t, getRecommendation("UNKNOWN"))
}

func TestGenerateRecommendations(t *testing.T) {
	checks := []HealthCheck{
		{RuleID: "DF01", Status: statusWarn, IssueCount: 1},
		{RuleID: "RS01", Status: statusPass},
		{RuleID: "MN02", Status: statusWarn, IssueCount: 3},
	}

	recs := generateRecommendations(checks)

	require.Len(t, recs, 2)
	assert.Contains(t, recs[0], "brewround init")
	assert.Contains(t, recs[1], "drinks add")
}

func TestCheckData(t *testing.T) {
	data := repository.NewData()
	data.People = []*core.Person{
		{ID: 1, FirstName: "Ann", LastName: "Lee", Drink: "Tea"},
		{ID: 2, FirstName: "Ann", LastName: "Lee", Drink: "Tea"},
		{ID: 3, FirstName: "Bob", LastName: "Smith", Drink: "Mead"},
	}
	data.Drinks = []string{"Tea", "Coffee", "Tea"}
	data.Diagnostics = []string{"Cat Day is not a known person"}

	byID := make(map[string]HealthCheck)
	for _, c := range checkData(data) {
		byID[c.RuleID] = c
	}

	assert.Equal(t, statusWarn, byID["DF03"].Status)
	assert.Equal(t, 1, byID["DF03"].IssueCount)

	assert.Equal(t, statusError, byID["RS01"].Status)
	assert.Equal(t, []string{"Ann Lee is on the roster more than once"}, byID["RS01"].Details)

	assert.Equal(t, statusWarn, byID["MN01"].Status)
	assert.Equal(t, []string{"Tea is on the menu more than once"}, byID["MN01"].Details)

	assert.Equal(t, statusWarn, byID["MN02"].Status)
	assert.Equal(t, []string{"Bob Smith drinks Mead, which is not on the menu"}, byID["MN02"].Details)
}

func TestCheckData_Clean(t *testing.T) {
	data := repository.NewData()
	data.People = []*core.Person{{ID: 1, FirstName: "Ann", LastName: "Lee", Drink: "Tea"}}
	data.Drinks = []string{"Tea"}

	for _, c := range checkData(data) {
		assert.Equal(t, statusPass, c.Status, c.RuleID)
		assert.Zero(t, c.IssueCount, c.RuleID)
	}
}

func TestHistoryChecks(t *testing.T) {
	checks := historyChecks(nil, []string{"history schema is at version 0, latest is 1"})
	require.Len(t, checks, 2)

	assert.Equal(t, "HS01", checks[0].RuleID)
	assert.Equal(t, statusPass, checks[0].Status)

	assert.Equal(t, "HS02", checks[1].RuleID)
	assert.Equal(t, statusWarn, checks[1].Status)
	assert.Equal(t, 1, checks[1].IssueCount)
}
