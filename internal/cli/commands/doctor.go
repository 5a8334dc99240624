package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/brewround/internal/cli/output"
	"github.com/leapstack-labs/brewround/internal/core"
	"github.com/leapstack-labs/brewround/internal/history"
	"github.com/leapstack-labs/brewround/internal/repository"
	"github.com/spf13/cobra"
)

// Health check statuses.
const (
	statusPass  = "pass"
	statusWarn  = "warn"
	statusError = "error"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the data files and round history for problems",
		Long: `Check the people, drinks and favourites files and the round history.

The report covers:
- Missing or unreadable data files
- Favourites lines that are skipped on load
- Duplicate names on the roster and duplicate drinks on the menu
- People whose drink is not on the menu
- Whether the round history database opens and is migrated

The history database is opened read-only and never migrated here.`,
		Example: `  # Run health check
  brewround doctor

  # Output as JSON
  brewround doctor -o json`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}
}

// DoctorOutput is the structured output for the doctor command.
type DoctorOutput struct {
	Summary         DataSummary   `json:"summary" yaml:"summary"`
	HealthChecks    []HealthCheck `json:"health_checks" yaml:"health_checks"`
	Score           int           `json:"score" yaml:"score"`
	Recommendations []string      `json:"recommendations" yaml:"recommendations"`
	IssueCount      int           `json:"issue_count" yaml:"issue_count"`
}

// DataSummary counts what was loaded.
type DataSummary struct {
	People        int   `json:"people" yaml:"people"`
	Drinks        int   `json:"drinks" yaml:"drinks"`
	Favourites    int   `json:"favourites" yaml:"favourites"`
	Rounds        int   `json:"rounds" yaml:"rounds"`
	SchemaVersion int64 `json:"schema_version" yaml:"schema_version"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	RuleID     string   `json:"rule_id" yaml:"rule_id"`
	Name       string   `json:"name" yaml:"name"`
	Group      string   `json:"group" yaml:"group"`
	Status     string   `json:"status" yaml:"status"`
	IssueCount int      `json:"issue_count" yaml:"issue_count"`
	Details    []string `json:"details,omitempty" yaml:"details,omitempty"`
}

func newCheck(id, name, group, failStatus string, details []string) HealthCheck {
	status := statusPass
	if len(details) > 0 {
		status = failStatus
	}
	return HealthCheck{
		RuleID:     id,
		Name:       name,
		Group:      group,
		Status:     status,
		IssueCount: len(details),
		Details:    details,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	var summary DataSummary
	var checks []HealthCheck

	var missing []string
	for _, p := range []string{cfg.PeopleFile, cfg.DrinksFile, cfg.FavouritesFile} {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, p+" does not exist")
		}
	}
	checks = append(checks, newCheck("DF01", "files-present", "data", statusWarn, missing))

	data, err := cmdCtx.Repo.Load(cmd.Context())
	if err != nil {
		checks = append(checks, newCheck("DF02", "files-readable", "data", statusError, []string{err.Error()}))
		data = repository.NewData()
	} else {
		checks = append(checks, newCheck("DF02", "files-readable", "data", statusError, nil))
	}
	checks = append(checks, checkData(data)...)

	summary.People = len(data.People)
	summary.Drinks = len(data.Drinks)
	summary.Favourites = data.Favourites.Len()

	checks = append(checks, checkHistory(cmd, cmdCtx, &summary)...)

	out := &DoctorOutput{
		Summary:         summary,
		HealthChecks:    checks,
		Score:           calculateHealthScore(checks, summary.People),
		Recommendations: generateRecommendations(checks),
	}
	for _, c := range checks {
		out.IssueCount += c.IssueCount
	}

	switch r.Mode() {
	case output.ModeJSON, output.ModeYAML:
		return r.Structured(out)
	case output.ModeMarkdown:
		renderDoctorMarkdown(r, out)
	default:
		renderDoctorText(r, out)
	}
	return nil
}

// checkData runs the roster and menu checks over loaded data.
func checkData(data *repository.Data) []HealthCheck {
	checks := []HealthCheck{
		newCheck("DF03", "favourites-valid", "data", statusWarn, data.Diagnostics),
	}

	seen := make(map[string]bool)
	var dupPeople []string
	for _, name := range core.FullNames(data.People) {
		if seen[name] {
			dupPeople = append(dupPeople, name+" is on the roster more than once")
		}
		seen[name] = true
	}
	checks = append(checks, newCheck("RS01", "unique-names", "roster", statusError, dupPeople))

	onMenu := make(map[string]bool, len(data.Drinks))
	var dupDrinks []string
	for _, d := range data.Drinks {
		if onMenu[d] {
			dupDrinks = append(dupDrinks, d+" is on the menu more than once")
		}
		onMenu[d] = true
	}
	checks = append(checks, newCheck("MN01", "unique-drinks", "menu", statusWarn, dupDrinks))

	var offMenu []string
	for _, p := range data.People {
		if p.Drink != "" && !onMenu[p.Drink] {
			offMenu = append(offMenu, fmt.Sprintf("%s drinks %s, which is not on the menu", p.FullName(), p.Drink))
		}
	}
	checks = append(checks, newCheck("MN02", "roster-drinks-on-menu", "menu", statusWarn, offMenu))

	return checks
}

// checkHistory inspects the history database without migrating it. A
// missing database passes, since it is created by the first recorded round.
func checkHistory(cmd *cobra.Command, cmdCtx *CommandContext, summary *DataSummary) []HealthCheck {
	path := cmdCtx.Cfg.HistoryPath
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return historyChecks(nil, nil)
	}

	store, err := history.OpenExisting(cmd.Context(), path, cmdCtx.Logger)
	if err != nil {
		return historyChecks([]string{err.Error()}, nil)
	}
	defer closeQuietly(store, cmdCtx.Logger, "history")

	current, latest, err := store.SchemaVersions(cmd.Context())
	if err != nil {
		return historyChecks([]string{err.Error()}, nil)
	}
	summary.SchemaVersion = current

	if current < latest {
		return historyChecks(nil, []string{
			fmt.Sprintf("history schema is at version %d, latest is %d", current, latest),
		})
	}

	rounds, err := store.CountRounds(cmd.Context())
	if err != nil {
		return historyChecks([]string{err.Error()}, nil)
	}
	summary.Rounds = rounds
	return historyChecks(nil, nil)
}

func historyChecks(readIssues, pending []string) []HealthCheck {
	return []HealthCheck{
		newCheck("HS01", "history-readable", "history", statusError, readIssues),
		newCheck("HS02", "history-migrated", "history", statusWarn, pending),
	}
}

// calculateHealthScore computes a health score from 0-100.
// Errors cost twice as much as warnings, and a bigger roster softens
// each issue.
func calculateHealthScore(checks []HealthCheck, peopleCount int) int {
	score := 100.0

	basePenalty := 5.0
	if peopleCount > 10 {
		basePenalty = 3.0
	}
	if peopleCount > 50 {
		basePenalty = 1.0
	}

	for _, check := range checks {
		switch check.Status {
		case statusError:
			score -= float64(check.IssueCount) * basePenalty * 2
		case statusWarn:
			score -= float64(check.IssueCount) * basePenalty
		}
	}

	return int(max(0, min(100, score)))
}

// generateRecommendations lists one fix per failing check.
func generateRecommendations(checks []HealthCheck) []string {
	var recommendations []string
	for _, check := range checks {
		if check.IssueCount == 0 {
			continue
		}
		if rec := getRecommendation(check.RuleID); rec != "" {
			recommendations = append(recommendations, rec)
		}
	}
	return recommendations
}

func getRecommendation(ruleID string) string {
	switch ruleID {
	case "DF01":
		return "Run 'brewround init' or point the config at existing data files"
	case "DF02":
		return "Fix the malformed rows in the people file"
	case "DF03":
		return "Use 'brewround favourites set' to rewrite invalid favourites"
	case "RS01":
		return "Remove duplicate people so each full name is unique"
	case "MN01":
		return "Remove duplicate drinks from the menu"
	case "MN02":
		return "Add missing drinks with 'brewround drinks add'"
	case "HS01":
		return "Move the history database aside and let brewround recreate it"
	case "HS02":
		return "Run 'brewround history list' to apply pending history migrations"
	default:
		return ""
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) {
	styles := r.Styles()
	w := r.Writer()

	_, _ = fmt.Fprintln(w, styles.Heading.Render("brewround Health Report"))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "   People: %d | Drinks: %d | Favourites: %d | Rounds: %d\n",
		out.Summary.People, out.Summary.Drinks, out.Summary.Favourites, out.Summary.Rounds)
	_, _ = fmt.Fprintln(w)

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			_, _ = fmt.Fprintln(w, "   "+titleCaser.String(currentGroup))
			_, _ = fmt.Fprintln(w, styles.Muted.Render("   "+strings.Repeat("-", 40)))
		}

		icon := styles.Success.Render("ok")
		switch check.Status {
		case statusWarn:
			icon = styles.Warning.Render("!!")
		case statusError:
			icon = styles.Warning.Render("xx")
		}

		line := fmt.Sprintf("   %s %s: %s", icon, check.RuleID, check.Name)
		if check.IssueCount > 0 {
			line += fmt.Sprintf(" (%d issues)", check.IssueCount)
		}
		_, _ = fmt.Fprintln(w, line)

		for i, detail := range check.Details {
			if i >= 3 {
				_, _ = fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("       ... and %d more", len(check.Details)-3)))
				break
			}
			_, _ = fmt.Fprintln(w, styles.Muted.Render("       - "+detail))
		}
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "   Health Score: %d/100\n", out.Score)

	if len(out.Recommendations) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, styles.Heading.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			_, _ = fmt.Fprintf(w, "   %d. %s\n", i+1, rec)
		}
	}
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) {
	w := r.Writer()

	_, _ = fmt.Fprintln(w, "# brewround Health Report")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "- **People**: %d\n", out.Summary.People)
	_, _ = fmt.Fprintf(w, "- **Drinks**: %d\n", out.Summary.Drinks)
	_, _ = fmt.Fprintf(w, "- **Favourites**: %d\n", out.Summary.Favourites)
	_, _ = fmt.Fprintf(w, "- **Rounds**: %d\n", out.Summary.Rounds)
	_, _ = fmt.Fprintln(w)

	rows := make([][]any, 0, len(out.HealthChecks))
	for _, c := range out.HealthChecks {
		rows = append(rows, []any{c.RuleID, c.Name, c.Status, c.IssueCount})
	}
	r.Table("Health Checks", []string{"Rule", "Check", "Status", "Issues"}, rows)

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "**Health Score**: %d/100\n", out.Score)

	if len(out.Recommendations) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "## Recommendations")
		_, _ = fmt.Fprintln(w)
		for i, rec := range out.Recommendations {
			_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, rec)
		}
	}
}
