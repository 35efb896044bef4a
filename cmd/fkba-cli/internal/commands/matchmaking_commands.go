package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/maurinmaster/SIA-FKBA/internal/app"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/export"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// MatchmakingCommandHandler generates brackets from the command line.
type MatchmakingCommandHandler struct{}

// GenerateBracketsCmd builds the brackets of an event and prints the summary
func (commandHandler *MatchmakingCommandHandler) GenerateBracketsCmd(cmd *cobra.Command, _ []string) error {
	slug, err := cmd.Flags().GetString("event")
	if err != nil {
		return fmt.Errorf("invalid event flag: %w", err)
	}
	metricID, err := cmd.Flags().GetString("metric")
	if err != nil {
		return fmt.Errorf("invalid metric flag: %w", err)
	}
	replace, err := cmd.Flags().GetBool("replace")
	if err != nil {
		return fmt.Errorf("invalid replace flag: %w", err)
	}

	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	matchmakingService, err := app.NewMatchmakingService(rt.store, export.NewBracketPDFRenderer(), rt.logger)
	if err != nil {
		return fmt.Errorf("failed to create matchmaking service: %w", err)
	}

	result, err := matchmakingService.Generate(cmd.Context(), &matchmaking.GenerateRequest{
		EventSlug:       slug,
		MetricID:        metricID,
		ReplaceExisting: replace,
	})
	if err != nil {
		return err
	}

	printGeneration(cmd.OutOrStdout(), result)
	return nil
}

// printGeneration writes the group table and the unmatched athletes.
func printGeneration(w io.Writer, result *matchmaking.GenerationResult) {
	if result.BracketsCreated == 0 {
		fmt.Fprintln(w, warnColor.Sprint(matchmaking.MsgNoBracketsCreated))
	} else {
		fmt.Fprintf(w, "%s %d bracket(s), %d match(es)\n", successColor.Sprint("Generated"), result.BracketsCreated, result.MatchesCreated)
	}
	if result.Replaced > 0 {
		fmt.Fprintf(w, "%s %d bracket(s)\n", labelColor.Sprint("Replaced"), result.Replaced)
	}

	if len(result.Groups) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Rule set", "Experience", "Sex", "Age group", "Weight", "Athletes", "Brackets"})
		for _, g := range result.Groups {
			table.Append([]string{
				g.RuleSet, g.Experience, g.Sex, g.AgeGroup, g.Weight,
				strconv.Itoa(g.AthleteCount), strconv.Itoa(g.BracketCount),
			})
		}
		table.Render()
	}

	if len(result.Unmatched) > 0 {
		fmt.Fprintf(w, "%s %d\n", warnColor.Sprint("Unmatched athletes:"), len(result.Unmatched))
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Registration", "Athlete", "Reason"})
		for _, u := range result.Unmatched {
			table.Append([]string{u.RegistrationID, u.Athlete, u.Reason})
		}
		table.Render()
	}
}

// InitMatchmakingCommands registers generate-brackets
func InitMatchmakingCommands(rootCmd *cobra.Command) error {
	handler := &MatchmakingCommandHandler{}

	var generateCmd = &cobra.Command{
		Use:   "generate-brackets",
		Short: "Generate the brackets of an event under a metric",
		RunE:  handler.GenerateBracketsCmd,
	}
	generateCmd.Flags().StringP("event", "e", "", "Event slug")
	generateCmd.Flags().StringP("metric", "m", "", "Metric ID")
	generateCmd.Flags().Bool("replace", true, "Replace the brackets previously generated with this metric")
	for _, name := range []string{"event", "metric"} {
		if err := generateCmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s flag required: %w", name, err)
		}
	}
	rootCmd.AddCommand(generateCmd)

	return nil
}
