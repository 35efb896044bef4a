package commands

import (
	"fmt"

	"github.com/maurinmaster/SIA-FKBA/internal/app"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/auth"
	"github.com/maurinmaster/SIA-FKBA/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// AdminCommandHandler runs schema and account maintenance tasks.
type AdminCommandHandler struct{}

// MigrateCmd creates or updates every table
func (commandHandler *AdminCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	if err := persistence.Migrate(rt.db); err != nil {
		return err
	}
	rt.logger.Info("Database migrations completed successfully", "type", rt.cfg.Database.Type)
	fmt.Fprintln(cmd.OutOrStdout(), successColor.Sprint("Migrations applied."))
	return nil
}

// CreateStaffCmd creates a panel account
func (commandHandler *AdminCommandHandler) CreateStaffCmd(cmd *cobra.Command, _ []string) error {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		return fmt.Errorf("invalid username flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	noStaff, err := cmd.Flags().GetBool("no-staff")
	if err != nil {
		return fmt.Errorf("invalid no-staff flag: %w", err)
	}

	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	issuer, err := auth.NewJWTIssuer(&rt.cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %w", err)
	}
	authService, err := app.NewAuthService(rt.store, auth.NewBcryptHasher(bcrypt.DefaultCost), issuer, rt.logger)
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	user, err := authService.CreateUser(cmd.Context(), username, password, !noStaff)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", successColor.Sprint("Created user"), user.Username, user.ID)
	return nil
}

// SeedMetricCmd creates the default matchmaking metric when absent
func (commandHandler *AdminCommandHandler) SeedMetricCmd(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}

	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	metricService, err := app.NewMetricService(rt.store, rt.logger)
	if err != nil {
		return fmt.Errorf("failed to create metric service: %w", err)
	}

	metric, created, err := metricService.EnsureDefault(cmd.Context(), name)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q (%s)\n", successColor.Sprint("Created metric"), metric.Name, metric.ID)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q (%s)\n", warnColor.Sprint("Metric already exists"), metric.Name, metric.ID)
	}
	return nil
}

// InitAdminCommands registers migrate, create-staff and seed-metric
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler := &AdminCommandHandler{}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var createStaffCmd = &cobra.Command{
		Use:   "create-staff",
		Short: "Create a panel account",
		RunE:  handler.CreateStaffCmd,
	}
	createStaffCmd.Flags().StringP("username", "u", "", "Account username")
	createStaffCmd.Flags().StringP("password", "p", "", "Account password (at least 8 characters)")
	createStaffCmd.Flags().Bool("no-staff", false, "Create the account without panel access")
	if err := createStaffCmd.MarkFlagRequired("username"); err != nil {
		return fmt.Errorf("failed to mark username flag required: %w", err)
	}
	if err := createStaffCmd.MarkFlagRequired("password"); err != nil {
		return fmt.Errorf("failed to mark password flag required: %w", err)
	}
	rootCmd.AddCommand(createStaffCmd)

	var seedMetricCmd = &cobra.Command{
		Use:   "seed-metric",
		Short: "Create the default matchmaking metric when absent",
		RunE:  handler.SeedMetricCmd,
	}
	seedMetricCmd.Flags().StringP("name", "n", matchmaking.DefaultMetricName, "Metric name")
	rootCmd.AddCommand(seedMetricCmd)

	return nil
}
