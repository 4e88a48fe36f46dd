package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/msgforge/internal"
	"github.com/rios0rios0/msgforge/internal/infrastructure/controllers"
)

func buildRootCommand(composeController *controllers.ComposeController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "msgforge [change-set]",
		Short: "Dependency update message builder",
		Long: `Renders the pull request title, pull request body, and commit message
for a dependency change set, the way Dependabot words its updates.

Dependency metadata (release notes, changelogs, commit ranges) is
resolved from GitHub, GitLab, or Azure DevOps.

Usage modes:
  msgforge change-set.yaml   Render the message for a change set
  msgforge compose ...       Same as the root command
  msgforge check ...         Validate a change set without rendering`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			composeController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	// The root command doubles as compose, so it carries its flags too
	composeController.AddFlags(cmd)

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if cc, ok := ctrl.(*controllers.ComposeController); ok {
			cc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	composeController := injectComposeController()
	cobraRoot := buildRootCommand(composeController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'msgforge': %s", err)
	}
}
