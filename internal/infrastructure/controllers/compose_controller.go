package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/msgforge/internal/domain/commands"
	"github.com/rios0rios0/msgforge/internal/domain/entities"
)

// ComposeController handles the root command with a change set argument.
type ComposeController struct {
	command commands.Compose
}

// NewComposeController creates a new ComposeController.
func NewComposeController(command commands.Compose) *ComposeController {
	return &ComposeController{command: command}
}

// GetBind returns the Cobra command metadata for the compose controller.
func (it *ComposeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "compose [change-set]",
		Short: "Render the update message for a change set",
		Long: `Render the pull request title, pull request body, and commit message
for a dependency change set and print them as YAML.`,
	}
}

// Execute renders the message for the given change set file.
func (it *ComposeController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")
	changelogFile, _ := cmd.Flags().GetString("changelog")
	repoDir, _ := cmd.Flags().GetString("repo-dir")

	if len(args) == 0 {
		logger.Error("missing change set file argument")
		return
	}

	settings, err := loadSettings(configPath)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	result, err := it.command.Execute(ctx, settings, commands.ComposeOptions{
		ChangeSetPath: args[0],
		RepoDir:       repoDir,
		ChangelogFile: changelogFile,
		Verbose:       verbose,
	})
	if err != nil {
		logger.Fatalf("Compose failed: %v", err)
	}

	out, err := yaml.Marshal(result)
	if err != nil {
		logger.Fatalf("failed to encode the result: %v", err)
	}
	fmt.Print(string(out))
}

// AddFlags adds the compose-specific flags to the given Cobra command.
func (it *ComposeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("changelog", "",
		"Record the update in this Keep a Changelog file")
	cmd.Flags().String("repo-dir", "",
		"Derive the pull request branches from this local repository")
}

// loadSettings resolves the settings file. A missing file is not an error,
// rendering works with defaults.
func loadSettings(configPath string) (*entities.Settings, error) {
	cfgPath := configPath
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("no config file found, using defaults: %v", err)
			return &entities.Settings{}, nil //nolint:exhaustruct // Zero value carries the defaults
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)
	return entities.NewSettings(cfgPath)
}
