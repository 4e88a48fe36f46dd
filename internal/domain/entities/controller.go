package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind carries the Cobra command metadata of one controller.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is one CLI subcommand entry point.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}
