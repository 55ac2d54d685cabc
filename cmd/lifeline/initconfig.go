package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lifeline/savings-calculator/internal/config"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config [file]",
	Short: "Write an example configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		filename := "lifeline.yaml"
		if len(args) == 1 {
			filename = args[0]
		}
		parser := config.NewInputParser()
		if err := parser.WriteExampleConfig(filename); err != nil {
			return err
		}
		fmt.Printf("Example configuration written to %s\n", filename)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initConfigCmd)
}
