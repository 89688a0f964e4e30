package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nicoche/measurements-koyeb/helper"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of measurements-koyeb",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(helper.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
