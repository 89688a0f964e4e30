package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nicoche/measurements-koyeb/benchmark"
	"github.com/nicoche/measurements-koyeb/helper"
	"github.com/nicoche/measurements-koyeb/store"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored benchmark results",
	Run: func(cmd *cobra.Command, args []string) {
		viper.BindPFlags(cmd.Flags())

		dir := viper.GetString("history-dir")
		if dir == "" {
			log.Fatalln("no history directory configured, use --history-dir")
		}

		results, err := store.New(dir).List()
		helper.CheckErrorf(err, "listing benchmark history")

		fmt.Println(formatHistory(results))
	},
}

func formatHistory(results []*benchmark.Result) string {
	var output []string
	row := []string{"STARTED", "APP", "REGION", "IMAGE", "CREATION", "ALLOCATING", "READY"}
	output = append(output, strings.Join(row, "|"))

	for _, result := range results {
		row := []string{
			humanize.Time(result.StartedAt),
			result.AppName,
			result.Region,
			result.Image,
			fmt.Sprintf("%.2fs", result.CreationSeconds),
			fmt.Sprintf("%.2fs", result.AllocatingSeconds),
			fmt.Sprintf("%.2fs", result.ReadySeconds),
		}
		output = append(output, strings.Join(row, "|"))
	}

	return columnize.SimpleFormat(output)
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().String("history-dir", "", "directory where results are stored as JSON")
}
