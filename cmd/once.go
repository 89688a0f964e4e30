package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nicoche/measurements-koyeb/api"
	"github.com/nicoche/measurements-koyeb/helper"
	"github.com/nicoche/measurements-koyeb/store"
)

// onceCmd represents the once command
var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Run a single benchmark cycle and print the timing recap",
	Run: func(cmd *cobra.Command, args []string) {
		viper.BindPFlags(cmd.Flags())

		client, err := api.PlatformClient(helper.APIURL(), helper.APIToken(), Verbose)
		helper.CheckError(err)

		runner := newRunner(client)
		ctx := context.Background()

		result, err := runner.Run(ctx)
		if err != nil {
			// best effort teardown of whatever was created
			if result != nil {
				_ = runner.Cleanup(ctx, result)
			}
			log.Fatalln(err)
		}

		fmt.Println(runner.Tracker().Recap())
		fmt.Println(helper.PrettyPrint(result))

		if dir := viper.GetString("history-dir"); dir != "" {
			if _, err := store.New(dir).Save(result); err != nil {
				log.Printf("saving result: %v", err)
			}
		}

		if getAcceptCleanup(os.Stdin, result.AppName) != "y" {
			fmt.Printf("Keeping app %s, delete it with 'measurements-koyeb cleanup'\n", result.AppName)
			return
		}

		if err := runner.Cleanup(ctx, result); err != nil {
			log.Printf("could not delete app immediately: %v", err)
			log.Printf("please delete %q manually in the dashboard", result.AppName)
			return
		}

		fmt.Println("App deleted.")
	},
}

func getAcceptCleanup(stdin io.Reader, appName string) string {
	reader := bufio.NewReader(stdin)
	fmt.Printf("Do you want to delete the app %s and its services now? (y/N): ", appName)
	accept, _ := reader.ReadString('\n')
	accept = strings.TrimSpace(accept)
	return accept
}

func init() {
	rootCmd.AddCommand(onceCmd)

	addBenchmarkFlags(onceCmd)
}
