package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nicoche/measurements-koyeb/api"
	"github.com/nicoche/measurements-koyeb/helper"
)

// cleanupCmd represents the cleanup command
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete a leftover benchmark app and its services",
	Run: func(cmd *cobra.Command, args []string) {
		viper.BindPFlags(cmd.Flags())

		client, err := api.PlatformClient(helper.APIURL(), helper.APIToken(), Verbose)
		if err != nil {
			log.Fatal(err)
		}

		if err := runCleanupCmd(client, viper.GetString("app"), os.Stdin); err != nil {
			log.Fatal(err)
		}
	},
}

func runCleanupCmd(client *resty.Client, appName string, stdin io.Reader) error {
	apps, err := api.ListApps(client, appName)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		return fmt.Errorf("no app named %q found", appName)
	}
	app := apps[0]

	accept := getAcceptCleanup(stdin, appName)
	if accept != "y" {
		fmt.Println("Cleanup aborted")
		return nil
	}

	services, err := api.ListServices(client, app.Id)
	if err != nil {
		return err
	}
	for _, service := range services {
		if err := api.DeleteService(client, service.Id); err != nil {
			return err
		}
	}

	if err := api.DeleteApp(client, app.Id); err != nil {
		return fmt.Errorf("deleting app %s: %w (services may still be draining, retry in a moment)", app.Id, err)
	}

	fmt.Println("App deleted.")
	return nil
}

func init() {
	rootCmd.AddCommand(cleanupCmd)

	cleanupCmd.Flags().String("app", "nginx-benchmark-app", "name of the benchmark app")
}
