package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nicoche/measurements-koyeb/api"
	"github.com/nicoche/measurements-koyeb/benchmark"
	"github.com/nicoche/measurements-koyeb/helper"
	"github.com/nicoche/measurements-koyeb/metrics"
	"github.com/nicoche/measurements-koyeb/store"
)

// runCmd represents the run command, the mode the container runs in
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark loop and serve Prometheus metrics",
	Run: func(cmd *cobra.Command, args []string) {
		viper.BindPFlags(cmd.Flags())

		client, err := api.PlatformClient(helper.APIURL(), helper.APIToken(), Verbose)
		if err != nil {
			log.Fatalln(err)
		}

		listen := viper.GetString("listen")
		go func() {
			log.Printf("Prometheus metrics server running on %s", listen)
			if err := metrics.Serve(listen); err != nil {
				log.Fatalf("metrics server: %v", err)
			}
		}()

		var st *store.Store
		if dir := viper.GetString("history-dir"); dir != "" {
			st = store.New(dir)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		interval := viper.GetDuration("interval")
		keep := viper.GetBool("keep")

		for {
			runCycle(ctx, client, st, keep)

			if ctx.Err() != nil {
				return
			}

			log.Printf("sleeping %s", interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
		}
	},
}

func runCycle(ctx context.Context, client *resty.Client, st *store.Store, keep bool) {
	runner := newRunner(client)

	result, err := runner.Run(ctx)
	if err != nil {
		metrics.Cycles.WithLabelValues("failure").Inc()
		log.Printf("%s benchmark failed: %v", color.RedString("✗"), err)

		if result != nil && !keep {
			if cerr := runner.Cleanup(ctx, result); cerr != nil {
				log.Printf("cleanup after failure: %v", cerr)
			}
		}
		return
	}

	metrics.TimeToReady.Set(result.ReadySeconds)
	metrics.Cycles.WithLabelValues("success").Inc()
	log.Printf("%s time to publicly ready: %.2fs", color.GreenString("✓"), result.ReadySeconds)

	fmt.Println(runner.Tracker().Recap())

	if st != nil {
		if _, err := st.Save(result); err != nil {
			log.Printf("saving result: %v", err)
		}
	}

	if keep {
		log.Printf("keeping app %s (%s), delete it before the next cycle", result.AppName, result.AppId)
		return
	}

	if err := runner.Cleanup(ctx, result); err != nil {
		log.Printf("cleanup: %v", err)
		log.Printf("please delete app %q manually in the dashboard", result.AppName)
	}
}

func newRunner(client *resty.Client) *benchmark.Runner {
	tracker := benchmark.NewTimingTracker(metrics.OperationDuration)
	config := benchmark.Config{
		AppName:     viper.GetString("app"),
		ServiceName: viper.GetString("service"),
		Region:      viper.GetString("region"),
		Image:       viper.GetString("image"),
		Port:        viper.GetInt("port"),
	}

	return benchmark.NewRunner(client, benchmark.NewProber(nil), tracker, config)
}

func addBenchmarkFlags(cmd *cobra.Command) {
	cmd.Flags().String("region", "fra", "Koyeb region to deploy to")
	cmd.Flags().String("image", "nginx:latest", "docker image to deploy")
	cmd.Flags().Int("port", 80, "port the deployed image listens on")
	cmd.Flags().String("app", "nginx-benchmark-app", "name of the benchmark app")
	cmd.Flags().String("service", "nginx-service", "name of the benchmark service")
	cmd.Flags().String("history-dir", "", "directory where results are stored as JSON")
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration("interval", 300*time.Second, "pause between benchmark cycles")
	runCmd.Flags().String("listen", metrics.DefaultListenAddr, "metrics listen address")
	runCmd.Flags().Bool("keep", false, "keep the app and service after each cycle")
	addBenchmarkFlags(runCmd)
}
