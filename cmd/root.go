package cmd

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nicoche/measurements-koyeb/api"
	"github.com/nicoche/measurements-koyeb/helper"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "measurements-koyeb",
	Short: "Benchmark how long a Koyeb deployment takes to become publicly ready",
	Long: `measurements-koyeb repeatedly deploys a web service on Koyeb, times every
lifecycle phase until the public URL answers HTTP 200, and exposes the
timings as Prometheus metrics on port 7777.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&helper.CfgFile, "config", "", "config file (default is $HOME/.measurements-koyeb.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "verbose output")

	rootCmd.PersistentFlags().String("token", "", "Koyeb API token")
	viper.BindPFlag(helper.KeyAPIToken, rootCmd.PersistentFlags().Lookup("token"))

	rootCmd.PersistentFlags().String("api-url", api.DefaultBaseURL, "Koyeb API base URL")
	viper.BindPFlag(helper.KeyAPIURL, rootCmd.PersistentFlags().Lookup("api-url"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configName := ".measurements-koyeb"

	if helper.CfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(helper.CfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(configName)

		helper.CfgFile = path.Join(home, configName+".yaml")
	}

	// KOYEB_API_TOKEN et al.
	viper.SetEnvPrefix("koyeb")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); Verbose && err != nil {
		log.Println(err)
	}

	if Verbose {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
