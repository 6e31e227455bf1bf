package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dbPath   string
	cfgFile  string
	debugLog bool
)

var rootCmd = &cobra.Command{
	Use:   "valostats",
	Short: "Valorant match stats tool",
	Long:  "Import transcribed Valorant stat tables, compare players, and render radar charts.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if debugLog {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		initConfig()
		// Config file db path applies only when the flag was left at default.
		if !cmd.Flags().Changed("db") {
			if v := viper.GetString("db"); v != "" {
				dbPath = v
			}
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".valostats", "stats.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.valostats.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "enable debug logging")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(mustUserHome())
		viper.SetConfigName(".valostats")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("valostats")
	viper.AutomaticEnv()
	viper.SetDefault("chart.width", 0)
	viper.SetDefault("chart.height", 0)
	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("config", viper.ConfigFileUsed()).Msg("loaded config file")
	}
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
