package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stonewall-sec/auditscope/internal/utils"
	"github.com/stonewall-sec/auditscope/pkg/whttp"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "auditscope",
	Short: "Browse published security audits.",
	Long: `auditscope merges a curated list of security reviews with the reports
published in a repository folder, and lists or serves the result.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelString, _ := cmd.Flags().GetString("loglevel")
		if err := utils.SetLogLevel(levelString); err != nil {
			return err
		}
		whttp.SetLogger(utils.Log)

		proxy, _ := cmd.Flags().GetString("proxy")
		if proxy != "" {
			return whttp.SetupProxy(proxy)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.auditscope.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy (Useful for debugging. Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".auditscope")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("AUDITSCOPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := filepath.Join(home, ".auditscope.yaml")
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				utils.Log.Debugf("Could not create config file: %v", err)
			}
		} else {
			utils.Log.Warnf("Could not read config: %v", err)
		}
	}
}

func setDefaults() {
	viper.SetDefault("remote.host", "github.com")
	viper.SetDefault("remote.api_url", "")
	viper.SetDefault("remote.owner", "Lefgk")
	viper.SetDefault("remote.repo", "StoneWall")
	viper.SetDefault("remote.branch", "main")
	viper.SetDefault("remote.path", "audits")
	viper.SetDefault("remote.extension", ".pdf")
	viper.SetDefault("remote.backend", "api")
	viper.SetDefault("catalog.file", "")
}
