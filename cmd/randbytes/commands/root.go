package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/daoswald/bytes-random-secure/libs/log"
	"github.com/daoswald/bytes-random-secure/rand"
)

var logger = log.NewLogger(os.Stderr)

func init() {
	registerFlagsRootCmd(RootCmd)
	RootCmd.PersistentPreRunE = rootPersistentPreRunE
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().Int("bits", rand.SeedDefaultBits,
		"seed width in bits, rounded up to a multiple of 32 and clamped to [64, 512]")
	cmd.PersistentFlags().Bool("non-blocking", false,
		"never block waiting on the entropy pool")
	cmd.PersistentFlags().Bool("allow-weak", false,
		"permit a weak time-seeded fallback when no strong entropy source is available")
	cmd.PersistentFlags().String("log-format", "plain", "log format (plain|json)")
}

// RootCmd is the root command for randbytes.
var RootCmd = &cobra.Command{
	Use:   "randbytes",
	Short: "Generate cryptographically seeded random bytes and strings",
}

func rootPersistentPreRunE(_ *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		return err
	}
	if viper.GetString("log-format") == "json" {
		logger = log.NewJSONLogger(os.Stderr)
	}

	cfg := rand.Config{
		Bits:        viper.GetInt("bits"),
		NonBlocking: viper.GetBool("non-blocking"),
		AllowWeak:   viper.GetBool("allow-weak"),
	}
	if err := cfg.ValidateBasic(); err != nil {
		return err
	}
	if !rand.ConfigureSeed(cfg) {
		logger.Error("generator already seeded, seed options ignored")
	}
	rand.SetLogger(logger)
	return nil
}
