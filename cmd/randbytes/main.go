package main

import (
	"os"

	cmd "github.com/daoswald/bytes-random-secure/cmd/randbytes/commands"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.BytesCmd,
		cmd.StringCmd,
		cmd.VersionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
