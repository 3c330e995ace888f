package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daoswald/bytes-random-secure/version"
)

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(_ *cobra.Command, _ []string) {
		v := version.SemVer
		if version.GitCommitHash != "" {
			v += "+" + version.GitCommitHash
		}
		fmt.Println(v)
	},
}
