package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daoswald/bytes-random-secure/rand"
)

var (
	outputFormat string
	lineEnding   string
)

func init() {
	BytesCmd.Flags().StringVar(&outputFormat, "format", "hex", "output format (raw|hex|base64|qp)")
	BytesCmd.Flags().StringVar(&lineEnding, "eol", `\n`, `line separator for base64/qp wrapping ("" disables wrapping)`)
}

// BytesCmd writes random bytes to stdout in the requested encoding.
var BytesCmd = &cobra.Command{
	Use:   "bytes <count>",
	Short: "Generate random bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[0], err)
		}

		switch outputFormat {
		case "raw":
			bs, err := rand.Bytes(n)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(bs)
			return err
		case "hex":
			s, err := rand.BytesHex(n)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		case "base64":
			s, err := rand.BytesBase64(n, unescapeEOL(lineEnding))
			if err != nil {
				return err
			}
			fmt.Print(s)
			return nil
		case "qp":
			s, err := rand.BytesQP(n, unescapeEOL(lineEnding))
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		default:
			return fmt.Errorf("unknown format %q (want raw, hex, base64 or qp)", outputFormat)
		}
	},
}

// unescapeEOL turns the flag-friendly spellings of the usual separators into
// the real thing. Anything else passes through verbatim.
func unescapeEOL(s string) string {
	switch s {
	case `\n`:
		return "\n"
	case `\r\n`:
		return "\r\n"
	}
	return s
}
