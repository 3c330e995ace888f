package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daoswald/bytes-random-secure/rand"
)

var bag string

func init() {
	StringCmd.Flags().StringVar(&bag, "bag",
		"0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz",
		"alphabet to draw from; duplicates weight a character proportionally")
}

// StringCmd writes a random string drawn from the bag to stdout.
var StringCmd = &cobra.Command{
	Use:   "string <count>",
	Short: "Generate a random string from a bag of characters",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[0], err)
		}
		s, err := rand.StringFrom(bag, n)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	},
}
