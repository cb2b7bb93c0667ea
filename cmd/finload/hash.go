package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finload/app/fileloader"
)

var hashCmd = &cobra.Command{
	Use:   "hash <file>...",
	Short: "Print the source hash recorded by load for each file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			sum, err := fileloader.CalculateFileHash(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, path)
		}
		return nil
	},
}
