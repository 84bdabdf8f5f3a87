package main

import (
	"fmt"

	"github.com/askpod/askpod"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the askpod version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(askpod.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
