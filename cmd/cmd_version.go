package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show creator platform version",
		RunE:  versionHandler,
	}
}

func versionHandler(_ *cobra.Command, _ []string) error {
	fmt.Println(Version)
	return nil
}
