package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdallahsaber065/cpp-helper/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a commented default ` + config.FileName + ` to the current directory.

Fails if the file already exists.`,
	Run: runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	if err := config.WriteDefault(""); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Created %s\n", config.FileName)
}
