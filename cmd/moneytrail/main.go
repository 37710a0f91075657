package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/moneytrail-dev/moneytrail/internal/commands"
)

func main() {
	// A .env file can supply MONEYTRAIL_DIR; absence is fine.
	_ = godotenv.Load()

	rootCmd := commands.NewRootCommand()
	if dir := os.Getenv("MONEYTRAIL_DIR"); dir != "" {
		rootCmd.PersistentFlags().Lookup("dir").DefValue = dir
		_ = rootCmd.PersistentFlags().Set("dir", dir)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
