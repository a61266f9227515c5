// Package main provides the entry point for the Review Scripter CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scripter",
	Short: "Review Scripter HTTP API server and CLI",
	Long:  "Review Scripter turns customer product reviews into a four-part marketing script (headline, hook, body, call to action), either from a product page URL or pasted review text.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
