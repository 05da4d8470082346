package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// keygenCmd represents the keygen command
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new FBR API key",
	Long: `Request a fresh API key from the FBR key-issuance endpoint and print
instructions for persisting it in your shell environment.

Keys are valid for 24 hours. Reusing one across runs avoids burning
through the provider's rate limit on key generation.`,
	RunE: runKeygen,
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}

func runKeygen(cmd *cobra.Command, args []string) error {
	key, err := client.GenerateKey(context.Background())
	if err != nil {
		return fmt.Errorf("failed to generate API key: %w", err)
	}

	// Print only; the key is never written to disk or the environment.
	fmt.Println("=== FBR API Key Generated ===")
	fmt.Println("To avoid rate-limiting, please set the following environment variable:")
	fmt.Println()
	fmt.Printf("  export FBR_API_KEY=%s\n", key)
	fmt.Println()
	fmt.Println("You can also add this line to your shell profile (e.g. ~/.bashrc).")
	fmt.Println("This key is valid for 24 hours.")
	fmt.Println("=============================")

	return nil
}
