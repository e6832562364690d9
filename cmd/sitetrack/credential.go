package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nhle/sitetrack/internal/credential"
)

// newCredentialCmd manages the Claude API key in the system keyring.
func newCredentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage the AI assistant credential",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set-api-key",
			Short: "Store the Claude API key in the system keyring",
			RunE: func(cmd *cobra.Command, args []string) error {
				var apiKey string
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("Claude API key").
						EchoMode(huh.EchoModePassword).
						Value(&apiKey).
						Validate(func(s string) error {
							if strings.TrimSpace(s) == "" {
								return fmt.Errorf("API key is required")
							}
							return nil
						}),
				))
				if err := form.Run(); err != nil {
					return err
				}

				if err := credential.Set(credential.APIKeyName, strings.TrimSpace(apiKey)); err != nil {
					return err
				}
				fmt.Println("API key stored.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete-api-key",
			Short: "Remove the Claude API key from the system keyring",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := credential.Delete(credential.APIKeyName); err != nil {
					return err
				}
				fmt.Println("API key removed.")
				return nil
			},
		},
	)

	return cmd
}
