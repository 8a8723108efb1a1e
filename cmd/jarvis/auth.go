package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/term"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with the Jarvis Budget backend",
		Long:  `Log in, register a new account, or sign in with Google. The session token is stored locally and reused by every other command.`,
	}

	cmd.AddCommand(loginCmd())
	cmd.AddCommand(registerCmd())
	cmd.AddCommand(googleLoginCmd())
	cmd.AddCommand(logoutCmd())

	return cmd
}

func loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := newClient(ctx, store)
			if err != nil {
				return err
			}

			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}

			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			session, err := client.Login(ctx, api.Credentials{Email: email, Password: password})
			if err != nil {
				writeError(err)
				return fmt.Errorf("login failed")
			}

			if err := store.SetToken(ctx, session.Bearer()); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s", email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")

	return cmd
}

func registerCmd() *cobra.Command {
	var (
		name  string
		email string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := newClient(ctx, store)
			if err != nil {
				return err
			}

			if name == "" {
				name, err = promptLine("Name: ")
				if err != nil {
					return err
				}
			}
			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}

			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			session, err := client.Register(ctx, api.RegisterParams{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				writeError(err)
				return fmt.Errorf("registration failed")
			}

			if err := store.SetToken(ctx, session.Bearer()); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Account created for %s", email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")

	return cmd
}

func googleLoginCmd() *cobra.Command {
	var idToken string

	cmd := &cobra.Command{
		Use:   "google",
		Short: "Sign in with a Google account",
		Long: `Sign in with Google. Without --id-token this runs the OAuth device-style
flow: it prints a consent URL, you paste back the authorization code, and
the resulting ID token is exchanged with the backend for a session.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := newClient(ctx, store)
			if err != nil {
				return err
			}

			if idToken == "" {
				idToken, err = googleIDToken(ctx)
				if err != nil {
					return err
				}
			}

			session, err := client.GoogleLogin(ctx, idToken)
			if err != nil {
				writeError(err)
				return fmt.Errorf("google login failed")
			}

			if err := store.SetToken(ctx, session.Bearer()); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Logged in with Google"))
			return nil
		},
	}

	cmd.Flags().StringVar(&idToken, "id-token", "", "pre-obtained Google ID token")

	return cmd
}

// googleIDToken walks the user through the out-of-band OAuth consent
// flow and returns the ID token from the exchanged credentials.
func googleIDToken(ctx context.Context) (string, error) {
	clientID := viper.GetString("auth.google.client_id")
	clientSecret := viper.GetString("auth.google.client_secret")
	if clientID == "" || clientSecret == "" {
		return "", fmt.Errorf("auth.google.client_id and auth.google.client_secret must be set in config")
	}

	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  "urn:ietf:wg:oauth:2.0:oob",
		Scopes:       []string{"openid", "email", "profile"},
	}

	url := conf.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Printf("Visit this URL to authorize:\n\n  %s\n\n", url)

	code, err := promptLine("Authorization code: ")
	if err != nil {
		return "", err
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", fmt.Errorf("no id_token in Google's response")
	}

	return idToken, nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ClearToken(ctx); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}
