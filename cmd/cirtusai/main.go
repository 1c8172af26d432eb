// Command cirtusai is a small CLI over the CirtusAI SDK: register an
// account, run the login flows (including the second factor), and inspect
// agents and wallet assets. Configuration comes from flags and a .env file;
// the SDK itself performs no environment I/O.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Cirtus-AI/cirtusai-sdk/pkg/cirtusai"
	"github.com/Cirtus-AI/cirtusai-sdk/pkg/slogx"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("cirtusai: %v", err)
	}
}

func run(args []string) error {
	// Missing .env is fine; flags and real env still apply.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("cirtusai", flag.ExitOnError)
	baseURL := fs.String("url", envOr("CIRTUS_API_URL", "http://localhost:8000"), "platform base URL")
	username := fs.String("user", os.Getenv("CIRTUS_USERNAME"), "username or email")
	password := fs.String("password", os.Getenv("CIRTUS_PASSWORD"), "account password")
	code := fs.String("code", "", "second-factor code (TOTP or backup); prompted when required and unset")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	timeout := fs.Duration("timeout", 30*time.Second, "overall command timeout")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: cirtusai [flags] register|login|status|agents|wallets")
	}

	logger := slogx.New(slogx.Config{App: "cirtusai-cli", Level: *logLevel, Format: "text"})

	client := cirtusai.New(*baseURL, cirtusai.WithLogger(logger))
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch cmd := fs.Arg(0); cmd {
	case "register":
		return register(ctx, client, *username, *password)
	case "login":
		return login(ctx, client, *username, *password, *code)
	case "status":
		return status(ctx, client, *username, *password, *code)
	case "agents":
		if err := login(ctx, client, *username, *password, *code); err != nil {
			return err
		}
		return agents(ctx, client)
	case "wallets":
		if err := login(ctx, client, *username, *password, *code); err != nil {
			return err
		}
		return wallets(ctx, client)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func register(ctx context.Context, client *cirtusai.Client, username, password string) error {
	email := username
	if !strings.Contains(email, "@") {
		email = prompt("Email address: ")
	}
	setup, err := client.Auth.Register(ctx, username, email, password, "totp")
	if err != nil {
		return err
	}

	fmt.Printf("TOTP secret:  %s\n", setup.Secret)
	fmt.Printf("QR code URI:  %s\n", setup.QRCodeURI)
	fmt.Printf("Backup codes: %s\n", strings.Join(setup.BackupCodes, " "))

	if png, err := setup.QRCodePNG(); err == nil {
		if err := os.WriteFile("qr_code.png", png, 0o600); err == nil {
			fmt.Println("QR code saved as qr_code.png")
		}
	}
	return nil
}

func login(ctx context.Context, client *cirtusai.Client, username, password, code string) error {
	result, err := client.Auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if !result.Requires2FA() {
		fmt.Println("Logged in.")
		return nil
	}

	fmt.Printf("Second factor required (%s), challenge expires at %s\n",
		result.Challenge.PreferredMethod, result.Challenge.ExpiresAt.Format(time.RFC3339))
	if code == "" {
		code = prompt("Enter code: ")
	}

	_, err = client.Auth.VerifySecondFactor(ctx, result.Challenge.TemporaryToken, code)
	var tfe *cirtusai.TwoFactorError
	if errors.As(err, &tfe) {
		// The platform reports the codes it would accept; pass that on.
		return fmt.Errorf("verification failed: %s", tfe.Error())
	}
	if err != nil {
		return err
	}
	fmt.Println("Logged in.")
	return nil
}

func status(ctx context.Context, client *cirtusai.Client, username, password, code string) error {
	if err := login(ctx, client, username, password, code); err != nil {
		return err
	}
	st, err := client.Auth.TwoFactorStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("2FA enabled: %v (preferred method %s, SMS enabled %v)\n",
		st.IsEnabled, st.PreferredMethod, st.IsSMSEnabled)
	return nil
}

func agents(ctx context.Context, client *cirtusai.Client) error {
	master, err := client.Agents.ListAgents(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Master agent %s (%s)\n", master.Name, master.ID)
	for _, child := range master.State.LinkedChildren {
		fmt.Printf("  - %s (%s) permissions: %s\n",
			child.ChildAgentID, child.ID, strings.Join(child.PermissionsGranted, ", "))
	}
	return nil
}

func wallets(ctx context.Context, client *cirtusai.Client) error {
	assets, err := client.Wallets.ListAssets(ctx)
	if err != nil {
		return err
	}
	for _, w := range assets.Wallets {
		fmt.Printf("wallet %s chain=%s\n", w.ID, w.Chain)
	}
	for _, e := range assets.Emails {
		fmt.Printf("email  %s address=%s\n", e.ID, e.Address)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func prompt(label string) string {
	fmt.Print(label)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}
