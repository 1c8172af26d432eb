// Package agenttools exposes the SDK's sub-client operations as callable
// tools for a language-model agent framework. Each tool carries a name, a
// natural-language description and a JSON-schema input descriptor; the
// reasoning layer that decides when to call them is an external
// collaborator. Invoke propagates the SDK's error taxonomy unchanged so the
// caller can convert errors into user-facing text on its own terms.
package agenttools

import (
	"context"
	"fmt"

	"github.com/Cirtus-AI/cirtusai-sdk/pkg/cirtusai"
)

// Tool is a single callable operation.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]any
	Invoke(ctx context.Context, args map[string]any) (any, error)
}

// Definition is the serializable descriptor of a tool, as sent to an agent
// framework in a tool listing.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// funcTool implements Tool with a closure over the SDK client.
type funcTool struct {
	name        string
	description string
	schema      map[string]any
	fn          func(ctx context.Context, args map[string]any) (any, error)
}

func (t *funcTool) Name() string                { return t.name }
func (t *funcTool) Description() string         { return t.description }
func (t *funcTool) InputSchema() map[string]any { return t.schema }
func (t *funcTool) Invoke(ctx context.Context, args map[string]any) (any, error) {
	return t.fn(ctx, args)
}

// noArgs is the schema of a tool that takes no input.
func noArgs() map[string]any {
	return map[string]any{"type": "object", "properties": map[string]any{}}
}

// stringArg extracts a required string argument.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("agenttools: missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("agenttools: argument %q must be a non-empty string", key)
	}
	return s, nil
}

// objectArg extracts an optional object argument, defaulting to empty.
func objectArg(args map[string]any, key string) (map[string]any, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("agenttools: argument %q must be an object", key)
	}
	return m, nil
}

// DefaultTools wraps each resource sub-client operation of c as a tool.
func DefaultTools(c *cirtusai.Client) []Tool {
	return []Tool{
		&funcTool{
			name: "list_agents",
			description: "List the user's master agent, including its linked child agents " +
				"and the capability permissions granted to each. Use this to check what " +
				"an agent is allowed to do before acting on its behalf.",
			schema: noArgs(),
			fn: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Agents.ListAgents(ctx)
			},
		},
		&funcTool{
			name: "get_child_agents",
			description: "List the child agents linked to the user's master agent, with " +
				"their IDs and granted permissions.",
			schema: noArgs(),
			fn: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Agents.GetChildren(ctx)
			},
		},
		&funcTool{
			name:        "list_assets",
			description: "List all wallet assets held by the user: chain wallets and email addresses.",
			schema:      noArgs(),
			fn: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Wallets.ListAssets(ctx)
			},
		},
		&funcTool{
			name:        "list_email_accounts",
			description: "List the email accounts linked to the user's wallet.",
			schema:      noArgs(),
			fn: func(ctx context.Context, _ map[string]any) (any, error) {
				return c.Wallets.ListEmailAccounts(ctx)
			},
		},
		&funcTool{
			name: "create_email_account",
			description: "Provision a new email account in the user's wallet for the given " +
				"provider and address.",
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"provider": map[string]any{
						"type":        "string",
						"description": "Email provider identifier, e.g. gmail.",
					},
					"email_address": map[string]any{
						"type":        "string",
						"description": "Address of the account to create.",
					},
					"config": map[string]any{
						"type":        "object",
						"description": "Provider-specific settings, passed through verbatim.",
					},
				},
				"required": []string{"provider", "email_address"},
			},
			fn: func(ctx context.Context, args map[string]any) (any, error) {
				provider, err := stringArg(args, "provider")
				if err != nil {
					return nil, err
				}
				address, err := stringArg(args, "email_address")
				if err != nil {
					return nil, err
				}
				config, err := objectArg(args, "config")
				if err != nil {
					return nil, err
				}
				return c.Wallets.CreateEmailAccount(ctx, provider, address, config)
			},
		},
		&funcTool{
			name:        "refresh_email_token",
			description: "Refresh the OAuth token of a linked email account by its account ID.",
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"account_id": map[string]any{
						"type":        "string",
						"description": "ID of the email account to refresh.",
					},
				},
				"required": []string{"account_id"},
			},
			fn: func(ctx context.Context, args map[string]any) (any, error) {
				accountID, err := stringArg(args, "account_id")
				if err != nil {
					return nil, err
				}
				return c.Wallets.RefreshEmailToken(ctx, accountID)
			},
		},
		&funcTool{
			name: "issue_credential",
			description: "Issue a signed verifiable credential for a subject with the given " +
				"claims. Returns the credential in JWS compact form.",
			schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"subject": map[string]any{
						"type":        "string",
						"description": "Subject identifier the credential is issued for.",
					},
					"claims": map[string]any{
						"type":        "object",
						"description": "Claims to embed in the credential.",
					},
				},
				"required": []string{"subject"},
			},
			fn: func(ctx context.Context, args map[string]any) (any, error) {
				subject, err := stringArg(args, "subject")
				if err != nil {
					return nil, err
				}
				claims, err := objectArg(args, "claims")
				if err != nil {
					return nil, err
				}
				return c.Identity.IssueCredential(ctx, subject, claims)
			},
		},
	}
}
