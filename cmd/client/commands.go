package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/rental-blocklist/internal/adapter"
	"github.com/MKhiriev/rental-blocklist/models"
)

var errUsage = errors.New(`usage: blocklist-client [flags] <command>

commands:
  search <civil-id>                  look up a customer
  add <civil-id> <name> <reason...>  report a customer
  me                                 show the account and remaining searches
  support <message...>               write to the support team
  version                            show client and server versions`)

type commandLine struct {
	client   adapter.BlocklistClient
	username string
	password func() (string, error)
	out      io.Writer
}

func (c *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	switch command {
	case "version":
		return c.version(ctx)
	case "search":
		if len(args) != 1 {
			return errUsage
		}
		return c.authenticated(ctx, func() error { return c.search(ctx, args[0]) })
	case "add":
		if len(args) < 3 {
			return errUsage
		}
		req := models.AddBlockRequest{CivilID: args[0], Name: args[1], Reason: strings.Join(args[2:], " ")}
		return c.authenticated(ctx, func() error { return c.addBlock(ctx, req) })
	case "me":
		return c.authenticated(ctx, func() error { return c.me(ctx) })
	case "support":
		if len(args) == 0 {
			return errUsage
		}
		req := models.SupportMessageRequest{Message: strings.Join(args, " ")}
		return c.authenticated(ctx, func() error { return c.support(ctx, req) })
	default:
		return fmt.Errorf("%w\n\nunknown command %q", errUsage, command)
	}
}

// authenticated logs in, runs action and logs out again. A failed logout
// is ignored, the token expires on its own.
func (c *commandLine) authenticated(ctx context.Context, action func() error) error {
	if c.username == "" {
		return fmt.Errorf("%w\n\na username is required (-u or ADAPTER_USERNAME)", errUsage)
	}

	password, err := c.password()
	if err != nil {
		return err
	}

	if _, err = c.client.Login(ctx, c.username, password); err != nil {
		return err
	}
	defer c.client.Logout(context.WithoutCancel(ctx))

	return action()
}

func (c *commandLine) version(ctx context.Context) error {
	printBuildInfo(c.out)

	serverVersion, err := c.client.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Server version: %s\n", serverVersion)

	return nil
}

func (c *commandLine) search(ctx context.Context, civilID string) error {
	result, err := c.client.Search(ctx, civilID)
	if err != nil {
		return err
	}

	if result.Found && result.Record != nil {
		fmt.Fprintf(c.out, "BLOCKED: %s\n  name:     %s\n  reason:   %s\n  added by: %s on %s\n",
			result.Record.CivilID, result.Record.Name, result.Record.Reason,
			result.Record.CreatedBy, result.Record.CreatedAt.Format("2006-01-02"))
	} else {
		fmt.Fprintf(c.out, "not blocked: %s\n", civilID)
	}
	fmt.Fprintf(c.out, "remaining searches: %s\n", formatRemaining(result.RemainingSearches))

	return nil
}

func (c *commandLine) addBlock(ctx context.Context, req models.AddBlockRequest) error {
	resp, err := c.client.AddBlock(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "added %s (%s)\n", resp.Record.CivilID, resp.Record.Name)
	if resp.Bonus > 0 {
		fmt.Fprintf(c.out, "+%d searches, remaining searches: %s\n", resp.Bonus, formatRemaining(resp.RemainingSearches))
	}

	return nil
}

func (c *commandLine) me(ctx context.Context) error {
	account, err := c.client.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s (%s)\nremaining searches: %s\n", account.Username, account.Role, formatRemaining(account.RemainingSearches))
	return nil
}

func (c *commandLine) support(ctx context.Context, req models.SupportMessageRequest) error {
	resp, err := c.client.SendSupportMessage(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "message #%d sent\n%s\n", resp.Message.MessageID, resp.AutoResponse.Message)
	return nil
}

func formatRemaining(remaining *int64) string {
	if remaining == nil {
		return "unlimited"
	}
	return fmt.Sprintf("%d", *remaining)
}

// describeError turns server rejections into messages for the terminal.
func describeError(err error) string {
	var apiErr *adapter.APIError
	switch {
	case errors.Is(err, adapter.ErrQuotaExceeded):
		return "no remaining searches, add a block record or contact the support team"
	case errors.Is(err, adapter.ErrInvalidCivilID) && errors.As(err, &apiErr):
		return fmt.Sprintf("invalid civil id (%s): %s", apiErr.Code, apiErr.Message)
	case errors.Is(err, adapter.ErrUnauthorized):
		return "wrong username or password"
	default:
		return err.Error()
	}
}
