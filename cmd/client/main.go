package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/MKhiriev/rental-blocklist/internal/adapter"
	"github.com/MKhiriev/rental-blocklist/internal/config"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(2)
	}

	log := logger.New("blocklist-client", os.Stderr, logger.ParseLevel(cfg.LogLevel))

	client, err := adapter.NewHTTPBlocklistClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create blocklist client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cli := &commandLine{
		client:   client,
		username: cfg.Username,
		password: readPassword,
		out:      os.Stdout,
	}

	if err = cli.run(ctx, cfg.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describeError(err))
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// readPassword takes BLOCKLIST_PASSWORD when set, otherwise prompts on the
// terminal without echo, or reads a line from a piped stdin.
func readPassword() (string, error) {
	if password, ok := os.LookupEnv("BLOCKLIST_PASSWORD"); ok {
		return password, nil
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
