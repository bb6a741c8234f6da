package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/iudanet/thalassemiacare/internal/client/iocli"
	"github.com/iudanet/thalassemiacare/internal/client/session"
)

type Cli struct {
	io      iocli.IO
	session *session.Service
}

func New(io iocli.IO, sessionService *session.Service) *Cli {
	return &Cli{
		io:      io,
		session: sessionService,
	}
}

// Run выполняет команду. Перед выполнением восстанавливается сессия
// с диска, чтобы команды видели актуальное состояние.
func (c *Cli) Run(ctx context.Context, command string) {
	c.session.Hydrate(ctx)

	var err error
	switch command {
	case "signup":
		err = c.runSignup(ctx)
	case "signin":
		err = c.runSignin(ctx)
	case "signout":
		err = c.runSignout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "whoami":
		err = c.runWhoami(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func PrintUsage() {
	fmt.Println("ThalassemiaCare Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  thalcare [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:3000)")
	fmt.Println("  --db PATH      Path to local database (default: thalcare-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  signup    Create a new account")
	fmt.Println("  signin    Sign in to an existing account")
	fmt.Println("  signout   Delete the local session")
	fmt.Println("  status    Show session status")
	fmt.Println("  whoami    Show the current user profile from the server")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  thalcare signup")
	fmt.Println("  thalcare signin")
	fmt.Println("  thalcare --server https://example.com status")
}
