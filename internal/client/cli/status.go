package cli

import (
	"context"

	"github.com/iudanet/thalassemiacare/internal/client/session"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	switch c.session.State() {
	case session.StateAuthenticated:
		user := c.session.User()
		c.io.Println("Status: Signed in")
		c.io.Printf("Name: %s\n", user.FullName)
		c.io.Printf("Email: %s\n", user.Email)
	case session.StateUnauthenticated:
		c.io.Println("Status: Not signed in")
		c.io.Println()
		c.io.Println("Run 'thalcare signin' to sign in.")
	default:
		c.io.Println("Status: Restoring session...")
	}

	return nil
}
