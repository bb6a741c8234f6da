package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/thalassemiacare/internal/client/session"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	if c.session.State() != session.StateAuthenticated {
		c.io.Println("Not signed in.")
		c.io.Println("Run 'thalcare signin' to sign in.")
		return nil
	}

	// Запрашиваем актуальный профиль с сервера
	user, err := c.session.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	c.io.Printf("ID: %s\n", user.ID)
	c.io.Printf("Name: %s\n", user.FullName)
	c.io.Printf("Email: %s\n", user.Email)
	if user.CreatedAt != "" {
		c.io.Printf("Member since: %s\n", user.CreatedAt)
	}

	return nil
}
