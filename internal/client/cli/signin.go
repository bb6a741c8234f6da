package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/thalassemiacare/internal/client/guard"
)

func (c *Cli) runSignin(ctx context.Context) error {
	c.io.Println("=== Sign In ===")
	c.io.Println()

	if _, redirect := guard.Redirect(c.session.State(), guard.LocationSign); redirect {
		c.io.Println("You are already signed in.")
		c.io.Println("Run 'thalcare signout' first to switch accounts.")
		return nil
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	// Пустые поля не отправляем, сервер ответил бы тем же сообщением
	if email == "" || password == "" {
		return fmt.Errorf("please provide email and password")
	}

	c.io.Println()
	c.io.Println("Signing in...")

	if err := c.session.SignIn(ctx, email, password); err != nil {
		return err
	}

	user := c.session.User()
	c.io.Println()
	c.io.Println("✓ Signed in!")
	c.io.Printf("Welcome back, %s\n", user.FullName)

	return nil
}
