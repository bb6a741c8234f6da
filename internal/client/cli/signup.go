package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/thalassemiacare/internal/client/guard"
	"github.com/iudanet/thalassemiacare/internal/client/session"
	"github.com/iudanet/thalassemiacare/internal/validation"
)

func (c *Cli) runSignup(ctx context.Context) error {
	c.io.Println("=== Sign Up ===")
	c.io.Println()

	// Авторизованному пользователю регистрация не нужна
	if _, redirect := guard.Redirect(c.session.State(), guard.LocationSign); redirect {
		c.io.Println("You are already signed in.")
		c.io.Println("Run 'thalcare signout' first to create another account.")
		return nil
	}

	// Запрашиваем данные пользователя
	fullName, err := c.io.ReadInput("Full name: ")
	if err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	}
	if err := validation.ValidateFullName(fullName); err != nil {
		return err
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	// Подтверждение пароля
	confirmPassword, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Creating account...")

	if err := c.session.SignUp(ctx, fullName, email, password); err != nil {
		return err
	}

	user := c.session.User()
	c.io.Println()
	c.io.Println("✓ Account created!")
	c.io.Printf("User ID: %s\n", user.ID)
	c.io.Printf("Email: %s\n", user.Email)
	if c.session.State() == session.StateAuthenticated {
		c.io.Println()
		c.io.Println("You are now signed in on this device.")
	}

	return nil
}
