package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSignout(ctx context.Context) error {
	c.io.Println("=== Sign Out ===")

	// Удаляем только локальную сессию, сервер токены не отзывает
	if err := c.session.SignOut(ctx); err != nil {
		return fmt.Errorf("sign out failed: %w", err)
	}

	c.io.Println("✓ Signed out!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
