// Command mcx_createuser creates or updates a staff account.
//
// Usage: mcx_createuser <username> "<Full Name>" <password> <admin|cashier>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shwefx/money_changer_app/internal/platform/config"
	"github.com/shwefx/money_changer_app/internal/utils"
	"github.com/shwefx/money_changer_app/pkg/database"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintln(os.Stderr, `Usage: mcx_createuser <username> "<Full Name>" <password> <admin|cashier>`)
		os.Exit(1)
	}
	username, fullName, password, role := os.Args[1], os.Args[2], os.Args[3], os.Args[4]
	if role != "admin" && role != "cashier" {
		fmt.Fprintln(os.Stderr, "Role must be admin or cashier")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to database:", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := utils.HashPassword(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to hash password:", err)
		os.Exit(1)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (username, full_name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE
		SET full_name = EXCLUDED.full_name,
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role;
	`, username, fullName, hash, role)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to upsert user:", err)
		os.Exit(1)
	}

	fmt.Println("User created/updated:", username, role)
}
