package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/PauloHFS/prosa/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func RunCreateUser() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: create-user <email> <password> [role]")
		os.Exit(1)
	}
	email := os.Args[2]
	password := os.Args[3]
	role := "author"
	if len(os.Args) > 4 {
		role = os.Args[4]
	}

	dbConn, err := initDB()
	if err != nil {
		panic(err)
	}
	defer dbConn.Close()
	queries := store.New(dbConn)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	user, err := queries.CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role,
	})
	if err != nil {
		fmt.Printf("failed to create user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("User %s created successfully (id %s, role %s)\n", email, user.ID, role)
}
