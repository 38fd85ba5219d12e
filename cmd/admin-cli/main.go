// Command admin-cli provisions a single admin account. It is the only way
// (besides the env bootstrap) to create one; the web surface never does.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"poemhub/internal/webapp/models"
	"poemhub/internal/webapp/repository"
	"poemhub/internal/webapp/service"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("required environment variable DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter new admin username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("failed to read username: %v", err)
	}
	username = strings.TrimSpace(username)
	if username == "" {
		log.Fatal("username must not be empty")
	}

	fmt.Print("Enter new admin password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalf("failed to read password: %v", err)
	}
	password := string(passwordBytes)
	if password == "" {
		log.Fatal("password must not be empty")
	}

	authService := service.NewAuthService(repository.NewAdminRepository(db))
	if _, err := authService.CreateAdmin(username, password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			log.Fatal("Admin with this username already exists.")
		}
		log.Fatalf("failed to create admin: %v", err)
	}

	fmt.Printf("Admin %q created successfully.\n", username)
}
