package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"go-garment-supply/internal/config"
	"go-garment-supply/internal/model"
	"go-garment-supply/pkg/database"
)

// Registers a user from the command line, for bootstrapping an environment
// without going through the HTTP surface.
func main() {
	username := flag.String("username", "", "display name for the new user")
	phone := flag.String("phone", "", "unique phone number used to log in")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *username == "" || *phone == "" || *password == "" {
		log.Fatal("usage: create-user -username NAME -phone PHONE -password PASSWORD")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Setup Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Create the user
	user := &model.User{
		Username:    *username,
		PhoneNumber: *phone,
	}
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("User %s created with id %d (phone %s)", user.Username, user.ID, user.PhoneNumber)
}
