package main

import (
	"flag"
	"log"

	"gymshop-inventory/internal/model"
	"gymshop-inventory/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// staffctl creates a staff account or resets its password, for when nobody
// can log in anymore.
func main() {
	email := flag.String("email", "admin@example.com", "staff account email")
	password := flag.String("password", "admin123", "password to set")
	name := flag.String("name", "Shop Staff", "full name for a new account")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.ConnectDB()

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		// No such account: create one.
		user = model.User{Email: *email, FullName: *name, IsActive: true}
		if err := user.SetPassword(*password); err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", *email, err)
		}
		log.Printf("Created staff account %s", *email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// Also clear the token version so stale sessions die with the old
	// password.
	if err := db.Model(&user).Updates(map[string]interface{}{
		"password":      string(hashed),
		"token_version": "",
	}).Error; err != nil {
		log.Fatalf("Failed to update password: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
