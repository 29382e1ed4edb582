package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/BlissMahlathi/heavenly/internal/modules/auth"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Admin", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: createadmin -email admin@example.com -password secret [-name Admin]")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := auth.NewRepo(db)

	normalized := strings.ToLower(strings.TrimSpace(*email))
	if _, err := repo.GetByEmail(normalized); err == nil {
		log.Fatalf("User %s already exists", normalized)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	u := &auth.User{
		Email:        normalized,
		PasswordHash: string(hash),
		Name:         *name,
		Role:         "admin",
	}
	if err := repo.Create(u); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("✓ admin %s created (id=%s)", u.Email, u.ID)
}
