// Command createtestusers provisions the three fixed test accounts.
//
// The customer and cleaner accounts are registered through the public
// signup endpoint of a running API, with a fixed delay between requests
// to stay under the signup rate limit. The admin account cannot be
// created through signup, so it is inserted directly into the database.
//
//	API_URL=http://localhost:8000 go run ./scripts/createtestusers
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cleaningnetwork/marketplace-api/db"
	"github.com/cleaningnetwork/marketplace-api/models"
)

const (
	testPassword = "TestPassword123!"
	signupDelay  = 5 * time.Second
)

type testUser struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"account_type"`
}

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}

	// Unique suffix so reruns don't collide with earlier accounts.
	suffix := time.Now().Unix()
	users := []testUser{
		{FullName: "John Customer", Email: fmt.Sprintf("customer%d@cleanxx.io", suffix), Password: testPassword, AccountType: models.RoleCustomer},
		{FullName: "Sarah Cleaner", Email: fmt.Sprintf("cleaner%d@cleanxx.io", suffix), Password: testPassword, AccountType: models.RoleCleaner},
	}
	adminUser := testUser{FullName: "Admin User", Email: fmt.Sprintf("admin%d@cleanxx.io", suffix), Password: testPassword, AccountType: models.RoleAdmin}

	log.Println("Creating test users...")

	for i, u := range users {
		if i > 0 {
			log.Printf("Waiting %s before next signup...", signupDelay)
			time.Sleep(signupDelay)
		}
		if err := register(apiURL, u); err != nil {
			log.Printf("Failed to create %s %s: %v", u.AccountType, u.Email, err)
			continue
		}
		log.Printf("Created %s: %s", u.AccountType, u.Email)
	}

	if err := createAdmin(adminUser); err != nil {
		log.Fatalf("Failed to create admin %s: %v", adminUser.Email, err)
	}
	log.Printf("Created admin: %s", adminUser.Email)

	fmt.Println("\nTest credentials:")
	for _, u := range append(users, adminUser) {
		fmt.Printf("  %-8s  %s / %s\n", u.AccountType, u.Email, u.Password)
	}
}

func register(apiURL string, u testUser) error {
	body, err := json.Marshal(u)
	if err != nil {
		return err
	}

	resp, err := http.Post(apiURL+"/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("signup returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

// createAdmin writes the admin account straight into the database; the
// signup endpoint refuses the admin account type.
func createAdmin(u testUser) error {
	db.Init()

	var role models.Role
	if err := db.DB.Where("name = ?", models.RoleAdmin).First(&role).Error; err != nil {
		return fmt.Errorf("admin role not found, run the API once to seed roles: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FullName: u.FullName,
		Email:    u.Email,
		Password: string(hashed),
		RoleID:   role.ID,
	}
	return db.DB.Create(&admin).Error
}
