package auth

import (
	"errors"
	"log"
	"os"

	"cloudstage/models"
	"cloudstage/store"
	"cloudstage/utils"

	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin provisions the admin account named by ADMIN_EMAIL and
// ADMIN_PASSWORD. Without an admin no submission can ever be approved, so
// main calls this on every boot: a missing account is created, an existing
// one just gains the admin role.
func EnsureAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set; no admin account provisioned")
		return nil
	}

	if _, err := store.Users.ByEmail(email); err == nil {
		return store.Users.AddRole(email, "admin")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		UserID:       utils.GenerateRandomString(12),
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         []string{"viewer", "admin"},
	}
	err = store.Users.Add(user)
	if errors.Is(err, store.ErrEmailTaken) {
		// Lost a race with a concurrent registration; grant the role instead.
		return store.Users.AddRole(email, "admin")
	}
	if err != nil {
		return err
	}
	log.Printf("Provisioned admin account %s", email)
	return nil
}
