package services

import (
	"testing"
	"time"

	"creditflow/internal/models"
	"creditflow/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("lowercases_email_and_assigns_commercial_role", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		testutil.GetOrCreateCommercialRole(t, db)

		user, err := svc.CreateUser("John.Doe@Example.COM", "password123", "John", "Doe")
		testutil.AssertNoError(t, err)
		if user.Email != "john.doe@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}

		reloaded, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if len(reloaded.Roles) != 1 || reloaded.Roles[0].Name != models.RoleCommercial {
			t.Errorf("expected COMMERCIAL role, got %v", reloaded.Roles)
		}
	})

	t.Run("works_without_the_commercial_role_seeded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("solo@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)
		if len(user.Roles) != 0 {
			t.Errorf("expected no roles, got %v", user.Roles)
		}
	})

	t.Run("duplicate_email_is_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("dup@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("DUP@example.com", "password123", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_credentials_are_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("nopass@example.com", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("valid_credentials_reset_the_failure_counter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUser(t, db)
		if err := db.Model(user).Update("failed_login_attempts", 3).Error; err != nil {
			t.Fatalf("failed to seed failure counter: %v", err)
		}

		got, err := svc.AttemptLogin(user.Email, "password123")
		testutil.AssertNoError(t, err)
		if got.ID != user.ID {
			t.Errorf("expected user %d, got %d", user.ID, got.ID)
		}

		var reloaded models.User
		if err := db.First(&reloaded, user.ID).Error; err != nil {
			t.Fatalf("failed to reload user: %v", err)
		}
		if reloaded.FailedLoginAttempts != 0 {
			t.Errorf("expected counter reset, got %d", reloaded.FailedLoginAttempts)
		}
		if reloaded.LastLoginAt == nil {
			t.Error("expected last_login_at to be set")
		}
	})

	t.Run("wrong_password_increments_the_counter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUser(t, db)

		_, err := svc.AttemptLogin(user.Email, "wrong-password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")

		var reloaded models.User
		if err := db.First(&reloaded, user.ID).Error; err != nil {
			t.Fatalf("failed to reload user: %v", err)
		}
		if reloaded.FailedLoginAttempts != 1 {
			t.Errorf("expected 1 failed attempt, got %d", reloaded.FailedLoginAttempts)
		}
	})

	t.Run("fifth_failure_locks_the_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUser(t, db)
		for i := 0; i < 5; i++ {
			_, err := svc.AttemptLogin(user.Email, "wrong-password")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		// Even the right password is refused while the lock holds.
		_, err := svc.AttemptLogin(user.Email, "password123")
		testutil.AssertAppError(t, err, "ACCOUNT_LOCKED")
	})

	t.Run("expired_lock_is_ignored", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUser(t, db)
		past := time.Now().Add(-time.Minute)
		if err := db.Model(user).Update("locked_until", past).Error; err != nil {
			t.Fatalf("failed to seed expired lock: %v", err)
		}

		_, err := svc.AttemptLogin(user.Email, "password123")
		testutil.AssertNoError(t, err)
	})

	t.Run("unknown_email_reads_as_invalid_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("ghost@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestRefreshTokenHash(t *testing.T) {
	t.Run("stores_and_retrieves_the_hash", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUser(t, db)

		err := svc.StoreRefreshTokenHash(user.ID, "abc123")
		testutil.AssertNoError(t, err)

		hash, err := svc.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "abc123" {
			t.Errorf("expected abc123, got %s", hash)
		}
	})

	t.Run("unknown_user_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		err := svc.StoreRefreshTokenHash(9999, "abc123")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
