package seeds

import (
	"gorm.io/gorm"

	"garrison/internal/infrastructure/auth"
	"garrison/internal/infrastructure/persistence/models"
	"garrison/internal/shared/authorization"
)

// SeedBases seeds the bases table with a default set of installations.
func SeedBases(db *gorm.DB) error {
	bases := []models.BaseModel{
		{Name: "Fort Alpha", Location: "Northern Command"},
		{Name: "Fort Bravo", Location: "Eastern Command"},
		{Name: "Fort Charlie", Location: "Southern Command"},
	}

	for _, base := range bases {
		if err := db.FirstOrCreate(&base, models.BaseModel{Name: base.Name}).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedAdminUser creates the default administrator account if no user with the
// given email exists.
func SeedAdminUser(db *gorm.DB, hasher *auth.BcryptPasswordHasher, email, password string) error {
	var count int64
	if err := db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	admin := models.UserModel{
		Name:         "System Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         authorization.RoleAdmin.String(),
	}
	return db.Create(&admin).Error
}
