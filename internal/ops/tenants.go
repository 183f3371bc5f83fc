// Package ops holds the query and mutation shapes shared by the maintenance
// scripts. Each script passes its hard-coded values in as parameters so the
// same logic can run against any *gorm.DB.
package ops

import (
	"errors"

	"dbadmin/internal/model"

	"gorm.io/gorm"
)

// TenantParams is the literal field set a create script supplies
type TenantParams struct {
	Name    string
	Phone   string
	Channel model.Channel
}

// CreateTenantResult reports whether an insert actually happened
type CreateTenantResult struct {
	Tenant  *model.Tenant
	Created bool
}

// FindTenantByPhone looks up at most one tenant by phone number. A missing
// record is not an error; found reports it.
func FindTenantByPhone(db *gorm.DB, phone string) (tenant *model.Tenant, found bool, err error) {
	var t model.Tenant
	err = db.Where("phone = ?", phone).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &t, true, nil
}

// CreateTenant inserts a tenant unless one with the same phone number already
// exists, in which case the existing record is returned untouched.
//
// The check and the insert are not atomic. Two concurrent runs can both pass
// the check; the loser then hits the unique index on phone and gets the
// driver's constraint error. Accepted for a manually invoked tool.
func CreateTenant(db *gorm.DB, p TenantParams) (*CreateTenantResult, error) {
	existing, found, err := FindTenantByPhone(db, p.Phone)
	if err != nil {
		return nil, err
	}
	if found {
		return &CreateTenantResult{Tenant: existing}, nil
	}

	tenant := model.Tenant{
		Name:             p.Name,
		Phone:            p.Phone,
		Channel:          p.Channel,
		Status:           model.TenantActive,
		OnboardingStatus: model.OnboardingDiscovery,
	}
	if err := db.Create(&tenant).Error; err != nil {
		return nil, err
	}
	return &CreateTenantResult{Tenant: &tenant, Created: true}, nil
}

// SetTenantChannel switches the messaging channel of one tenant by id.
// Returns the number of rows updated; 0 means no such tenant.
func SetTenantChannel(db *gorm.DB, id string, channel model.Channel) (int64, error) {
	result := db.Model(&model.Tenant{}).
		Where("id = ?", id).
		Update("channel", channel)
	return result.RowsAffected, result.Error
}

// UpdateTenantOnboarding moves the tenant with the given phone number to a
// new onboarding status. Returns the number of rows updated.
func UpdateTenantOnboarding(db *gorm.DB, phone string, status model.OnboardingStatus) (int64, error) {
	result := db.Model(&model.Tenant{}).
		Where("phone = ?", phone).
		Update("onboarding_status", status)
	return result.RowsAffected, result.Error
}

// DeleteTenant removes exactly one tenant by id and returns its name.
// A missing id surfaces as gorm.ErrRecordNotFound.
func DeleteTenant(db *gorm.DB, id string) (string, error) {
	var tenant model.Tenant
	if err := db.First(&tenant, "id = ?", id).Error; err != nil {
		return "", err
	}
	if err := db.Delete(&tenant).Error; err != nil {
		return "", err
	}
	return tenant.Name, nil
}
