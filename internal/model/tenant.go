package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Channel identifies the messaging channel a tenant is reached on
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelIMessage Channel = "imessage"
)

// TenantStatus is the tenant lifecycle state
type TenantStatus string

const (
	TenantActive TenantStatus = "active"
	TenantPaused TenantStatus = "paused"
)

// OnboardingStatus tracks how far along onboarding a tenant is
type OnboardingStatus string

const (
	OnboardingDiscovery OnboardingStatus = "discovery"
	OnboardingBuilding  OnboardingStatus = "building"
	OnboardingLive      OnboardingStatus = "live"
	OnboardingPaused    OnboardingStatus = "paused"
)

// Tenant represents a customer account of the assistant platform
type Tenant struct {
	ID               string           `json:"id" gorm:"primaryKey;type:uuid"`
	Name             string           `json:"name" gorm:"type:varchar(100);not null"`
	Phone            string           `json:"phone" gorm:"type:varchar(20);uniqueIndex"`
	Channel          Channel          `json:"channel" gorm:"type:varchar(20);default:'sms'"`
	Status           TenantStatus     `json:"status" gorm:"type:varchar(20);default:'active'"`
	OnboardingStatus OnboardingStatus `json:"onboarding_status" gorm:"type:varchar(20);default:'discovery'"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// BeforeCreate hook will be called before creating a new Tenant record
func (t *Tenant) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
