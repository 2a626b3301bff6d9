package models

import (
	"gorm.io/gorm"
)

// CleanerProfile is the cleaner's public business profile. One profile per
// cleaner user; a cleaner account may exist without one.
type CleanerProfile struct {
	gorm.Model
	UserID          uint       `json:"user_id" gorm:"uniqueIndex"`
	User            User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BusinessName    string     `json:"business_name"`
	HourlyRate      float64    `json:"hourly_rate"`
	Bio             *string    `json:"bio"`
	YearsExperience *int       `json:"years_experience"`
	IsVerified      bool       `json:"is_verified" gorm:"default:false"`
	IsActive        bool       `json:"is_active" gorm:"default:true"`
	InstantBooking  bool       `json:"instant_booking" gorm:"default:false"`
	Services        StringList `json:"services" gorm:"type:jsonb"`
	ServiceAreas    StringList `json:"service_areas" gorm:"type:jsonb"`
	ResponseTime    string     `json:"response_time"`
	PhotoURL        string     `json:"photo_url"`
}

// ServesArea reports whether the profile lists the given service area.
func (p *CleanerProfile) ServesArea(area string) bool {
	for _, a := range p.ServiceAreas {
		if a == area {
			return true
		}
	}
	return false
}
