package models

import (
	"time"
)

// PlatformSettings is a singleton: exactly one live row exists, seeded at
// migration time. Saves write every editable field unconditionally and the
// DB stamps UpdatedAt, so the client re-reads rather than guessing.
type PlatformSettings struct {
	ID uint `json:"id" gorm:"primaryKey"`

	// Platform
	PlatformName    string `json:"platform_name"`
	SupportEmail    string `json:"support_email"`
	SiteTagline     string `json:"site_tagline"`
	MaintenanceMode bool   `json:"maintenance_mode"`

	// Notifications
	NotifyNewUsers            bool `json:"notify_new_users"`
	NotifyNewBookings         bool `json:"notify_new_bookings"`
	NotifyCleanerApplications bool `json:"notify_cleaner_applications"`

	// Security
	RequireEmailVerification bool `json:"require_email_verification"`
	Require2FAAdmins         bool `json:"require_2fa_admins" gorm:"column:require_2fa_admins"`

	// Commission & pricing
	PlatformCommissionRate float64 `json:"platform_commission_rate"`
	MinHourlyRate          float64 `json:"min_hourly_rate"`
	MaxHourlyRate          float64 `json:"max_hourly_rate"`
	DefaultCurrency        string  `json:"default_currency"`

	// Booking policy
	MinBookingHours         int  `json:"min_booking_hours"`
	MaxBookingHours         int  `json:"max_booking_hours"`
	CancellationWindowHours int  `json:"cancellation_window_hours"`
	AdvanceBookingDays      int  `json:"advance_booking_days"`
	AllowInstantBooking     bool `json:"allow_instant_booking"`

	// Cleaner onboarding
	RequireCleanerVerification bool `json:"require_cleaner_verification"`
	AutoApproveCleaners        bool `json:"auto_approve_cleaners"`

	// Legal
	TermsURL   string `json:"terms_url"`
	PrivacyURL string `json:"privacy_url"`

	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedByID *uint     `json:"updated_by" gorm:"column:updated_by"`
}

// Changed is the dirty flag: true iff at least one editable field of in
// differs from the stored row. Audit fields don't count.
func (s *PlatformSettings) Changed(in *PlatformSettings) bool {
	return s.PlatformName != in.PlatformName ||
		s.SupportEmail != in.SupportEmail ||
		s.SiteTagline != in.SiteTagline ||
		s.MaintenanceMode != in.MaintenanceMode ||
		s.NotifyNewUsers != in.NotifyNewUsers ||
		s.NotifyNewBookings != in.NotifyNewBookings ||
		s.NotifyCleanerApplications != in.NotifyCleanerApplications ||
		s.RequireEmailVerification != in.RequireEmailVerification ||
		s.Require2FAAdmins != in.Require2FAAdmins ||
		s.PlatformCommissionRate != in.PlatformCommissionRate ||
		s.MinHourlyRate != in.MinHourlyRate ||
		s.MaxHourlyRate != in.MaxHourlyRate ||
		s.DefaultCurrency != in.DefaultCurrency ||
		s.MinBookingHours != in.MinBookingHours ||
		s.MaxBookingHours != in.MaxBookingHours ||
		s.CancellationWindowHours != in.CancellationWindowHours ||
		s.AdvanceBookingDays != in.AdvanceBookingDays ||
		s.AllowInstantBooking != in.AllowInstantBooking ||
		s.RequireCleanerVerification != in.RequireCleanerVerification ||
		s.AutoApproveCleaners != in.AutoApproveCleaners ||
		s.TermsURL != in.TermsURL ||
		s.PrivacyURL != in.PrivacyURL
}

// EditableFields maps the full editable field set to column values for a
// write-all update.
func (s *PlatformSettings) EditableFields() map[string]interface{} {
	return map[string]interface{}{
		"platform_name":                s.PlatformName,
		"support_email":                s.SupportEmail,
		"site_tagline":                 s.SiteTagline,
		"maintenance_mode":             s.MaintenanceMode,
		"notify_new_users":             s.NotifyNewUsers,
		"notify_new_bookings":          s.NotifyNewBookings,
		"notify_cleaner_applications":  s.NotifyCleanerApplications,
		"require_email_verification":   s.RequireEmailVerification,
		"require_2fa_admins":           s.Require2FAAdmins,
		"platform_commission_rate":     s.PlatformCommissionRate,
		"min_hourly_rate":              s.MinHourlyRate,
		"max_hourly_rate":              s.MaxHourlyRate,
		"default_currency":             s.DefaultCurrency,
		"min_booking_hours":            s.MinBookingHours,
		"max_booking_hours":            s.MaxBookingHours,
		"cancellation_window_hours":    s.CancellationWindowHours,
		"advance_booking_days":         s.AdvanceBookingDays,
		"allow_instant_booking":        s.AllowInstantBooking,
		"require_cleaner_verification": s.RequireCleanerVerification,
		"auto_approve_cleaners":        s.AutoApproveCleaners,
		"terms_url":                    s.TermsURL,
		"privacy_url":                  s.PrivacyURL,
	}
}

// DefaultPlatformSettings returns the seed row for a fresh install.
func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		PlatformName:               "The Cleaning Network",
		SupportEmail:               "support@cleaningnetwork.ca",
		MaintenanceMode:            false,
		NotifyNewUsers:             true,
		NotifyNewBookings:          true,
		NotifyCleanerApplications:  true,
		RequireEmailVerification:   true,
		Require2FAAdmins:           false,
		PlatformCommissionRate:     10,
		MinHourlyRate:              25,
		MaxHourlyRate:              150,
		DefaultCurrency:            "CAD",
		MinBookingHours:            2,
		MaxBookingHours:            8,
		CancellationWindowHours:    24,
		AdvanceBookingDays:         30,
		AllowInstantBooking:        true,
		RequireCleanerVerification: true,
		AutoApproveCleaners:        false,
	}
}
