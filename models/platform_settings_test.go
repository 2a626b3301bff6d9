package models

import "testing"

func TestPlatformSettingsChanged(t *testing.T) {
	base := DefaultPlatformSettings()

	t.Run("identical input is not dirty", func(t *testing.T) {
		in := DefaultPlatformSettings()
		if base.Changed(&in) {
			t.Error("expected unchanged settings to report no change")
		}
	})

	t.Run("resubmitting the same value is not dirty", func(t *testing.T) {
		in := DefaultPlatformSettings()
		in.PlatformCommissionRate = 10 // already 10
		if base.Changed(&in) {
			t.Error("expected same-value write to report no change")
		}
	})

	t.Run("one changed field is dirty", func(t *testing.T) {
		in := DefaultPlatformSettings()
		in.PlatformCommissionRate = 12
		if !base.Changed(&in) {
			t.Error("expected commission change to be detected")
		}
	})

	t.Run("bool flip is dirty", func(t *testing.T) {
		in := DefaultPlatformSettings()
		in.MaintenanceMode = true
		if !base.Changed(&in) {
			t.Error("expected maintenance mode flip to be detected")
		}
	})

	t.Run("revert to stored value is not dirty", func(t *testing.T) {
		in := DefaultPlatformSettings()
		in.PlatformCommissionRate = 12
		in.PlatformCommissionRate = base.PlatformCommissionRate
		if base.Changed(&in) {
			t.Error("expected reverted edit to report no change")
		}
	})

	t.Run("audit fields do not count", func(t *testing.T) {
		in := DefaultPlatformSettings()
		other := uint(42)
		in.UpdatedByID = &other
		if base.Changed(&in) {
			t.Error("expected audit-only difference to report no change")
		}
	})
}

func TestEditableFieldsCoversComparedFields(t *testing.T) {
	s := DefaultPlatformSettings()
	fields := s.EditableFields()

	// 22 editable fields; id and audit columns stay out of the write set.
	if len(fields) != 22 {
		t.Errorf("expected 22 editable fields, got %d", len(fields))
	}
	for _, forbidden := range []string{"id", "updated_at", "updated_by"} {
		if _, ok := fields[forbidden]; ok {
			t.Errorf("field %q must not be in the write set", forbidden)
		}
	}
	if fields["platform_commission_rate"] != s.PlatformCommissionRate {
		t.Errorf("expected commission %v, got %v", s.PlatformCommissionRate, fields["platform_commission_rate"])
	}
}
