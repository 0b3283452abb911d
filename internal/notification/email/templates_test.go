package email

import (
	"strings"
	"testing"
)

func TestBookingStatusTemplateRendersAllFields(t *testing.T) {
	content, err := renderEmailTemplate("booking_status.html", bookingStatusEmailData{
		baseEmailData: baseEmailData{
			Title:   "Booking update",
			Heading: "Booking update",
		},
		Name:      "Sita Sharma",
		Service:   "wedding photography",
		NewStatus: "approved",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Sita Sharma", "wedding photography", "approved", "Booking update"} {
		if !strings.Contains(content, want) {
			t.Fatalf("rendered email missing %q", want)
		}
	}
	if strings.Contains(content, "{{") {
		t.Fatal("rendered email contains unexecuted template syntax")
	}
}

func TestBookingReminderTemplateOmitsEmptyAddress(t *testing.T) {
	content, err := renderEmailTemplate("booking_reminder.html", bookingReminderEmailData{
		baseEmailData: baseEmailData{
			Title:   "Booking reminder",
			Heading: "Your booking is coming up",
		},
		Name:    "Ram Thapa",
		Service: "house puja",
		Date:    "2026-09-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(content, "Location:") {
		t.Fatal("expected the location line to be omitted without an address")
	}
	if !strings.Contains(content, "2026-09-15") {
		t.Fatal("rendered email missing the booking date")
	}
}

func TestPasswordResetTemplateRendersCTA(t *testing.T) {
	content, err := renderEmailTemplate("password_reset.html", passwordResetEmailData{
		baseEmailData: baseEmailData{
			Title:    "Reset your password",
			Heading:  "Reset your password",
			CTALabel: "Choose a new password",
			CTAURL:   "https://admin.example.com/reset-password?token=abc",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(content, "https://admin.example.com/reset-password?token=abc") {
		t.Fatal("rendered email missing the reset link")
	}
	if !strings.Contains(content, "Choose a new password") {
		t.Fatal("rendered email missing the CTA label")
	}
}
