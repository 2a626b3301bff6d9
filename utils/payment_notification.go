package utils

import (
	"bytes"
	"fmt"
	"html/template"
)

// PaymentNotification is the payload for payment-status emails. Field
// names are the contract surface toward the notification consumers and
// must be preserved exactly.
type PaymentNotification struct {
	Type            string  `json:"type"` // "verified" | "rejected"
	CustomerEmail   string  `json:"customerEmail"`
	CustomerName    string  `json:"customerName"`
	PaymentID       string  `json:"paymentId"`
	BookingID       string  `json:"bookingId"`
	Amount          float64 `json:"amount"`
	CleanerName     string  `json:"cleanerName"`
	BookingDate     string  `json:"bookingDate"`
	RejectionReason string  `json:"rejectionReason,omitempty"`
}

var verifiedTmpl = template.Must(template.New("verified").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #059669; padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
    <h1 style="color: white; margin: 0; font-size: 24px;">Payment Verified ✓</h1>
  </div>
  <div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
    <p>Hi {{.CustomerName}},</p>
    <p>Great news! Your bank transfer payment has been verified and your booking is now confirmed.</p>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td style="padding: 8px 0; color: #6b7280;">Payment ID:</td><td style="text-align: right; font-weight: 600;">{{.PaymentID}}</td></tr>
      <tr><td style="padding: 8px 0; color: #6b7280;">Booking ID:</td><td style="text-align: right; font-weight: 600;">{{.BookingID}}</td></tr>
      <tr><td style="padding: 8px 0; color: #6b7280;">Cleaner:</td><td style="text-align: right; font-weight: 600;">{{.CleanerName}}</td></tr>
      <tr><td style="padding: 8px 0; color: #6b7280;">Scheduled Date:</td><td style="text-align: right; font-weight: 600;">{{.BookingDate}}</td></tr>
      <tr><td style="padding: 8px 0; color: #6b7280;">Amount Paid:</td><td style="text-align: right; font-weight: 600; color: #166534;">${{printf "%.2f" .Amount}}</td></tr>
    </table>
    <p>Your cleaner has been notified and will arrive at the scheduled time. Please ensure someone is available to let them in.</p>
    <p style="font-size: 12px; color: #9ca3af; text-align: center;">The Cleaning Network<br>This is an automated message. Please do not reply directly to this email.</p>
  </div>
</body>
</html>`))

var rejectedTmpl = template.Must(template.New("rejected").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #dc2626; padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
    <h1 style="color: white; margin: 0; font-size: 24px;">Payment Issue</h1>
  </div>
  <div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
    <p>Hi {{.CustomerName}},</p>
    <p>Unfortunately, we were unable to verify your bank transfer payment for the following booking.</p>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td style="padding: 8px 0; color: #6b7280;">Payment ID:</td><td style="text-align: right; font-weight: 600;">{{.PaymentID}}</td></tr>
      <tr><td style="padding: 8px 0; color: #6b7280;">Booking ID:</td><td style="text-align: right; font-weight: 600;">{{.BookingID}}</td></tr>
      <tr><td style="padding: 8px 0; color: #6b7280;">Cleaner:</td><td style="text-align: right; font-weight: 600;">{{.CleanerName}}</td></tr>
      <tr><td style="padding: 8px 0; color: #6b7280;">Expected Amount:</td><td style="text-align: right; font-weight: 600;">${{printf "%.2f" .Amount}}</td></tr>
    </table>
    <p style="font-weight: 600; color: #9a3412;">Reason for rejection:</p>
    <p style="color: #c2410c;">{{if .RejectionReason}}{{.RejectionReason}}{{else}}Payment could not be verified{{end}}</p>
    <p>Your booking has been cancelled. If you believe this is an error, please contact our support team with your payment confirmation details.</p>
    <p>You can rebook the service and try again with a different payment method if you prefer.</p>
    <p style="font-size: 12px; color: #9ca3af; text-align: center;">The Cleaning Network<br>This is an automated message. Please do not reply directly to this email.</p>
  </div>
</body>
</html>`))

// SendPaymentNotification renders and sends the verified/rejected email
// for a bank-transfer payment.
func SendPaymentNotification(n PaymentNotification) error {
	if n.Type != "verified" && n.Type != "rejected" {
		return fmt.Errorf("unknown payment notification type %q", n.Type)
	}
	if n.CustomerEmail == "" || n.CustomerName == "" || n.PaymentID == "" {
		return fmt.Errorf("missing required fields")
	}

	var subject string
	var tmpl *template.Template
	if n.Type == "verified" {
		subject = fmt.Sprintf("Payment Verified - Booking %s Confirmed", n.BookingID)
		tmpl = verifiedTmpl
	} else {
		subject = fmt.Sprintf("Payment Issue - Booking %s", n.BookingID)
		tmpl = rejectedTmpl
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, n); err != nil {
		return err
	}

	return SendEmail(n.CustomerEmail, subject, body.String())
}
