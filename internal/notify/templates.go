package notify

import (
	"fmt"

	"beautybar/pkg/model"
)

// PasswordResetEmail renders the branded reset mail with a link back to the
// admin panel.
func PasswordResetEmail(frontendURL, resetToken, userName string) (subject, html string) {
	resetLink := fmt.Sprintf("%s/admin?reset_token=%s", frontendURL, resetToken)

	subject = "Reset Your BeautyBar609 Password"
	html = fmt.Sprintf(`
    <html>
    <body style="font-family: 'Helvetica Neue', Arial, sans-serif; background-color: #050505; color: #F9F1D8; padding: 40px;">
        <div style="max-width: 600px; margin: 0 auto; background-color: #0F0F0F; padding: 40px; border: 1px solid #333;">
            <h1 style="color: #D4AF37; font-family: Georgia, serif; margin-bottom: 20px;">BeautyBar609</h1>
            <h2 style="color: #F9F1D8; margin-bottom: 30px;">Password Reset Request</h2>

            <p style="color: #ccc; line-height: 1.6;">Hi %s,</p>

            <p style="color: #ccc; line-height: 1.6;">We received a request to reset your password. Click the button below to create a new password:</p>

            <div style="text-align: center; margin: 30px 0;">
                <a href="%s" style="background-color: #D4AF37; color: #050505; padding: 15px 30px; text-decoration: none; font-weight: bold; text-transform: uppercase; letter-spacing: 1px;">Reset Password</a>
            </div>

            <p style="color: #888; font-size: 14px;">Or copy this link: <span style="color: #D4AF37;">%s</span></p>

            <p style="color: #888; font-size: 14px; margin-top: 30px;">This link expires in 1 hour. If you didn't request this reset, you can safely ignore this email.</p>

            <hr style="border: none; border-top: 1px solid #333; margin: 30px 0;">

            <p style="color: #666; font-size: 12px; text-align: center;">
                BeautyBar609 - Glow From Lashes To Tips<br>
                57, Arowolo Street, Off Agbe Road, Abule Egba
            </p>
        </div>
    </body>
    </html>
    `, userName, resetLink, resetLink)

	return subject, html
}

// BookingNotificationEmail renders the new-booking alert for the business
// mailbox.
func BookingNotificationEmail(b *model.Booking, smsSent bool) (subject, html string) {
	email := b.Email
	if email == "" {
		email = "Not provided"
	}
	notes := b.Notes
	if notes == "" {
		notes = "None"
	}
	smsStatus := "No"
	if smsSent {
		smsStatus = "Yes"
	}

	subject = fmt.Sprintf("New Home Service Booking - %s", b.Name)
	html = fmt.Sprintf(`
    <html>
    <body style="font-family: Arial, sans-serif; background-color: #050505; color: #F9F1D8; padding: 20px;">
        <div style="max-width: 600px; margin: 0 auto; background-color: #0F0F0F; padding: 30px; border: 1px solid #333;">
            <h1 style="color: #D4AF37;">New Home Service Booking!</h1>
            <p><strong>Client:</strong> %s</p>
            <p><strong>Phone:</strong> %s</p>
            <p><strong>Email:</strong> %s</p>
            <p><strong>Service:</strong> %s</p>
            <p><strong>Date:</strong> %s</p>
            <p><strong>Time:</strong> %s</p>
            <p><strong>Address:</strong> %s</p>
            <p><strong>Notes:</strong> %s</p>
            <p><strong>SMS Sent:</strong> %s</p>
        </div>
    </body>
    </html>
    `, b.Name, b.Phone, email, b.Service, b.PreferredDate, b.PreferredTime, b.Address, notes, smsStatus)

	return subject, html
}
