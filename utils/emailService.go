package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"stayhub/config"
)

// SendWelcomeEmail sends a greeting to a freshly created user. Called from
// a goroutine after the account is persisted; delivery failures are logged
// and never fail the request.
func SendWelcomeEmail(name, email string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword // App password

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping welcome email.")
		return nil
	}

	to := []string{
		email,
	}

	subject := "Subject: Welcome to StayHub\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333;">Welcome, %s!</h2>
					<p style="color: #555;">Your StayHub account has been created. You can now list places, browse stays and leave reviews.</p>
					<p style="color: #999; font-size: 12px;">If you did not expect this email, please contact support.</p>
				</div>
			</body>
		</html>`, name)

	message := []byte(subject + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		log.Printf("Error while sending welcome email: %v", err)
		return err
	}

	log.Println("Welcome email sent successfully to", email)
	return nil
}
