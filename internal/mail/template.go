package mail

import "fmt"

// CredentialSubject is the subject line for credential delivery mails.
const CredentialSubject = "Welcome to MyPorto CRM!"

// CredentialTemplate renders the mail sent to an employee when an account
// is created or a password is reset by an administrator.
func CredentialTemplate(name, plainPassword string) string {
	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; background-color:#f9f9f9; padding:20px;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width:600px; margin:auto; background:#ffffff; border:1px solid #ddd; border-radius:6px;">
      <tr>
        <td style="background:#004aad; color:#fff; padding:15px; text-align:center; font-size:18px; font-weight:bold;">
          Welcome to MyPorto CRM
        </td>
      </tr>
      <tr>
        <td style="padding:20px; color:#333;">
          <p>Dear %s,</p>
          <p>We&rsquo;re glad to have you onboard. Here are your login credentials:</p>
          <p><strong>Password:</strong> %s</p>
          <p>Best regards,<br><br>The MyPorto CRM Team</p>
        </td>
      </tr>
    </table>
  </body>
</html>
`, name, plainPassword)
}
