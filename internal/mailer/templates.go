package mailer

import (
	"bytes"
	"html/template"
	"time"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Welcome to the HRMS Portal</h2>
  <p>Hello {{.EmployeeName}},</p>
  <p>Your account has been created. Use the temporary credentials below to sign in, then change your password.</p>
  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Temporary password:</strong> {{.TempPassword}}</p>
  </div>
  <p><a href="{{.ResetLink}}">Sign in</a></p>
  <p>Best regards,<br>HR Team</p>
</div>`))

var requestTmpl = template.Must(template.New("request").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">New Request Pending Approval</h2>
  <p>Hello {{.ManagerName}},</p>
  <p>{{.EmployeeName}} ({{.EmployeeEmail}}) has submitted a request that needs your approval.</p>
  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Type:</strong> {{.RequestTypeName}}</p>
    <p><strong>From:</strong> {{.From}}</p>
    <p><strong>To:</strong> {{.To}}</p>
    <p><strong>Description:</strong> {{.Description}}</p>
  </div>
  <p>Please review it in the HRMS portal.</p>
  <p>Best regards,<br>HR Team</p>
</div>`))

var passwordUpdatedTmpl = template.Must(template.New("passwordUpdated").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Password Updated Successfully</h2>
  <p>Hello {{.EmployeeName}},</p>
  <p>Your password has been successfully updated for your HRMS account.</p>
  <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Account Details:</strong></p>
    <p>Email: {{.Email}}</p>
    <p>Username: {{.UserName}}</p>
    <p>Updated: {{.UpdatedAt}}</p>
  </div>
  <p>If you did not make this change, please contact the HR department immediately.</p>
  <p>Best regards,<br>HR Team</p>
</div>`))

func renderWelcome(employeeName, email, tempPassword, resetLink string) (string, error) {
	return render(welcomeTmpl, map[string]string{
		"EmployeeName": employeeName,
		"Email":        email,
		"TempPassword": tempPassword,
		"ResetLink":    resetLink,
	})
}

func renderRequestNotification(managerName, employeeName, employeeEmail, requestTypeName, description string, from, until time.Time) (string, error) {
	return render(requestTmpl, map[string]string{
		"ManagerName":     managerName,
		"EmployeeName":    employeeName,
		"EmployeeEmail":   employeeEmail,
		"RequestTypeName": requestTypeName,
		"Description":     description,
		"From":            from.Format("2006-01-02"),
		"To":              until.Format("2006-01-02"),
	})
}

func renderPasswordUpdated(employeeName, email, userName string) (string, error) {
	return render(passwordUpdatedTmpl, map[string]string{
		"EmployeeName": employeeName,
		"Email":        email,
		"UserName":     userName,
		"UpdatedAt":    time.Now().Format(time.RFC1123),
	})
}

func render(tmpl *template.Template, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
