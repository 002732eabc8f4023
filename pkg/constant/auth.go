package constant

const (
	CREATED              = "%s created successfully"
	UPDATED              = "Updated successfully"
	DELETED              = "Deleted successfully"
	INVALID_REQUEST      = "Invalid request payload"
	SOMETHING_WENT_WRONG = "something went wrong"

	REGISTRATION_SUCCESS = "Registration successful. Please check your email to verify your account."
	EMAIL_VERIFIED       = "Email successfully verified. You can now login."
	INVALID_CREDENTIALS  = "Invalid credentials."
	EMAIL_EXISTS_MSG     = "A user with this email already exists."
	FORGOT_PASSWORD_SENT = "If an account with this email exists, a password reset link has been sent."
	PASSWORD_RESET_DONE  = "Password has been successfully reset."
	INVALID_TOKEN_MSG    = "Invalid or expired token."
	TOKEN_EXPIRED_MSG    = "Token has expired."
)
