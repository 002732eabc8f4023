package constant

const (
	WAITLIST_JOINED          = "Successfully joined the waitlist. Please check your email to verify."
	WAITLIST_ALREADY_ON      = "You are already on the waitlist."
	WAITLIST_RESENT          = "You are already on the waitlist. A new verification email has been sent."
	WAITLIST_VERIFIED        = "Email verified successfully!"
	WAITLIST_REFERRAL_POINTS = 10
)
