package constant

const (
	PRODUCT_NOT_FOUND      = "Product not found"
	REVIEW_NOT_FOUND       = "Review not found"
	USER_NOT_FOUND         = "User not found"
	DUPLICATE_BARCODE      = "Product with this barcode already exists"
	DUPLICATE_REVIEW_MSG   = "You have already reviewed this product"
	REVIEW_NOT_OWNED       = "You can only modify your own reviews"
	PROFILE_UPDATED        = "Profile updated."
	ROUTINE_UPDATED        = "Routine updated."
	PREMIUM_SUBSCRIBED     = "Successfully subscribed to premium"
	RATE_LIMITED_MSG       = "Too many requests from this IP, please try again later."
	ROUTINE_MAX_ITEMS      = 20
	INGREDIENT_SUGGEST_MAX = 20
	OBF_IMPORT_DESCRIPTION = "Imported from OpenBeautyFacts"
	OBF_DEFAULT_CATEGORY   = "Uncategorized"
)
