package constant

// Audit action names published to the user-action queue.
const (
	ActionUserRegistered      = "USER_REGISTERED"
	ActionLogin               = "LOGIN"
	ActionProfileUpdated      = "PROFILE_UPDATED"
	ActionAccountDeleted      = "ACCOUNT_DELETED"
	ActionDailyEntryCreated   = "DAILY_ENTRY_CREATED"
	ActionSuggestionGenerated = "HEALTH_SUGGESTION_GENERATED"
)
