package kv

const (
	UsersKey       = "users"
	CurrentUserKey = "currentUser"
)

// LoansKey is the key of a user's loan ledger.
func LoansKey(username string) string {
	return "studentLoans_" + username
}

// AchievementsKey is the key of a user's earned-achievement cache.
func AchievementsKey(username string) string {
	return "achievements_" + username
}
