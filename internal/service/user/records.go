package user

import (
	"user-directory/internal/http/api"
	"user-directory/internal/models"
)

// ToRecords converts users to transport records, keeping their order.
// The result is never nil.
func ToRecords(users []*models.User) []api.UserRecord {
	records := make([]api.UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, api.UserRecord{
			Username:  u.Username,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Position:  string(u.Position),
		})
	}
	return records
}
