package dto

// UpsertUserRequest creates a user row or overwrites its name,
// keyed on email.
type UpsertUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name,omitempty"`
}

type UpsertUserResponse struct {
	OK bool `json:"ok"`
}
