package responses

import "time"

type AuthToken struct {
	Token  string       `json:"token"`
	Role   string       `json:"role"`
	UserID string       `json:"userId"`
	User   *UserSummary `json:"user,omitempty"`
}

type UserSummary struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type UserProfile struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
