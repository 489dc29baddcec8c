package api

// UserRecord is the flat transport form of a user.
type UserRecord struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

type NewUser struct {
	Username    string `json:"username"     validate:"required,max=150"`
	Email       string `json:"email"        validate:"required,email"`
	FirstName   string `json:"first_name"   validate:"required,max=150"`
	LastName    string `json:"last_name"    validate:"required,max=150"`
	Position    string `json:"position"     validate:"required,oneof=PROGRAMMER DESIGNER TESTER MANAGER ANALYST"`
	ProjectName string `json:"project_name" validate:"omitempty,max=64"`
}

type ProjectSchema struct {
	Name      string `json:"name"`
	UserCount int    `json:"user_count"`
}
