package user

type RegisterInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	GroupID  *uint  `json:"group_id"`
}

type LoginInput struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

type RoleInput struct {
	Role Role `json:"role" binding:"required"`
}

type AssignGroupInput struct {
	GroupID *uint `json:"group_id"`
}
