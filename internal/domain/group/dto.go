package group

type CreateGroupDTO struct {
	Identifier string `json:"identifier" binding:"required"`
	CourseID   uint   `json:"course_id" binding:"required"`
}
