package course

type CreateCourseDTO struct {
	Name       string `json:"name" binding:"required"`
	Identifier int    `json:"identifier" binding:"required"`
}
