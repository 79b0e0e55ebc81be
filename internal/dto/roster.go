package dto

// CreateTeacherRequest registers a new teacher account.
type CreateTeacherRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Qualifications string `json:"qualifications"`
}

// CreateStudentRequest enrolls a new student into a class.
type CreateStudentRequest struct {
	ClassID string `json:"classId" validate:"required"`
	Name    string `json:"name" validate:"required"`
	DOB     string `json:"dob" validate:"required,datetime=2006-01-02"`
}
