package seed

import "github.com/noah-isme/school-portal-api/internal/models"

// AssignHomerooms hands out one homeroom teacher per class, consuming a
// copy of the teacher pool front-to-back. When teachers run out the
// remaining classes keep a nil homeroom; when classes run out the leftover
// teachers simply hold no homeroom. Neither case is an error.
func AssignHomerooms(classes []models.Class, teachers []models.User) {
	available := append([]models.User(nil), teachers...)
	for i := range classes {
		if len(available) == 0 {
			return
		}
		id := available[0].ID
		classes[i].HomeroomTeacherID = &id
		available = available[1:]
	}
}
