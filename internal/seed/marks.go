package seed

import "github.com/noah-isme/school-portal-api/internal/models"

// synthesizeMarks writes one mark for every (exam, class, student, subject)
// quadruple. Marks land uniformly in [0.4*maxMarks, maxMarks), so nobody
// generated fails outright and nobody hits a perfect score.
func (g *Generator) synthesizeMarks(snap *Snapshot) {
	for _, exam := range snap.Exams {
		for _, cls := range snap.Classes {
			for _, student := range snap.Students[cls.ID] {
				for _, subject := range snap.Subjects {
					obtained := int(float64(exam.MaxMarks) * (0.4 + g.rng.Float64()*0.6))
					snap.Marks = append(snap.Marks, models.Mark{
						StudentID:     student.ID,
						ClassID:       cls.ID,
						SubjectID:     subject.ID,
						ExamID:        exam.ID,
						MarksObtained: obtained,
					})
				}
			}
		}
	}
}
