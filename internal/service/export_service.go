package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/dto"
	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/export"
)

// Grid label columns. Every other header is a zero-padded day of month.
const (
	studentGridLabel = "Student"
	teacherGridLabel = "Teacher"
)

type exportStore interface {
	ClassByID(id string) (models.Class, bool)
	StudentsOf(classID string) []models.Student
	AttendanceForClassMonth(classID, monthPrefix string) []models.AttendanceRecord
	TeacherAttendance(monthPrefix string) []models.TeacherAttendanceRecord
	Teachers() []models.User
}

// ExportService builds monthly attendance grids and renders them as CSV,
// plus report card PDFs.
type ExportService struct {
	store  exportStore
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewExportService builds an ExportService.
func NewExportService(store exportStore, csv *export.CSVExporter, pdf *export.PDFExporter, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{store: store, csv: csv, pdf: pdf, logger: logger}
}

// StudentGrid assembles the monthly grid for one class: one row per
// student, one single-character status cell per day. A day with any Absent
// record dominates Late, which dominates Present; days without records are
// blank.
func (s *ExportService) StudentGrid(classID string, year int, month time.Month) (export.Dataset, error) {
	if _, ok := s.store.ClassByID(classID); !ok {
		return export.Dataset{}, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}

	days := daysInMonth(year, month)
	data := export.Dataset{Headers: gridHeaders(studentGridLabel, days)}

	records := s.store.AttendanceForClassMonth(classID, monthPrefix(year, month))
	byStudentDay := make(map[int]map[string]models.AttendanceStatus)
	for _, r := range records {
		byDay, ok := byStudentDay[r.StudentID]
		if !ok {
			byDay = make(map[string]models.AttendanceStatus)
			byStudentDay[r.StudentID] = byDay
		}
		byDay[r.Date] = worseStatus(byDay[r.Date], r.Status)
	}

	for _, student := range s.store.StudentsOf(classID) {
		row := map[string]string{studentGridLabel: student.Name}
		for day := 1; day <= days; day++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
			if status, ok := byStudentDay[student.ID][date]; ok {
				row[fmt.Sprintf("%02d", day)] = status.Code()
			}
		}
		data.Rows = append(data.Rows, row)
	}
	return data, nil
}

// TeacherGrid assembles the monthly grid across all teachers, one cell per
// day holding the first letter of the status.
func (s *ExportService) TeacherGrid(year int, month time.Month) export.Dataset {
	days := daysInMonth(year, month)
	data := export.Dataset{Headers: gridHeaders(teacherGridLabel, days)}

	byTeacherDate := make(map[int]map[string]models.TeacherAttendanceStatus)
	for _, r := range s.store.TeacherAttendance(monthPrefix(year, month)) {
		byDate, ok := byTeacherDate[r.TeacherID]
		if !ok {
			byDate = make(map[string]models.TeacherAttendanceStatus)
			byTeacherDate[r.TeacherID] = byDate
		}
		byDate[r.Date] = r.Status
	}

	for _, teacher := range s.store.Teachers() {
		row := map[string]string{teacherGridLabel: teacher.Name}
		for day := 1; day <= days; day++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
			if status, ok := byTeacherDate[teacher.ID][date]; ok {
				row[fmt.Sprintf("%02d", day)] = string([]rune(string(status))[0:1])
			}
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

// RenderCSV serializes a grid dataset.
func (s *ExportService) RenderCSV(data export.Dataset) ([]byte, error) {
	return s.csv.Render(data)
}

// ParseCSV reads a rendered grid back into a dataset.
func (s *ExportService) ParseCSV(raw []byte) (export.Dataset, error) {
	return s.csv.Parse(raw)
}

// ReportCardPDF renders a student report card as a tabular PDF.
func (s *ExportService) ReportCardPDF(card *dto.ReportCard) ([]byte, error) {
	data := export.Dataset{Headers: []string{"Subject", "Marks Obtained", "Max Marks"}}
	for _, row := range card.Rows {
		data.Rows = append(data.Rows, map[string]string{
			"Subject":        row.SubjectName,
			"Marks Obtained": fmt.Sprintf("%d", row.Obtained),
			"Max Marks":      fmt.Sprintf("%d", row.MaxMarks),
		})
	}
	data.Rows = append(data.Rows, map[string]string{
		"Subject":        "Total",
		"Marks Obtained": fmt.Sprintf("%d", card.Total),
		"Max Marks":      fmt.Sprintf("%d", card.MaxTotal),
	})

	title := fmt.Sprintf("Report Card - %s (%s)", card.StudentName, card.ExamName)
	return s.pdf.Render(data, title)
}

func gridHeaders(label string, days int) []string {
	headers := make([]string, 0, days+1)
	headers = append(headers, label)
	for day := 1; day <= days; day++ {
		headers = append(headers, fmt.Sprintf("%02d", day))
	}
	return headers
}

func monthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// worseStatus collapses a day's periods to one cell: Absent beats Late
// beats Present.
func worseStatus(current, next models.AttendanceStatus) models.AttendanceStatus {
	if current == models.AttendanceStatusAbsent || next == models.AttendanceStatusAbsent {
		return models.AttendanceStatusAbsent
	}
	if current == models.AttendanceStatusLate || next == models.AttendanceStatusLate {
		return models.AttendanceStatusLate
	}
	return models.AttendanceStatusPresent
}
