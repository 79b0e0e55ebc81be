package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-portal-api/internal/middleware"
	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/service"
)

// Set bundles the portal's handlers for route registration.
type Set struct {
	Auth         *AuthHandler
	Roster       *RosterHandler
	Schedule     *ScheduleHandler
	Attendance   *AttendanceHandler
	Leave        *LeaveHandler
	Announcement *AnnouncementHandler
	Marks        *MarksHandler
	Report       *ReportHandler
}

// Register mounts every API route under the given prefix, guarded by JWT
// and role checks.
func Register(r *gin.Engine, prefix string, authSvc *service.AuthService, set Set) {
	api := r.Group(prefix)

	api.POST("/auth/login", set.Auth.Login)
	api.GET("/announcements", set.Announcement.List)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))

	authed.POST("/auth/logout", set.Auth.Logout)
	authed.GET("/auth/session", set.Auth.Session)

	authed.GET("/classes", set.Roster.Classes)
	authed.GET("/classes/:id/students", set.Roster.ClassStudents)
	authed.GET("/subjects", set.Roster.Subjects)
	authed.GET("/exams", set.Roster.Exams)
	authed.GET("/teachers", set.Roster.Teachers)

	authed.GET("/schedule", set.Schedule.Timetable)
	authed.GET("/schedule/coverage", set.Schedule.Coverage)

	authed.GET("/attendance/history", set.Attendance.StudentHistory)
	authed.GET("/students/:id/report-card", set.Report.ReportCard)

	staff := authed.Group("")
	staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))

	staff.GET("/attendance", set.Attendance.List)
	staff.POST("/attendance", set.Attendance.Mark)
	staff.GET("/teacher-attendance", set.Attendance.TeacherOverview)

	staff.GET("/leaves", set.Leave.List)
	staff.GET("/marks", set.Marks.List)
	staff.POST("/marks", set.Marks.Save)

	staff.GET("/reports/attendance.csv", set.Report.StudentAttendanceCSV)
	staff.GET("/reports/teacher-attendance.csv", set.Report.TeacherAttendanceCSV)

	teachers := authed.Group("")
	teachers.Use(middleware.RequireRoles(models.RoleTeacher))

	teachers.POST("/leaves", set.Leave.Apply)
	teachers.POST("/leaves/suggest-reason", set.Leave.SuggestReason)

	admin := authed.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))

	admin.POST("/teachers", set.Roster.CreateTeacher)
	admin.POST("/students", set.Roster.CreateStudent)
	admin.POST("/teacher-attendance", set.Attendance.MarkTeacher)
	admin.POST("/leaves/:id/approve", set.Leave.Approve)
	admin.POST("/leaves/:id/reject", set.Leave.Reject)
	admin.POST("/announcements", set.Announcement.Create)
	admin.PUT("/announcements/:id", set.Announcement.Update)
	admin.DELETE("/announcements/:id", set.Announcement.Delete)
}
