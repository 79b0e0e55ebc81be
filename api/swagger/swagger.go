package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "School Portal API",
        "description": "School management portal backed by a deterministic mock dataset",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Role-aware login and session restore"},
        {"name": "Roster", "description": "Classes, students, teachers, subjects, exams"},
        {"name": "Schedule", "description": "Timetables and coverage"},
        {"name": "Attendance", "description": "Student and teacher attendance"},
        {"name": "Leaves", "description": "Leave request lifecycle"},
        {"name": "Announcements", "description": "Admin announcements"},
        {"name": "Marks", "description": "Exam marks"},
        {"name": "Reports", "description": "CSV and PDF exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Logout current session",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/auth/session": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Restore current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Session expired", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/classes": {
            "get": {
                "tags": ["Roster"],
                "summary": "List classes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/classes/{id}/students": {
            "get": {
                "tags": ["Roster"],
                "summary": "List students of a class",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Class not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/subjects": {
            "get": {
                "tags": ["Roster"],
                "summary": "List subjects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/exams": {
            "get": {
                "tags": ["Roster"],
                "summary": "List exams",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/teachers": {
            "get": {
                "tags": ["Roster"],
                "summary": "List teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Roster"],
                "summary": "Register a teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeacherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/students": {
            "post": {
                "tags": ["Roster"],
                "summary": "Enroll a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Class not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Timetable for a class or teacher",
                "parameters": [
                    {"name": "classId", "in": "query", "type": "string"},
                    {"name": "teacherId", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedule/coverage": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Timetable coverage summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Class attendance for a date",
                "parameters": [
                    {"name": "classId", "in": "query", "required": true, "type": "string"},
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "period", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Record class attendance",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkAttendanceRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/attendance/history": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Student attendance history",
                "parameters": [
                    {"name": "studentId", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/teacher-attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Teacher attendance records",
                "parameters": [
                    {"name": "month", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Record teacher attendance",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkTeacherAttendanceRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/leaves": {
            "get": {
                "tags": ["Leaves"],
                "summary": "List leave requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Leaves"],
                "summary": "File a leave request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ApplyLeaveRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/leaves/{id}/approve": {
            "post": {
                "tags": ["Leaves"],
                "summary": "Approve a leave request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already finalized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/leaves/{id}/reject": {
            "post": {
                "tags": ["Leaves"],
                "summary": "Reject a leave request",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already finalized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/leaves/suggest-reason": {
            "post": {
                "tags": ["Leaves"],
                "summary": "Draft a leave reason",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SuggestReasonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List announcements",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Announcements"],
                "summary": "Publish an announcement",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveAnnouncementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/announcements/{id}": {
            "put": {
                "tags": ["Announcements"],
                "summary": "Edit an announcement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveAnnouncementRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Announcements"],
                "summary": "Delete an announcement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/marks": {
            "get": {
                "tags": ["Marks"],
                "summary": "Marks for a class and exam",
                "parameters": [
                    {"name": "classId", "in": "query", "required": true, "type": "string"},
                    {"name": "examId", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Marks"],
                "summary": "Save exam marks",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveMarksRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/students/{id}/report-card": {
            "get": {
                "tags": ["Reports"],
                "summary": "Student report card (PDF)",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "examId", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "PDF payload"}
                }
            }
        },
        "/api/v1/reports/attendance.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Monthly class attendance grid (CSV)",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "classId", "in": "query", "required": true, "type": "string"},
                    {"name": "year", "in": "query", "required": true, "type": "integer"},
                    {"name": "month", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        },
        "/api/v1/reports/teacher-attendance.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Monthly teacher attendance grid (CSV)",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "year", "in": "query", "required": true, "type": "integer"},
                    {"name": "month", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "CSV payload"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "loginId": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "teacher", "student"]}
            },
            "required": ["loginId", "password", "role"]
        },
        "CreateTeacherRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "qualifications": {"type": "string"}
            },
            "required": ["name", "email", "password"]
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "classId": {"type": "string"},
                "name": {"type": "string"},
                "dob": {"type": "string"}
            },
            "required": ["classId", "name", "dob"]
        },
        "MarkAttendanceRequest": {
            "type": "object",
            "properties": {
                "classId": {"type": "string"},
                "date": {"type": "string"},
                "period": {"type": "integer"},
                "entries": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AttendanceEntry"}
                }
            },
            "required": ["classId", "date", "period", "entries"]
        },
        "AttendanceEntry": {
            "type": "object",
            "properties": {
                "studentId": {"type": "integer"},
                "status": {"type": "string", "enum": ["Present", "Absent", "Late"]}
            },
            "required": ["studentId", "status"]
        },
        "MarkTeacherAttendanceRequest": {
            "type": "object",
            "properties": {
                "teacherId": {"type": "integer"},
                "date": {"type": "string"},
                "status": {"type": "string", "enum": ["Present", "On Leave"]}
            },
            "required": ["teacherId", "date", "status"]
        },
        "ApplyLeaveRequest": {
            "type": "object",
            "properties": {
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "reason": {"type": "string"}
            },
            "required": ["startDate", "endDate", "reason"]
        },
        "SuggestReasonRequest": {
            "type": "object",
            "properties": {
                "keyword": {"type": "string"}
            },
            "required": ["keyword"]
        },
        "SaveAnnouncementRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"}
            },
            "required": ["title", "content"]
        },
        "SaveMarksRequest": {
            "type": "object",
            "properties": {
                "classId": {"type": "string"},
                "examId": {"type": "integer"},
                "entries": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/MarkEntry"}
                }
            },
            "required": ["classId", "examId", "entries"]
        },
        "MarkEntry": {
            "type": "object",
            "properties": {
                "studentId": {"type": "integer"},
                "subjectId": {"type": "string"},
                "marksObtained": {"type": "integer"}
            },
            "required": ["studentId", "subjectId"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
