package seed

import (
	"time"

	"github.com/noah-isme/school-portal-api/internal/models"
)

// The fixed catalogs below seed every generated snapshot. Students, the
// timetable, attendance and marks are synthesized on top of them.

func staffCatalog() []models.User {
	return []models.User{
		{ID: 1, TeacherID: "TCH1001", Name: "Priya Sharma", Email: "teacher@school.com", Role: models.RoleTeacher, Status: models.UserStatusActive, Qualifications: "M.A. in English Literature", ProfilePicURL: "https://placehold.co/128x128/e9d5ff/4c1d95?text=PS"},
		{ID: 2, Name: "Raj Singh (Principal)", Email: "admin@school.com", Role: models.RoleAdmin, Status: models.UserStatusActive},
		{ID: 3, TeacherID: "TCH1002", Name: "Anjali Gupta", Email: "teacher2@school.com", Role: models.RoleTeacher, Status: models.UserStatusActive, Qualifications: "M.Sc. in Physics", ProfilePicURL: "https://placehold.co/128x128/c7d2fe/312e81?text=AG"},
		{ID: 4, TeacherID: "TCH1003", Name: "Vikram Rathore", Email: "teacher3@school.com", Role: models.RoleTeacher, Status: models.UserStatusActive, Qualifications: "B.Ed, M.A. in History", ProfilePicURL: "https://placehold.co/128x128/bbf7d0/14532d?text=VR"},
		{ID: 5, TeacherID: "TCH1004", Name: "Sunita Menon", Email: "teacher4@school.com", Role: models.RoleTeacher, Status: models.UserStatusActive, Qualifications: "M.Sc. in Chemistry", ProfilePicURL: "https://placehold.co/128x128/fecaca/7f1d1d?text=SM"},
		{ID: 6, TeacherID: "TCH1005", Name: "Ravi Kumar", Email: "teacher5@school.com", Role: models.RoleTeacher, Status: models.UserStatusActive, Qualifications: "MCA", ProfilePicURL: "https://placehold.co/128x128/a5f3fc/0e7490?text=RK"},
		{ID: 7, TeacherID: "TCH1006", Name: "Meera Desai", Email: "teacher6@school.com", Role: models.RoleTeacher, Status: models.UserStatusActive, Qualifications: "M.A. in Hindi", ProfilePicURL: "https://placehold.co/128x128/fed7aa/854d0e?text=MD"},
		{ID: 8, TeacherID: "TCH1007", Name: "Sanjay Joshi", Email: "teacher7@school.com", Role: models.RoleTeacher, Status: models.UserStatusActive, Qualifications: "M.Sc. in Mathematics", ProfilePicURL: "https://placehold.co/128x128/d1d5db/1f2937?text=SJ"},
		{ID: 9, TeacherID: "TCH1008", Name: "Kavita Iyer", Email: "teacher8@school.com", Role: models.RoleTeacher, Status: models.UserStatusActive, Qualifications: "B.P.Ed (Physical Education)", ProfilePicURL: "https://placehold.co/128x128/fbcfe8/86198f?text=KI"},
	}
}

func classCatalog() []models.Class {
	return []models.Class{
		{ID: "C1", Name: "Grade 1 - Section A"},
		{ID: "C2", Name: "Grade 2 - Section A"},
		{ID: "C3", Name: "Grade 3 - Section A"},
		{ID: "C4", Name: "Grade 4 - Section A"},
		{ID: "C5", Name: "Grade 5 - Section A"},
		{ID: "C6", Name: "Grade 6 - Section A"},
		{ID: "C7", Name: "Grade 7 - Section A"},
		{ID: "C8", Name: "Grade 8 - Section A"},
	}
}

func subjectCatalog() []models.Subject {
	return []models.Subject{
		{ID: "S1", Name: "English"},
		{ID: "S2", Name: "Hindi"},
		{ID: "S3", Name: "Mathematics"},
		{ID: "S4", Name: "Science"},
		{ID: "S5", Name: "Social Studies"},
		{ID: "S6", Name: "Computer Science"},
		{ID: "S7", Name: "Art & Craft"},
		{ID: "S8", Name: "Physical Education"},
	}
}

func examCatalog(now time.Time) []models.Exam {
	year := now.Year()
	return []models.Exam{
		{ID: 1, Name: "Unit Test 1", Date: time.Date(year, time.May, 15, 0, 0, 0, 0, time.UTC).Format(models.DateLayout), MaxMarks: 25},
		{ID: 2, Name: "Mid-Term Examination", Date: time.Date(year, time.September, 20, 0, 0, 0, 0, time.UTC).Format(models.DateLayout), MaxMarks: 100},
	}
}

func seedLeaves(now time.Time) []models.LeaveRequest {
	return []models.LeaveRequest{
		{
			ID:          1,
			TeacherID:   3,
			TeacherName: "Anjali Gupta",
			StartDate:   now.AddDate(0, 0, -5).Format(models.DateLayout),
			EndDate:     now.AddDate(0, 0, -4).Format(models.DateLayout),
			Reason:      "Family function",
			Status:      models.LeaveStatusPending,
		},
		{
			ID:          2,
			TeacherID:   1,
			TeacherName: "Priya Sharma",
			StartDate:   now.AddDate(0, 0, -9).Format(models.DateLayout),
			EndDate:     now.AddDate(0, 0, -9).Format(models.DateLayout),
			Reason:      "Medical appointment",
			Status:      models.LeaveStatusApproved,
		},
	}
}

func seedAnnouncements(now time.Time) []models.Announcement {
	return []models.Announcement{
		{
			ID:      1,
			Date:    now.AddDate(0, 0, -8).Format(models.DateLayout),
			Title:   "Annual Sports Day",
			Content: "The Annual Sports Day will be held next Friday. All students are requested to participate.",
		},
		{
			ID:      2,
			Date:    now.AddDate(0, 0, -10).Format(models.DateLayout),
			Title:   "Parent-Teacher Meeting",
			Content: "The quarterly Parent-Teacher Meeting is scheduled for this Saturday. Please book your slots.",
		},
	}
}

// studentNamePool feeds the roster generator. Names are drawn without
// replacement; when the pool runs dry the generator falls back to a
// synthetic placeholder name.
var studentNamePool = []string{
	"Aarav Sharma", "Vivaan Singh", "Aditya Kumar", "Vihaan Gupta", "Arjun Patel", "Sai Reddy", "Reyansh Mishra", "Krishna Verma", "Ishaan Yadav", "Rohan Prasad",
	"Aanya Joshi", "Diya Mehra", "Saanvi Agarwal", "Myra Khanna", "Anika Nair", "Kiara Iyer", "Zara Khan", "Pari Shah", "Advika Menon", "Ishita Rao",
	"Kabir Das", "Aryan Chaudhary", "Dhruv Jain", "Zayn Ali", "Ayaan Kumar", "Kian Sharma", "Shaurya Singh", "Atharv Gupta", "Dev Patel", "Neel Reddy",
	"Anvi Mishra", "Siya Verma", "Aadhya Yadav", "Navya Prasad", "Riya Joshi", "Prisha Mehra", "Anaya Agarwal", "Yashvi Khanna", "Amaira Nair", "Miraya Iyer",
	"Laksh Kumar", "Veer Singh", "Abir Gupta", "Yuvan Patel", "Samarth Reddy", "Aarush Mishra", "Rudra Verma", "Om Yadav", "Parth Prasad", "Jai Joshi",
	"Shanaya Mehra", "Aarohi Agarwal", "Amara Khanna", "Eva Nair", "Inaya Iyer", "Sia Khan", "Tara Shah", "Avni Menon", "Zoya Rao", "Aisha Das",
	"Arnav Chaudhary", "Advik Jain", "Aadi Ali", "Arin Kumar", "Vivaan Sharma", "Yash Singh", "Ved Gupta", "Zain Patel", "Manan Reddy", "Arham Mishra",
	"Ahaana Verma", "Akshara Yadav", "Alia Prasad", "Amrita Joshi", "Anisha Mehra", "Asmi Agarwal", "Avani Khanna", "Bhavya Nair", "Charvi Iyer", "Darshini Khan",
	"Daksh Shah", "Divit Menon", "Ehan Rao", "Ekansh Das", "Gaurav Chaudhary", "Harsh Jain", "Hridhaan Ali", "Ivaan Kumar", "Jivin Sharma", "Krish Singh",
	"Ira Gupta", "Jiya Patel", "Kashvi Reddy", "Keya Mishra", "Kimaya Verma", "Larisa Yadav", "Mahi Prasad", "Mishka Joshi", "Naisha Mehra", "Navi Agarwal",
	"Nirvaan Khanna", "Ojas Nair", "Pahal Iyer", "Parv Khan", "Pranay Shah", "Ranbir Menon", "Rehan Rao", "Ritvik Das", "Rishaan Chaudhary", "Samar Jain",
	"Nitara Ali", "Oviya Kumar", "Piya Sharma", "Pranavi Singh", "Radha Gupta", "Rhea Patel", "Saira Reddy", "Samaira Mishra", "Sanvi Verma", "Shreya Yadav",
	"Soham Prasad", "Tanish Joshi", "Tejas Mehra", "Uthkarsh Agarwal", "Vansh Khanna", "Vidit Nair", "Viraj Iyer", "Yug Khan", "Aarav Shah", "Vivaan Menon",
	"Tisha Rao", "Urvi Das", "Vanya Chaudhary", "Vedika Jain", "Yashika Ali", "Zara Kumar", "Aaditri Sharma", "Aahana Singh", "Aaradhya Gupta", "Aarvi Patel",
	"Adah Reddy", "Adira Mishra", "Advaita Verma", "Ahana Yadav", "Alisha Prasad", "Amoli Joshi", "Anvi Mehra", "Anya Agarwal", "Asmi Khanna", "Avni Nair",
	"Ayush Iyer", "Bhargav Khan", "Chirag Shah", "Darsh Menon", "Deepak Rao", "Devansh Das", "Dhairya Chaudhary", "Divyansh Jain", "Gagan Ali", "Gautam Kumar",
	"Bhavna Sharma", "Charul Singh", "Daksha Gupta", "Deepa Patel", "Devaki Reddy", "Dhriti Mishra", "Divya Verma", "Eesha Yadav", "Eila Prasad", "Falak Joshi",
	"Girik Mehra", "Harshil Agarwal", "Hemant Khanna", "Hitesh Nair", "Indra Iyer", "Ishank Khan", "Jagat Shah", "Jay Menon", "Jignesh Rao", "Kairav Das",
	"Gargi Chaudhary", "Geeta Jain", "Gitanjali Ali", "Hamsa Kumar", "Harinakshi Sharma", "Heer Singh", "Hetal Gupta", "Indira Patel", "Ipsita Reddy", "Ishani Mishra",
	"Kanan Verma", "Karan Yadav", "Kartik Prasad", "Kushal Joshi", "Lalit Mehra", "Madhav Agarwal", "Manish Khanna", "Mayank Nair", "Mohit Iyer", "Naman Khan",
	"Jahnavi Shah", "Janaki Menon", "Jeevika Rao", "Kajal Das", "Kalpana Chaudhary", "Kamala Jain", "Kanak Ali", "Kanti Kumar", "Karishma Sharma", "Kavita Singh",
	"Nakul Gupta", "Naveen Patel", "Nihal Reddy", "Nikhil Mishra", "Nishant Verma", "Nitin Yadav", "Omprakash Prasad", "Pankaj Joshi", "Piyush Mehra", "Pranav Agarwal",
	"Lata Gupta", "Lavanya Patel", "Leela Reddy", "Madhu Mishra", "Malini Verma", "Manju Yadav", "Maya Prasad", "Meena Joshi", "Meera Mehra", "Mohini Agarwal",
	"Prateek Khanna", "Raghav Nair", "Rajat Iyer", "Rakesh Khan", "Ravi Shah", "Rishi Menon", "Rohit Rao", "Sachin Das", "Sahil Chaudhary", "Sameer Jain",
	"Nalini Khanna", "Nandini Nair", "Neelam Iyer", "Neha Khan", "Nidhi Shah", "Nilima Menon", "Nirmala Rao", "Nisha Das", "Nita Chaudhary", "Pallavi Jain",
	"Sanjay Ali", "Sarthak Kumar", "Saurabh Sharma", "Shaurya Singh", "Shiva Gupta", "Siddharth Patel", "Sumit Reddy", "Sunil Mishra", "Suresh Verma", "Tanmay Yadav",
	"Pooja Ali", "Poonam Kumar", "Prabha Sharma", "Pratima Singh", "Preeti Gupta", "Priya Patel", "Radhika Reddy", "Rajani Mishra", "Rani Verma", "Rashmi Yadav",
	"Tushar Prasad", "Uday Joshi", "Varun Mehra", "Vikas Agarwal", "Vinay Khanna", "Vishal Nair", "Vivek Iyer", "Yash Khan", "Yogesh Shah", "Zubin Menon",
	"Rekha Prasad", "Renu Joshi", "Ritika Mehra", "Ritu Agarwal", "Rohini Khanna", "Roshni Nair", "Rupa Iyer", "Sabita Khan", "Sadhana Shah", "Sandhya Menon",
	"Sangeeta Rao", "Sarika Das", "Sarita Chaudhary", "Savita Jain", "Seema Ali", "Shaila Kumar", "Shalini Sharma", "Shanti Singh", "Sharda Gupta", "Sharmila Patel",
}
