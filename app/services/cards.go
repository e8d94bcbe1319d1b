package services

import (
	"fmt"
	"strconv"
	"student-dashboard/app/models"
)

func AdminCards(s models.AdminStats) []models.Card {
	return []models.Card{
		{
			Title:       "Total Users",
			Value:       strconv.Itoa(s.TotalUsers),
			Description: fmt.Sprintf("%d Students, %d Teachers", s.TotalStudents, s.TotalTeachers),
			Icon:        "users",
		},
		{Title: "Total Courses", Value: strconv.Itoa(s.TotalCourses), Description: "Active courses", Icon: "book-open"},
		{
			Title:       "Attendance Records",
			Value:       strconv.Itoa(s.TotalAttendance),
			Description: fmt.Sprintf("%d%% average attendance", s.AvgAttendance),
			Icon:        "calendar",
		},
		{Title: "System Status", Value: "Active", Description: "All systems operational", Icon: "trophy"},
	}
}

func TeacherCards(s models.TeacherStats) []models.Card {
	return []models.Card{
		{Title: "My Courses", Value: strconv.Itoa(s.TotalCourses), Description: "Active courses", Icon: "book-open"},
		{Title: "My Students", Value: strconv.Itoa(s.TotalStudents), Description: "Enrolled students", Icon: "users"},
		{Title: "Today's Attendance", Value: strconv.Itoa(s.TodayAttendance), Description: "Records marked today", Icon: "calendar"},
		{Title: "Average Score", Value: fmt.Sprintf("%d%%", s.AvgMarks), Description: "Class performance", Icon: "trophy"},
	}
}

func StudentCards(s models.StudentStats) []models.Card {
	return []models.Card{
		{Title: "Enrolled Courses", Value: strconv.Itoa(s.TotalCourses), Description: "Active enrollments", Icon: "book-open"},
		{Title: "Attendance", Value: fmt.Sprintf("%d%%", s.AttendancePercentage), Description: "Overall attendance rate", Icon: "calendar"},
		{
			Title:       "Average Score",
			Value:       fmt.Sprintf("%d%%", s.AverageMarks),
			Description: fmt.Sprintf("Based on %d assessments", s.TotalMarks),
			Icon:        "trophy",
		},
		{Title: "Performance", Value: PerformanceLabel(s.AverageMarks), Description: "Academic standing", Icon: "trending-up"},
	}
}

var adminPanels = []models.Panel{
	{
		Title:       "Quick Actions",
		Description: "Common administrative tasks",
		Kind:        "actions",
		Items: []models.Activity{
			{Title: "Add New User", Description: "Create student or teacher accounts"},
			{Title: "Create Course", Description: "Set up new courses and assignments"},
			{Title: "Generate Reports", Description: "View attendance and performance reports"},
		},
	},
	{
		Title:       "Recent Activity",
		Description: "Latest system updates",
		Kind:        "timeline",
		Items: []models.Activity{
			{Title: "System backup completed", Description: "2 hours ago", Color: "green"},
			{Title: "New course created", Description: "5 hours ago", Color: "blue"},
			{Title: "User registration", Description: "1 day ago", Color: "orange"},
		},
	},
}

var teacherPanels = []models.Panel{
	{
		Title:       "Quick Actions",
		Description: "Common teaching tasks",
		Kind:        "actions",
		Items: []models.Activity{
			{Title: "Mark Attendance", Description: "Take attendance for today's classes"},
			{Title: "Add Marks", Description: "Record student grades and scores"},
			{Title: "View Reports", Description: "Check class performance analytics"},
		},
	},
	{
		Title:       "Today's Schedule",
		Description: "Your classes for today",
		Kind:        "timeline",
		Items: []models.Activity{
			{Title: "Mathematics - 101", Description: "9:00 AM - 10:00 AM", Color: "blue"},
			{Title: "Physics - 201", Description: "11:00 AM - 12:00 PM", Color: "green"},
			{Title: "Chemistry - 301", Description: "2:00 PM - 3:00 PM", Color: "orange"},
		},
	},
}

var studentPanels = []models.Panel{
	{
		Title:       "Quick Access",
		Description: "Common student actions",
		Kind:        "actions",
		Items: []models.Activity{
			{Title: "View Attendance", Description: "Check your attendance history"},
			{Title: "Check Marks", Description: "View grades and scores"},
			{Title: "Course Materials", Description: "Access study resources"},
		},
	},
	{
		Title:       "Recent Activity",
		Description: "Your latest academic updates",
		Kind:        "timeline",
		Items: []models.Activity{
			{Title: "Attendance marked", Description: "Mathematics - Today", Color: "green"},
			{Title: "New grade posted", Description: "Physics Assignment - 85%", Color: "blue"},
			{Title: "Course enrolled", Description: "Chemistry 101", Color: "orange"},
		},
	},
}
