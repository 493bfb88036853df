// Package sample provides a small self-contained dataset for demos and
// smoke tests: five students with distinct thesis fields, five examiners
// whose expertise covers those fields, four rooms and six timeslots.
package sample

import (
	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/models"
)

// Students returns the demo student roster.
func Students() []models.Student {
	return []models.Student{
		{ID: 1, Name: "Agus Salim", NIM: "18101001", ThesisTitle: "Sentiment Classification of Indonesian Product Reviews", ThesisField: "machine learning", SupervisorID: 1, GPA: 3.6, ThesisQuality: 4.2, PreferredTimeslots: []int{1}},
		{ID: 2, Name: "Putri Maharani", NIM: "18101002", ThesisTitle: "Progressive Web Application for Campus Services", ThesisField: "web development", SupervisorID: 2, GPA: 3.4, ThesisQuality: 3.9, PreferredTimeslots: []int{2}},
		{ID: 3, Name: "Bayu Nugroho", NIM: "18101003", ThesisTitle: "Association Rules for Retail Basket Analysis", ThesisField: "data mining", SupervisorID: 4, GPA: 3.7, ThesisQuality: 4.4, PreferredTimeslots: []int{3}},
		{ID: 4, Name: "Rina Kusuma", NIM: "18101004", ThesisTitle: "Intrusion Detection on Campus Networks", ThesisField: "network security", SupervisorID: 3, GPA: 3.5, ThesisQuality: 4.0, PreferredTimeslots: []int{4}},
		{ID: 5, Name: "Fajar Hidayat", NIM: "18101005", ThesisTitle: "License Plate Recognition with Convolutional Networks", ThesisField: "computer vision", SupervisorID: 5, GPA: 3.3, ThesisQuality: 3.8, PreferredTimeslots: []int{5}},
	}
}

// Examiners returns the demo faculty roster. Everyone is available at every
// timeslot so the dataset schedules fully.
func Examiners() []models.Examiner {
	allSlots := []int{1, 2, 3, 4, 5, 6}
	return []models.Examiner{
		{ID: 1, Name: "Dr. Budi Santoso", Title: "Senior Lecturer", Expertise: []string{"machine learning", "data mining", "artificial intelligence"}, ExperienceYears: 12, Workload: 2, AvailabilityScore: 4.5, CompetencyScore: 4.8, AvailableTimeslots: allSlots},
		{ID: 2, Name: "Dr. Siti Rahayu", Title: "Lecturer", Expertise: []string{"software engineering", "web development", "information systems"}, ExperienceYears: 9, Workload: 3, AvailabilityScore: 4.0, CompetencyScore: 4.5, AvailableTimeslots: allSlots},
		{ID: 3, Name: "Prof. Andi Wijaya", Title: "Professor", Expertise: []string{"computer networks", "network security", "distributed systems"}, ExperienceYears: 18, Workload: 1, AvailabilityScore: 4.8, CompetencyScore: 4.9, AvailableTimeslots: allSlots},
		{ID: 4, Name: "Dr. Dewi Lestari", Title: "Lecturer", Expertise: []string{"data mining", "information systems", "database"}, ExperienceYears: 7, Workload: 2, AvailabilityScore: 4.2, CompetencyScore: 4.3, AvailableTimeslots: allSlots},
		{ID: 5, Name: "Dr. Rizki Pratama", Title: "Lecturer", Expertise: []string{"machine learning", "computer vision", "image processing"}, ExperienceYears: 6, Workload: 1, AvailabilityScore: 4.6, CompetencyScore: 4.1, AvailableTimeslots: allSlots},
	}
}

// Rooms returns the demo venues.
func Rooms() []models.Room {
	return []models.Room{
		{ID: 1, Name: "Seminar Room A", Capacity: 12, Facilities: []string{"projector", "air conditioning", "whiteboard"}, Location: "Building 1, Floor 2", QualityScore: 4.5},
		{ID: 2, Name: "Seminar Room B", Capacity: 8, Facilities: []string{"projector", "whiteboard"}, Location: "Building 1, Floor 3", QualityScore: 4.0},
		{ID: 3, Name: "Main Hall", Capacity: 20, Facilities: []string{"projector", "air conditioning", "video conference", "whiteboard"}, Location: "Building 2, Floor 1", QualityScore: 4.8},
		{ID: 4, Name: "Meeting Room C", Capacity: 10, Facilities: []string{"whiteboard"}, Location: "Building 3, Floor 1", QualityScore: 3.5},
	}
}

// Timeslots returns three days with a morning and an afternoon window each.
func Timeslots() []models.TimeSlot {
	return []models.TimeSlot{
		{ID: 1, Day: "Monday", StartTime: "08:00", EndTime: "10:00", Session: "morning"},
		{ID: 2, Day: "Monday", StartTime: "13:00", EndTime: "15:00", Session: "afternoon"},
		{ID: 3, Day: "Tuesday", StartTime: "08:00", EndTime: "10:00", Session: "morning"},
		{ID: 4, Day: "Tuesday", StartTime: "13:00", EndTime: "15:00", Session: "afternoon"},
		{ID: 5, Day: "Wednesday", StartTime: "08:00", EndTime: "10:00", Session: "morning"},
		{ID: 6, Day: "Wednesday", StartTime: "13:00", EndTime: "15:00", Session: "afternoon"},
	}
}

// Sessions returns one defense per student with a three-member panel.
func Sessions() []models.ExamSession {
	return []models.ExamSession{
		{ID: 1, StudentID: 1, Duration: 90, RequiredExaminers: 3, Priority: 1.0},
		{ID: 2, StudentID: 2, Duration: 90, RequiredExaminers: 3, Priority: 0.9},
		{ID: 3, StudentID: 3, Duration: 90, RequiredExaminers: 3, Priority: 0.95},
		{ID: 4, StudentID: 4, Duration: 90, RequiredExaminers: 3, Priority: 0.85},
		{ID: 5, StudentID: 5, Duration: 90, RequiredExaminers: 3, Priority: 0.8},
	}
}

// Request bundles the full demo dataset into a generation request.
func Request(method string) dto.GenerateScheduleRequest {
	return dto.GenerateScheduleRequest{
		Students:  Students(),
		Examiners: Examiners(),
		Rooms:     Rooms(),
		Timeslots: Timeslots(),
		Sessions:  Sessions(),
		Method:    method,
	}
}
