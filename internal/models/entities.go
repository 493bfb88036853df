package models

// Student is a thesis candidate awaiting a defense session. Immutable once a
// scheduling run starts.
type Student struct {
	ID                 int     `json:"id" validate:"required"`
	Name               string  `json:"name" validate:"required"`
	NIM                string  `json:"nim"`
	ThesisTitle        string  `json:"thesis_title"`
	ThesisField        string  `json:"thesis_field" validate:"required"`
	SupervisorID       int     `json:"supervisor_id"`
	GPA                float64 `json:"gpa" validate:"omitempty,min=0,max=4"`
	ThesisQuality      float64 `json:"thesis_quality" validate:"omitempty,min=0,max=5"`
	PreferredTimeslots []int   `json:"preferred_timeslots"`
}

// Examiner is a faculty member eligible to sit on defense panels. Workload is
// the only field the engine tracks as mutable, and it does so in run-scoped
// state rather than on this record.
type Examiner struct {
	ID                 int      `json:"id" validate:"required"`
	Name               string   `json:"name" validate:"required"`
	Title              string   `json:"title"`
	Expertise          []string `json:"expertise"`
	ExperienceYears    int      `json:"experience_years" validate:"min=0"`
	Workload           int      `json:"workload" validate:"min=0"`
	AvailabilityScore  float64  `json:"availability_score" validate:"omitempty,min=0,max=5"`
	CompetencyScore    float64  `json:"competency_score" validate:"omitempty,min=0,max=5"`
	AvailableTimeslots []int    `json:"available_timeslots"`
}

// Room is a defense venue.
type Room struct {
	ID           int      `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Capacity     int      `json:"capacity" validate:"min=1"`
	Facilities   []string `json:"facilities"`
	Location     string   `json:"location"`
	QualityScore float64  `json:"quality_score" validate:"omitempty,min=0,max=5"`
}

// TimeSlot is a bookable examination window.
type TimeSlot struct {
	ID        int    `json:"id" validate:"required"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Session   string `json:"session"`
}

// ExamSession links a student to a defense that still needs a room, timeslot
// and panel.
type ExamSession struct {
	ID                int     `json:"id" validate:"required"`
	StudentID         int     `json:"student_id" validate:"required"`
	Duration          int     `json:"duration"`
	RequiredExaminers int     `json:"required_examiners" validate:"min=1"`
	Priority          float64 `json:"priority" validate:"omitempty,min=0,max=1"`
}
