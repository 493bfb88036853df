package models

import "time"

// UnscheduledReason explains why the engine could not place a session.
type UnscheduledReason string

const (
	ReasonNoRoomAvailable       UnscheduledReason = "no_room_available"
	ReasonInsufficientExaminers UnscheduledReason = "insufficient_examiners"
	ReasonNoTimeslotAvailable   UnscheduledReason = "no_timeslot_available"
	ReasonSupervisorUnavailable UnscheduledReason = "supervisor_unavailable"
)

// AssignedExam is a fully placed defense. ExaminerIDs lists the supervisor
// first, followed by the remaining panel members in ranking order.
type AssignedExam struct {
	SessionID      int                `json:"session_id"`
	StudentID      int                `json:"student_id"`
	StudentName    string             `json:"student_name"`
	RoomID         int                `json:"room_id"`
	TimeslotID     int                `json:"timeslot_id"`
	ExaminerIDs    []int              `json:"examiner_ids"`
	Score          float64            `json:"score"`
	CriteriaScores map[string]float64 `json:"criteria_scores,omitempty"`
}

// UnscheduledSession records a defense the engine had to leave out.
type UnscheduledSession struct {
	SessionID int               `json:"session_id"`
	StudentID int               `json:"student_id"`
	Reason    UnscheduledReason `json:"reason"`
	Detail    string            `json:"detail,omitempty"`
}

// ScheduleStats summarises a solution for reporting.
type ScheduleStats struct {
	TotalSessions    int         `json:"total_sessions"`
	ScheduledCount   int         `json:"scheduled_count"`
	UnscheduledCount int         `json:"unscheduled_count"`
	SuccessRate      float64     `json:"success_rate"`
	AverageScore     float64     `json:"average_score"`
	MinScore         float64     `json:"min_score"`
	MaxScore         float64     `json:"max_score"`
	ScoreStdDev      float64     `json:"score_std_dev"`
	ExaminerLoad     map[int]int `json:"examiner_load"`
}

// ScheduleSolution is the engine output for one generation run.
type ScheduleSolution struct {
	SolutionID  string               `json:"solution_id"`
	Method      string               `json:"method"`
	GeneratedAt time.Time            `json:"generated_at"`
	Assigned    []AssignedExam       `json:"assigned"`
	Unscheduled []UnscheduledSession `json:"unscheduled"`
	Stats       ScheduleStats        `json:"stats"`
}
