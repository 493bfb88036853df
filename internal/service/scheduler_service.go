package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/models"
	appErrors "github.com/spk-skripsi/exam-dss-api/pkg/errors"
	"github.com/spk-skripsi/exam-dss-api/pkg/jobs"
	"github.com/spk-skripsi/exam-dss-api/pkg/mcdm"
)

// schedulerMetrics records scheduling outcomes. Implemented by the metrics
// service; nil disables recording.
type schedulerMetrics interface {
	ObserveGeneration(method string, duration time.Duration, scheduled, unscheduled int)
}

// SchedulerService runs the greedy assignment engine: sessions in priority
// order, preferred timeslots first, first free room in input order, panel
// selected by the examiner evaluator with the supervisor always included.
type SchedulerService struct {
	evaluator *ExaminerEvaluatorService
	validator *validator.Validate
	logger    *zap.Logger
	metrics   schedulerMetrics
	store     *solutionStore
	queue     *jobs.Queue
}

// SchedulerConfig governs engine behaviour.
type SchedulerConfig struct {
	SolutionTTL  time.Duration
	QueueWorkers int
}

// NewSchedulerService wires scheduler dependencies.
func NewSchedulerService(
	evaluator *ExaminerEvaluatorService,
	validate *validator.Validate,
	logger *zap.Logger,
	metrics schedulerMetrics,
	cfg SchedulerConfig,
) *SchedulerService {
	if evaluator == nil {
		evaluator = NewExaminerEvaluatorService(validate, logger)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SolutionTTL <= 0 {
		cfg.SolutionTTL = 30 * time.Minute
	}
	if cfg.QueueWorkers <= 0 {
		cfg.QueueWorkers = 2
	}
	s := &SchedulerService{
		evaluator: evaluator,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		store:     newSolutionStore(cfg.SolutionTTL),
	}
	s.queue = jobs.NewQueue("schedule-generation", s.handleGenerationTask, jobs.Options{
		Workers: cfg.QueueWorkers,
		Logger:  logger,
	})
	return s
}

// StartWorkers launches the background generation workers.
func (s *SchedulerService) StartWorkers(ctx context.Context) {
	s.queue.Start(ctx)
}

// StopWorkers drains the background generation workers.
func (s *SchedulerService) StopWorkers() {
	s.queue.Stop()
}

// Generate runs a full scheduling pass synchronously and stores the solution
// for later retrieval, analysis and export.
func (s *SchedulerService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	criteria, method, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	assigned, unscheduled, stats := s.solve(req, criteria, method)

	solution := models.ScheduleSolution{
		SolutionID:  uuid.NewString(),
		Method:      string(method),
		GeneratedAt: time.Now().UTC(),
		Assigned:    assigned,
		Unscheduled: unscheduled,
		Stats:       stats,
	}
	s.store.Save(solution)

	if s.metrics != nil {
		s.metrics.ObserveGeneration(string(method), time.Since(started), stats.ScheduledCount, stats.UnscheduledCount)
	}
	s.logger.Info("schedule generated",
		zap.String("solution_id", solution.SolutionID),
		zap.String("method", solution.Method),
		zap.Int("scheduled", stats.ScheduledCount),
		zap.Int("unscheduled", stats.UnscheduledCount),
	)
	return &dto.GenerateScheduleResponse{Solution: solution}, nil
}

// GenerateAsync validates the request, reserves a solution ID and queues the
// run for the background workers.
func (s *SchedulerService) GenerateAsync(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleAsyncResponse, error) {
	if _, _, err := s.prepare(req); err != nil {
		return nil, err
	}
	solutionID := uuid.NewString()
	s.store.MarkPending(solutionID)
	err := s.queue.Submit(jobs.Task{
		ID:      solutionID,
		Kind:    "generate",
		Payload: req,
	})
	if err != nil {
		s.store.Delete(solutionID)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue schedule generation")
	}
	return &dto.GenerateScheduleAsyncResponse{SolutionID: solutionID, Status: "queued"}, nil
}

// GetSolution returns a stored solution by ID.
func (s *SchedulerService) GetSolution(solutionID string) (*models.ScheduleSolution, error) {
	if solutionID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "solution id is required")
	}
	solution, state := s.store.Get(solutionID)
	switch state {
	case solutionReady:
		return &solution, nil
	case solutionPending:
		return nil, appErrors.Clone(appErrors.ErrConflict, "solution is still being generated")
	case solutionFailed:
		return nil, appErrors.Clone(appErrors.ErrInternal, "schedule generation failed")
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "solution not found or expired")
}

func (s *SchedulerService) handleGenerationTask(ctx context.Context, task jobs.Task) error {
	req, ok := task.Payload.(dto.GenerateScheduleRequest)
	if !ok {
		s.store.MarkFailed(task.ID)
		return fmt.Errorf("unexpected payload type %T", task.Payload)
	}
	criteria, method, err := s.prepare(req)
	if err != nil {
		s.store.MarkFailed(task.ID)
		return err
	}

	started := time.Now()
	assigned, unscheduled, stats := s.solve(req, criteria, method)
	s.store.Save(models.ScheduleSolution{
		SolutionID:  task.ID,
		Method:      string(method),
		GeneratedAt: time.Now().UTC(),
		Assigned:    assigned,
		Unscheduled: unscheduled,
		Stats:       stats,
	})
	if s.metrics != nil {
		s.metrics.ObserveGeneration(string(method), time.Since(started), stats.ScheduledCount, stats.UnscheduledCount)
	}
	return nil
}

// prepare validates the payload and resolves criteria and method defaults.
func (s *SchedulerService) prepare(req dto.GenerateScheduleRequest) ([]models.Criterion, mcdm.Method, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule generation payload")
	}

	criteria := req.Criteria
	if len(criteria) == 0 {
		criteria = models.DefaultCriteria()
	}
	if err := mcdm.ValidateWeights(models.Weights(criteria)); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInvalidWeights.Code, appErrors.ErrInvalidWeights.Status, err.Error())
	}

	methodName := req.Method
	if methodName == "" {
		methodName = string(mcdm.MethodSAW)
	}
	method, err := mcdm.ParseMethod(methodName)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrUnsupportedMethod.Code, appErrors.ErrUnsupportedMethod.Status, err.Error())
	}

	students := make(map[int]bool, len(req.Students))
	for _, student := range req.Students {
		students[student.ID] = true
	}
	examiners := make(map[int]bool, len(req.Examiners))
	for _, examiner := range req.Examiners {
		examiners[examiner.ID] = true
	}
	for _, session := range req.Sessions {
		if !students[session.StudentID] {
			return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("session %d references unknown student %d", session.ID, session.StudentID))
		}
		if session.RequiredExaminers > len(req.Examiners) {
			return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("session %d requires %d examiners but only %d are registered", session.ID, session.RequiredExaminers, len(req.Examiners)))
		}
	}
	for _, student := range req.Students {
		if student.SupervisorID != 0 && !examiners[student.SupervisorID] {
			return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("student %d references unknown supervisor %d", student.ID, student.SupervisorID))
		}
	}
	return criteria, method, nil
}

// runState tracks occupancy for one scheduling run. Input entities are never
// mutated; per-run workload lives here.
type runState struct {
	roomBusy     map[int]map[int]bool
	examinerBusy map[int]map[int]bool
	workload     map[int]int
	runLoad      map[int]int
}

func newRunState(examiners []models.Examiner) *runState {
	state := &runState{
		roomBusy:     make(map[int]map[int]bool),
		examinerBusy: make(map[int]map[int]bool),
		workload:     make(map[int]int, len(examiners)),
		runLoad:      make(map[int]int, len(examiners)),
	}
	for _, examiner := range examiners {
		state.workload[examiner.ID] = examiner.Workload
		state.runLoad[examiner.ID] = 0
	}
	return state
}

func (r *runState) roomFree(slotID, roomID int) bool {
	return !r.roomBusy[slotID][roomID]
}

func (r *runState) examinerFree(slotID, examinerID int) bool {
	return !r.examinerBusy[slotID][examinerID]
}

func (r *runState) commit(slotID, roomID int, examinerIDs []int) {
	if r.roomBusy[slotID] == nil {
		r.roomBusy[slotID] = make(map[int]bool)
	}
	r.roomBusy[slotID][roomID] = true
	if r.examinerBusy[slotID] == nil {
		r.examinerBusy[slotID] = make(map[int]bool)
	}
	for _, id := range examinerIDs {
		r.examinerBusy[slotID][id] = true
		r.workload[id]++
		r.runLoad[id]++
	}
}

// solve performs the deterministic greedy pass. It is separated from ID and
// timestamp assignment so that identical inputs produce identical output.
func (s *SchedulerService) solve(
	req dto.GenerateScheduleRequest,
	criteria []models.Criterion,
	method mcdm.Method,
) ([]models.AssignedExam, []models.UnscheduledSession, models.ScheduleStats) {
	studentByID := make(map[int]models.Student, len(req.Students))
	for _, student := range req.Students {
		studentByID[student.ID] = student
	}

	ordered := make([]models.ExamSession, len(req.Sessions))
	copy(ordered, req.Sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	state := newRunState(req.Examiners)
	assigned := make([]models.AssignedExam, 0, len(ordered))
	unscheduled := make([]models.UnscheduledSession, 0)

	for _, session := range ordered {
		student := studentByID[session.StudentID]
		placement, reason, detail := s.placeSession(session, student, req, criteria, method, state)
		if placement == nil {
			unscheduled = append(unscheduled, models.UnscheduledSession{
				SessionID: session.ID,
				StudentID: session.StudentID,
				Reason:    reason,
				Detail:    detail,
			})
			continue
		}
		state.commit(placement.TimeslotID, placement.RoomID, placement.ExaminerIDs)
		assigned = append(assigned, *placement)
	}

	return assigned, unscheduled, buildStats(len(ordered), assigned, unscheduled, state.runLoad)
}

// placeSession tries every candidate timeslot for one session and returns the
// first feasible placement, or the reason none exists.
func (s *SchedulerService) placeSession(
	session models.ExamSession,
	student models.Student,
	req dto.GenerateScheduleRequest,
	criteria []models.Criterion,
	method mcdm.Method,
	state *runState,
) (*models.AssignedExam, models.UnscheduledReason, string) {
	if len(req.Timeslots) == 0 {
		return nil, models.ReasonNoTimeslotAvailable, "no timeslots registered"
	}

	sawFreeRoom := false
	supervisorBlocked := false

	for _, slot := range candidateSlots(student.PreferredTimeslots, req.Timeslots) {
		room, ok := firstFreeRoom(req.Rooms, slot.ID, state)
		if !ok {
			continue
		}
		sawFreeRoom = true

		if student.SupervisorID != 0 && !state.examinerFree(slot.ID, student.SupervisorID) {
			supervisorBlocked = true
			continue
		}

		pool := make([]models.Examiner, 0, len(req.Examiners))
		for _, examiner := range req.Examiners {
			if state.examinerFree(slot.ID, examiner.ID) {
				pool = append(pool, examiner)
			}
		}
		if len(pool) < session.RequiredExaminers {
			continue
		}

		ranking, err := s.evaluator.Rank(student, pool, slot.ID, criteria, method, state.workload)
		if err != nil {
			s.logger.Warn("examiner ranking failed", zap.Int("session_id", session.ID), zap.Error(err))
			continue
		}

		panel, scores, criteriaScores := assemblePanel(student.SupervisorID, session.RequiredExaminers, ranking)
		if panel == nil {
			continue
		}
		criteriaScores["room_suitability"] = roomSuitability(room)

		return &models.AssignedExam{
			SessionID:      session.ID,
			StudentID:      student.ID,
			StudentName:    student.Name,
			RoomID:         room.ID,
			TimeslotID:     slot.ID,
			ExaminerIDs:    panel,
			Score:          mean(scores),
			CriteriaScores: criteriaScores,
		}, "", ""
	}

	switch {
	case !sawFreeRoom:
		return nil, models.ReasonNoRoomAvailable, "every room is occupied at every candidate timeslot"
	case supervisorBlocked:
		return nil, models.ReasonSupervisorUnavailable, fmt.Sprintf("supervisor %d is booked at every timeslot with a free room", student.SupervisorID)
	default:
		return nil, models.ReasonInsufficientExaminers, fmt.Sprintf("fewer than %d free examiners at every candidate timeslot", session.RequiredExaminers)
	}
}

// candidateSlots orders timeslots preferred-first, then the rest in input
// order, deduplicated.
func candidateSlots(preferred []int, timeslots []models.TimeSlot) []models.TimeSlot {
	byID := make(map[int]models.TimeSlot, len(timeslots))
	for _, slot := range timeslots {
		byID[slot.ID] = slot
	}
	seen := make(map[int]bool, len(timeslots))
	ordered := make([]models.TimeSlot, 0, len(timeslots))
	for _, id := range preferred {
		slot, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		ordered = append(ordered, slot)
		seen[id] = true
	}
	for _, slot := range timeslots {
		if seen[slot.ID] {
			continue
		}
		ordered = append(ordered, slot)
		seen[slot.ID] = true
	}
	return ordered
}

// firstFreeRoom returns the first room in input order that is free at the
// slot. Room suitability never drives the choice; it is only reported with
// the assignment.
func firstFreeRoom(rooms []models.Room, slotID int, state *runState) (models.Room, bool) {
	for _, room := range rooms {
		if state.roomFree(slotID, room.ID) {
			return room, true
		}
	}
	return models.Room{}, false
}

// assemblePanel builds the panel from a ranking: the supervisor first with
// their real score, then the best-ranked remaining candidates. Returns nil
// when the ranking cannot yield a full panel.
func assemblePanel(supervisorID, required int, ranking []dto.RankedExaminer) ([]int, []float64, map[string]float64) {
	if len(ranking) < required {
		return nil, nil, nil
	}
	panel := make([]int, 0, required)
	scores := make([]float64, 0, required)
	criteriaTotals := make(map[string]float64)

	add := func(candidate dto.RankedExaminer) {
		panel = append(panel, candidate.ExaminerID)
		scores = append(scores, candidate.Score)
		for name, value := range candidate.CriteriaValues {
			criteriaTotals[name] += value
		}
	}

	if supervisorID != 0 {
		found := false
		for _, candidate := range ranking {
			if candidate.ExaminerID == supervisorID {
				add(candidate)
				found = true
				break
			}
		}
		if !found {
			return nil, nil, nil
		}
	}
	for _, candidate := range ranking {
		if len(panel) == required {
			break
		}
		if candidate.ExaminerID == supervisorID {
			continue
		}
		add(candidate)
	}
	if len(panel) < required {
		return nil, nil, nil
	}
	for name := range criteriaTotals {
		criteriaTotals[name] /= float64(required)
	}
	return panel, scores, criteriaTotals
}

func buildStats(total int, assigned []models.AssignedExam, unscheduled []models.UnscheduledSession, runLoad map[int]int) models.ScheduleStats {
	stats := models.ScheduleStats{
		TotalSessions:    total,
		ScheduledCount:   len(assigned),
		UnscheduledCount: len(unscheduled),
		ExaminerLoad:     runLoad,
	}
	if total > 0 {
		stats.SuccessRate = float64(len(assigned)) / float64(total)
	}
	if len(assigned) == 0 {
		return stats
	}

	minScore := assigned[0].Score
	maxScore := assigned[0].Score
	var sum float64
	for _, exam := range assigned {
		sum += exam.Score
		if exam.Score < minScore {
			minScore = exam.Score
		}
		if exam.Score > maxScore {
			maxScore = exam.Score
		}
	}
	avg := sum / float64(len(assigned))

	var variance float64
	for _, exam := range assigned {
		variance += (exam.Score - avg) * (exam.Score - avg)
	}
	variance /= float64(len(assigned))

	stats.AverageScore = avg
	stats.MinScore = minScore
	stats.MaxScore = maxScore
	stats.ScoreStdDev = math.Sqrt(variance)
	return stats
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// --- Solution cache ---

type solutionState int

const (
	solutionMissing solutionState = iota
	solutionPending
	solutionReady
	solutionFailed
)

type storedSolution struct {
	solution models.ScheduleSolution
	status   solutionState
	savedAt  time.Time
}

type solutionStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]storedSolution
}

func newSolutionStore(ttl time.Duration) *solutionStore {
	return &solutionStore{
		ttl:   ttl,
		items: make(map[string]storedSolution),
	}
}

func (s *solutionStore) Save(solution models.ScheduleSolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[solution.SolutionID] = storedSolution{solution: solution, status: solutionReady, savedAt: time.Now()}
}

func (s *solutionStore) MarkPending(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = storedSolution{status: solutionPending, savedAt: time.Now()}
}

func (s *solutionStore) MarkFailed(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = storedSolution{status: solutionFailed, savedAt: time.Now()}
}

func (s *solutionStore) Get(id string) (models.ScheduleSolution, solutionState) {
	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return models.ScheduleSolution{}, solutionMissing
	}
	if time.Since(item.savedAt) > s.ttl {
		s.Delete(id)
		return models.ScheduleSolution{}, solutionMissing
	}
	return item.solution, item.status
}

func (s *solutionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}
