package service

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spk-skripsi/exam-dss-api/internal/dto"
	"github.com/spk-skripsi/exam-dss-api/internal/models"
	appErrors "github.com/spk-skripsi/exam-dss-api/pkg/errors"
	"github.com/spk-skripsi/exam-dss-api/pkg/mcdm"
)

// ExaminerEvaluatorService scores and ranks examiner candidates for a student
// at a given timeslot. It is stateless; run-scoped workload is passed in by
// the caller so that candidate records are never mutated.
type ExaminerEvaluatorService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExaminerEvaluatorService wires evaluator dependencies.
func NewExaminerEvaluatorService(validate *validator.Validate, logger *zap.Logger) *ExaminerEvaluatorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExaminerEvaluatorService{validator: validate, logger: logger}
}

// Evaluate handles a standalone ranking request, applying defaults for
// criteria and method.
func (s *ExaminerEvaluatorService) Evaluate(req dto.EvaluateExaminersRequest) (*dto.EvaluateExaminersResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid examiner evaluation payload")
	}
	criteria := req.Criteria
	if len(criteria) == 0 {
		criteria = models.DefaultCriteria()
	}
	if err := mcdm.ValidateWeights(models.Weights(criteria)); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid criteria weights")
	}
	methodName := req.Method
	if methodName == "" {
		methodName = string(mcdm.MethodSAW)
	}
	method, err := mcdm.ParseMethod(methodName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnsupportedMethod.Code, appErrors.ErrUnsupportedMethod.Status, err.Error())
	}

	ranking, err := s.Rank(req.Student, req.Examiners, req.TimeslotID, criteria, method, nil)
	if err != nil {
		return nil, err
	}
	return &dto.EvaluateExaminersResponse{Method: string(method), Ranking: ranking}, nil
}

// Rank builds the decision matrix for the candidate pool and returns the
// candidates in descending score order. Equal scores keep input order.
// workload overrides the static per-examiner workload when present, so the
// scheduling engine can feed in assignments made earlier in the same run.
func (s *ExaminerEvaluatorService) Rank(
	student models.Student,
	examiners []models.Examiner,
	timeslotID int,
	criteria []models.Criterion,
	method mcdm.Method,
	workload map[int]int,
) ([]dto.RankedExaminer, error) {
	if len(examiners) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "examiner pool is empty")
	}

	matrix := make([][]float64, len(examiners))
	values := make([]map[string]float64, len(examiners))
	for i, examiner := range examiners {
		row := make([]float64, len(criteria))
		perCriterion := make(map[string]float64, len(criteria))
		for j, criterion := range criteria {
			value := s.criterionValue(criterion.Name, student, examiner, timeslotID, workload)
			row[j] = value
			perCriterion[criterion.Name] = value
		}
		matrix[i] = row
		values[i] = perCriterion
	}

	scores, err := mcdm.Scores(method, matrix, models.Weights(criteria), models.Types(criteria))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to score examiner pool")
	}

	ranking := make([]dto.RankedExaminer, len(examiners))
	for i, examiner := range examiners {
		ranking[i] = dto.RankedExaminer{
			ExaminerID:     examiner.ID,
			Name:           examiner.Name,
			Score:          scores[i],
			CriteriaValues: values[i],
		}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking, nil
}

func (s *ExaminerEvaluatorService) criterionValue(name string, student models.Student, examiner models.Examiner, timeslotID int, workload map[int]int) float64 {
	switch name {
	case models.CriterionExpertiseMatch:
		return expertiseMatch(student.ThesisField, examiner.Expertise)
	case models.CriterionCompetency:
		return examiner.CompetencyScore
	case models.CriterionAvailability:
		if hasTimeslot(examiner.AvailableTimeslots, timeslotID) {
			return examiner.AvailabilityScore / 5.0
		}
		return 0
	case models.CriterionWorkload:
		if workload != nil {
			if load, ok := workload[examiner.ID]; ok {
				return float64(load)
			}
		}
		return float64(examiner.Workload)
	case models.CriterionExperienceYears:
		return float64(examiner.ExperienceYears)
	}
	// Unknown criteria contribute a neutral mid value rather than failing
	// the whole run.
	return 0.5
}

// expertiseMatch is the fraction of thesis field keywords covered by the
// examiner's expertise areas, matched case-insensitively by substring in
// either direction.
func expertiseMatch(thesisField string, expertise []string) float64 {
	keywords := strings.Fields(strings.ToLower(thesisField))
	if len(keywords) == 0 {
		return 0
	}
	areas := make([]string, len(expertise))
	for i, area := range expertise {
		areas[i] = strings.ToLower(area)
	}
	matched := 0
	for _, keyword := range keywords {
		for _, area := range areas {
			if strings.Contains(area, keyword) || strings.Contains(keyword, area) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(keywords))
}

func hasTimeslot(slots []int, id int) bool {
	for _, slot := range slots {
		if slot == id {
			return true
		}
	}
	return false
}

// roomSuitability grades a venue on capacity, quality and facilities. The
// engine reports it with each assignment; room choice itself follows input
// order.
func roomSuitability(room models.Room) float64 {
	capacityScore := float64(room.Capacity) / 10.0
	if capacityScore > 1 {
		capacityScore = 1
	}
	facilityScore := float64(len(room.Facilities)) / 10.0
	if facilityScore > 1 {
		facilityScore = 1
	}
	return capacityScore*0.5 + room.QualityScore/5.0*0.3 + facilityScore*0.2
}
