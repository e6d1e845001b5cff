package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	"github.com/Keaton-Harvey/DatabasesProject/internal/repository"
	"github.com/Keaton-Harvey/DatabasesProject/internal/validator"
	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
)

// ReportService 只读报表查询。
// 数据库不可用时降级为空结果（记录 Warn 日志），其余错误照常返回。
type ReportService interface {
	DegreeCourses(ctx context.Context, degreeID string) ([]model.DegreeCourse, error)
	DegreeGoals(ctx context.Context, degreeID string) ([]dto.GoalResponse, error)
	// CoursesForGoals 课程 × 目标；degreeID、goalCodes 均可为空表示不限
	CoursesForGoals(ctx context.Context, degreeID string, goalCodes []string) ([]model.CourseGoal, error)
	DegreesForCourse(ctx context.Context, courseNumber string) ([]model.CourseDegreeDetail, error)
	// AvailableCourses 该学期至少开设一个班级的课程
	AvailableCourses(ctx context.Context, year int, term string) ([]dto.CourseResponse, error)
	// SectionsInRange 按课程和/或教师过滤，落在 [start, end] 学期区间内的班级，按时间先后排序
	SectionsInRange(ctx context.Context, query *dto.SectionRangeQuery) ([]dto.SectionResponse, error)
	// SectionsAboveThreshold 通过率 (A+B+C)/enrollment*100 不低于阈值的评估行
	SectionsAboveThreshold(ctx context.Context, year int, term string, threshold float64) ([]dto.PassRateResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// degrade 连接失败时返回空结果
func degrade[T any](logger *zap.Logger, op string, rows []T, err error) ([]T, error) {
	if err == nil {
		return rows, nil
	}
	if errors.Is(err, pkgerrors.ErrConnection) {
		logger.Warn("报表查询失败，返回空结果", zap.String("op", op), zap.Error(err))
		return []T{}, nil
	}
	logFailure(logger, "报表查询失败", err, zap.String("op", op))
	return nil, err
}

// ────────────────────── DegreeCourses ──────────────────────

func (s *reportService) DegreeCourses(ctx context.Context, degreeID string) ([]model.DegreeCourse, error) {
	degreeID = strings.TrimSpace(degreeID)
	if err := validator.DegreeID(degreeID); err != nil {
		return nil, err
	}
	rows, err := s.repo.Course.ListByDegree(ctx, degreeID)
	return degrade(s.logger, "degree_courses", rows, err)
}

// ────────────────────── DegreeGoals ──────────────────────

func (s *reportService) DegreeGoals(ctx context.Context, degreeID string) ([]dto.GoalResponse, error) {
	degreeID = strings.TrimSpace(degreeID)
	if err := validator.DegreeID(degreeID); err != nil {
		return nil, err
	}
	goals, err := s.repo.Goal.ListByDegree(ctx, degreeID)
	goals, err = degrade(s.logger, "degree_goals", goals, err)
	if err != nil {
		return nil, err
	}

	result := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		result = append(result, *toGoalResponse(&goals[i]))
	}
	return result, nil
}

// ────────────────────── CoursesForGoals ──────────────────────

func (s *reportService) CoursesForGoals(ctx context.Context, degreeID string, goalCodes []string) ([]model.CourseGoal, error) {
	degreeID = strings.TrimSpace(degreeID)
	if degreeID != "" {
		if err := validator.DegreeID(degreeID); err != nil {
			return nil, err
		}
	}
	codes := make([]string, 0, len(goalCodes))
	for _, code := range goalCodes {
		code = strings.TrimSpace(code)
		if err := validator.GoalCode(code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	rows, err := s.repo.Course.ListByGoals(ctx, degreeID, codes)
	return degrade(s.logger, "courses_for_goals", rows, err)
}

// ────────────────────── DegreesForCourse ──────────────────────

func (s *reportService) DegreesForCourse(ctx context.Context, courseNumber string) ([]model.CourseDegreeDetail, error) {
	courseNumber = strings.TrimSpace(courseNumber)
	if err := validator.CourseNumber(courseNumber); err != nil {
		return nil, err
	}
	rows, err := s.repo.CourseDegree.ListDetailsByCourse(ctx, courseNumber)
	return degrade(s.logger, "degrees_for_course", rows, err)
}

// ────────────────────── AvailableCourses ──────────────────────

func (s *reportService) AvailableCourses(ctx context.Context, year int, term string) ([]dto.CourseResponse, error) {
	term = strings.TrimSpace(term)
	if err := validator.Semester(year, term); err != nil {
		return nil, err
	}
	courses, err := s.repo.Course.ListBySemester(ctx, model.SemesterKey{Year: year, Term: model.Term(term)})
	courses, err = degrade(s.logger, "available_courses", courses, err)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

// ────────────────────── SectionsInRange ──────────────────────

func (s *reportService) SectionsInRange(ctx context.Context, query *dto.SectionRangeQuery) ([]dto.SectionResponse, error) {
	courseNumber := strings.TrimSpace(query.CourseNumber)
	instructorID := strings.TrimSpace(query.InstructorID)
	start := model.SemesterKey{Year: query.StartYear, Term: model.Term(strings.TrimSpace(query.StartTerm))}
	end := model.SemesterKey{Year: query.EndYear, Term: model.Term(strings.TrimSpace(query.EndTerm))}

	if courseNumber == "" && instructorID == "" {
		return nil, pkgerrors.NewValidation("course_number", "课程编号与教师编号至少填写一项")
	}
	if courseNumber != "" {
		if err := validator.CourseNumber(courseNumber); err != nil {
			return nil, err
		}
	}
	if instructorID != "" {
		if err := validator.InstructorID(instructorID); err != nil {
			return nil, err
		}
	}
	if err := firstError(
		validator.Semester(start.Year, string(start.Term)),
		validator.Semester(end.Year, string(end.Term)),
	); err != nil {
		return nil, err
	}
	if start.Compare(end) > 0 {
		return nil, pkgerrors.NewValidation("range", "起始学期不能晚于结束学期")
	}

	var (
		sections []model.Section
		err      error
	)
	if courseNumber != "" {
		sections, err = s.repo.Section.ListByCourse(ctx, courseNumber)
	} else {
		sections, err = s.repo.Section.ListByInstructor(ctx, instructorID)
	}
	sections, err = degrade(s.logger, "sections_in_range", sections, err)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Section, 0, len(sections))
	for _, sec := range sections {
		if instructorID != "" && sec.InstructorID != instructorID {
			continue
		}
		if sec.Key().Semester().Within(start, end) {
			filtered = append(filtered, sec)
		}
	}
	sortSectionsChronologically(filtered)
	return toSectionResponses(filtered), nil
}

// sortSectionsChronologically 按学期先后（Spring < Summer < Fall），同学期内按课程、班级编号
func sortSectionsChronologically(sections []model.Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		a, b := sections[i].Key(), sections[j].Key()
		if c := a.Semester().Compare(b.Semester()); c != 0 {
			return c < 0
		}
		if a.CourseNumber != b.CourseNumber {
			return a.CourseNumber < b.CourseNumber
		}
		return a.SectionID < b.SectionID
	})
}

// ────────────────────── SectionsAboveThreshold ──────────────────────

func (s *reportService) SectionsAboveThreshold(ctx context.Context, year int, term string, threshold float64) ([]dto.PassRateResponse, error) {
	term = strings.TrimSpace(term)
	if err := firstError(
		validator.Semester(year, term),
		validator.PassThreshold(threshold),
	); err != nil {
		return nil, err
	}
	semester := model.SemesterKey{Year: year, Term: model.Term(term)}

	sections, err := s.repo.Section.ListBySemester(ctx, semester)
	sections, err = degrade(s.logger, "pass_rate_sections", sections, err)
	if err != nil {
		return nil, err
	}
	evaluations, err := s.repo.Evaluation.ListBySemester(ctx, semester)
	evaluations, err = degrade(s.logger, "pass_rate_evaluations", evaluations, err)
	if err != nil {
		return nil, err
	}

	return passRates(sections, evaluations, threshold), nil
}

// passRates 计算各评估行通过率并按阈值过滤。
// 未录入成绩的行与选课人数为 0 的班级不参与计算；
// 阈值比较使用整数乘法，避免浮点误差导致恰好等于阈值的行被漏掉
func passRates(sections []model.Section, evaluations []model.Evaluation, threshold float64) []dto.PassRateResponse {
	bySection := make(map[model.SectionKey]*model.Section, len(sections))
	for i := range sections {
		bySection[sections[i].Key()] = &sections[i]
	}

	result := make([]dto.PassRateResponse, 0)
	for i := range evaluations {
		e := &evaluations[i]
		section, ok := bySection[e.Key().SectionKey]
		if !ok || section.EnrollmentCount == 0 || !e.HasGrades() {
			continue
		}
		pass := e.PassCount()
		if float64(pass*100) < threshold*float64(section.EnrollmentCount) {
			continue
		}
		result = append(result, dto.PassRateResponse{
			CourseNumber:    e.CourseNumber,
			SectionID:       e.SectionID,
			Year:            e.Year,
			Term:            string(e.Term),
			InstructorID:    section.InstructorID,
			DegreeID:        e.DegreeID,
			GoalCode:        e.GoalCode,
			EnrollmentCount: section.EnrollmentCount,
			PassCount:       pass,
			PassRate:        float64(pass) / float64(section.EnrollmentCount) * 100,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.PassRate != b.PassRate {
			return a.PassRate > b.PassRate
		}
		if a.CourseNumber != b.CourseNumber {
			return a.CourseNumber < b.CourseNumber
		}
		if a.SectionID != b.SectionID {
			return a.SectionID < b.SectionID
		}
		if a.DegreeID != b.DegreeID {
			return a.DegreeID < b.DegreeID
		}
		return a.GoalCode < b.GoalCode
	})
	return result
}
