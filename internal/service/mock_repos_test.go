package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	"github.com/Keaton-Harvey/DatabasesProject/internal/repository"
)

// ── Mock 存储：各 Mock Repository 共享同一份内存数据，便于跨表查询 ──

type goalKey struct{ degreeID, goalCode string }

type linkKey struct{ courseNumber, degreeID string }

type mockStore struct {
	degrees     map[string]model.Degree
	courses     map[string]model.Course
	instructors map[string]model.Instructor
	goals       map[goalKey]model.Goal
	semesters   map[model.SemesterKey]model.Semester
	links       map[linkKey]model.CourseDegree
	sections    map[model.SectionKey]model.Section
	evaluations map[model.EvaluationKey]model.Evaluation

	// failWith 非 nil 时所有操作返回该错误（模拟数据库不可用）
	failWith error
	// upserts 记录 Upsert 调用次数
	upserts int
}

func newMockStore() *mockStore {
	return &mockStore{
		degrees:     make(map[string]model.Degree),
		courses:     make(map[string]model.Course),
		instructors: make(map[string]model.Instructor),
		goals:       make(map[goalKey]model.Goal),
		semesters:   make(map[model.SemesterKey]model.Semester),
		links:       make(map[linkKey]model.CourseDegree),
		sections:    make(map[model.SectionKey]model.Section),
		evaluations: make(map[model.EvaluationKey]model.Evaluation),
	}
}

// newMockRepository 组装未绑定数据库的 Repository：Transaction 直接在自身上执行
func newMockRepository(store *mockStore) *repository.Repository {
	return &repository.Repository{
		Degree:       &mockDegreeRepo{store},
		Course:       &mockCourseRepo{store},
		Instructor:   &mockInstructorRepo{store},
		Goal:         &mockGoalRepo{store},
		Semester:     &mockSemesterRepo{store},
		CourseDegree: &mockCourseDegreeRepo{store},
		Section:      &mockSectionRepo{store},
		Evaluation:   &mockEvaluationRepo{store},
	}
}

// ── Mock DegreeRepository ──

type mockDegreeRepo struct{ s *mockStore }

func (m *mockDegreeRepo) Create(_ context.Context, degree *model.Degree) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	m.s.degrees[degree.DegreeID] = *degree
	return nil
}

func (m *mockDegreeRepo) GetByID(_ context.Context, id string) (*model.Degree, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	if d, ok := m.s.degrees[id]; ok {
		return &d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDegreeRepo) GetByNameLevel(_ context.Context, name string, level model.DegreeLevel) (*model.Degree, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	for _, d := range m.s.degrees {
		if d.Name == name && d.Level == level {
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDegreeRepo) List(_ context.Context) ([]model.Degree, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.Degree
	for _, d := range m.s.degrees {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DegreeID < result[j].DegreeID })
	return result, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct{ s *mockStore }

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	m.s.courses[course.CourseNumber] = *course
	return nil
}

func (m *mockCourseRepo) GetByNumber(_ context.Context, number string) (*model.Course, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	if c, ok := m.s.courses[number]; ok {
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.Course
	for _, c := range m.s.courses {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseNumber < result[j].CourseNumber })
	return result, nil
}

func (m *mockCourseRepo) ListByDegree(_ context.Context, degreeID string) ([]model.DegreeCourse, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.DegreeCourse
	for k, link := range m.s.links {
		if k.degreeID == degreeID {
			result = append(result, model.DegreeCourse{
				CourseNumber: k.courseNumber,
				Name:         m.s.courses[k.courseNumber].Name,
				IsCore:       link.IsCore,
			})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseNumber < result[j].CourseNumber })
	return result, nil
}

func (m *mockCourseRepo) ListBySemester(_ context.Context, semester model.SemesterKey) ([]model.Course, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	seen := make(map[string]bool)
	var result []model.Course
	for k := range m.s.sections {
		if k.Semester() == semester && !seen[k.CourseNumber] {
			seen[k.CourseNumber] = true
			result = append(result, m.s.courses[k.CourseNumber])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseNumber < result[j].CourseNumber })
	return result, nil
}

func (m *mockCourseRepo) ListByGoals(_ context.Context, degreeID string, goalCodes []string) ([]model.CourseGoal, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	wanted := make(map[string]bool)
	for _, c := range goalCodes {
		wanted[c] = true
	}
	var result []model.CourseGoal
	for lk, link := range m.s.links {
		if degreeID != "" && lk.degreeID != degreeID {
			continue
		}
		for gk := range m.s.goals {
			if gk.degreeID != lk.degreeID || (len(wanted) > 0 && !wanted[gk.goalCode]) {
				continue
			}
			result = append(result, model.CourseGoal{
				CourseNumber: lk.courseNumber,
				CourseName:   m.s.courses[lk.courseNumber].Name,
				DegreeID:     lk.degreeID,
				GoalCode:     gk.goalCode,
				IsCore:       link.IsCore,
			})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.CourseNumber != b.CourseNumber {
			return a.CourseNumber < b.CourseNumber
		}
		if a.DegreeID != b.DegreeID {
			return a.DegreeID < b.DegreeID
		}
		return a.GoalCode < b.GoalCode
	})
	return result, nil
}

// ── Mock InstructorRepository ──

type mockInstructorRepo struct{ s *mockStore }

func (m *mockInstructorRepo) Create(_ context.Context, instructor *model.Instructor) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	m.s.instructors[instructor.InstructorID] = *instructor
	return nil
}

func (m *mockInstructorRepo) GetByID(_ context.Context, id string) (*model.Instructor, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	if i, ok := m.s.instructors[id]; ok {
		return &i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) List(_ context.Context) ([]model.Instructor, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.Instructor
	for _, i := range m.s.instructors {
		result = append(result, i)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].InstructorID < result[j].InstructorID })
	return result, nil
}

// ── Mock GoalRepository ──

type mockGoalRepo struct{ s *mockStore }

func (m *mockGoalRepo) Create(_ context.Context, goal *model.Goal) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	m.s.goals[goalKey{goal.DegreeID, goal.GoalCode}] = *goal
	return nil
}

func (m *mockGoalRepo) Get(_ context.Context, degreeID, goalCode string) (*model.Goal, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	if g, ok := m.s.goals[goalKey{degreeID, goalCode}]; ok {
		return &g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGoalRepo) ListByDegree(_ context.Context, degreeID string) ([]model.Goal, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.Goal
	for k, g := range m.s.goals {
		if k.degreeID == degreeID {
			result = append(result, g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].GoalCode < result[j].GoalCode })
	return result, nil
}

// ── Mock SemesterRepository ──

type mockSemesterRepo struct{ s *mockStore }

func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	m.s.semesters[semester.Key()] = *semester
	return nil
}

func (m *mockSemesterRepo) Get(_ context.Context, key model.SemesterKey) (*model.Semester, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	if sem, ok := m.s.semesters[key]; ok {
		return &sem, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(_ context.Context) ([]model.Semester, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.Semester
	for _, sem := range m.s.semesters {
		result = append(result, sem)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key().Compare(result[j].Key()) < 0 })
	return result, nil
}

// ── Mock CourseDegreeRepository ──

type mockCourseDegreeRepo struct{ s *mockStore }

func (m *mockCourseDegreeRepo) Create(_ context.Context, link *model.CourseDegree) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	m.s.links[linkKey{link.CourseNumber, link.DegreeID}] = *link
	return nil
}

func (m *mockCourseDegreeRepo) Get(_ context.Context, courseNumber, degreeID string) (*model.CourseDegree, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	if l, ok := m.s.links[linkKey{courseNumber, degreeID}]; ok {
		return &l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseDegreeRepo) ListByCourse(_ context.Context, courseNumber string) ([]model.CourseDegree, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.CourseDegree
	for k, l := range m.s.links {
		if k.courseNumber == courseNumber {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DegreeID < result[j].DegreeID })
	return result, nil
}

func (m *mockCourseDegreeRepo) ListDetailsByCourse(ctx context.Context, courseNumber string) ([]model.CourseDegreeDetail, error) {
	links, err := m.ListByCourse(ctx, courseNumber)
	if err != nil {
		return nil, err
	}
	result := make([]model.CourseDegreeDetail, 0, len(links))
	for _, l := range links {
		d := m.s.degrees[l.DegreeID]
		result = append(result, model.CourseDegreeDetail{
			DegreeID:   l.DegreeID,
			DegreeName: d.Name,
			Level:      d.Level,
			IsCore:     l.IsCore,
		})
	}
	return result, nil
}

// ── Mock SectionRepository ──

type mockSectionRepo struct{ s *mockStore }

func (m *mockSectionRepo) Create(_ context.Context, section *model.Section) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	m.s.sections[section.Key()] = *section
	return nil
}

func (m *mockSectionRepo) Get(_ context.Context, key model.SectionKey) (*model.Section, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	if sec, ok := m.s.sections[key]; ok {
		return &sec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSectionRepo) filter(keep func(model.Section) bool) ([]model.Section, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.Section
	for _, sec := range m.s.sections {
		if keep(sec) {
			result = append(result, sec)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key().String() < result[j].Key().String() })
	return result, nil
}

func (m *mockSectionRepo) ListBySemester(_ context.Context, semester model.SemesterKey) ([]model.Section, error) {
	return m.filter(func(sec model.Section) bool { return sec.Key().Semester() == semester })
}

func (m *mockSectionRepo) ListByCourse(_ context.Context, courseNumber string) ([]model.Section, error) {
	return m.filter(func(sec model.Section) bool { return sec.CourseNumber == courseNumber })
}

func (m *mockSectionRepo) ListByInstructor(_ context.Context, instructorID string) ([]model.Section, error) {
	return m.filter(func(sec model.Section) bool { return sec.InstructorID == instructorID })
}

func (m *mockSectionRepo) ListByDegree(_ context.Context, degreeID string) ([]model.Section, error) {
	return m.filter(func(sec model.Section) bool {
		_, linked := m.s.links[linkKey{sec.CourseNumber, degreeID}]
		return linked
	})
}

// ── Mock EvaluationRepository ──

type mockEvaluationRepo struct{ s *mockStore }

func (m *mockEvaluationRepo) CreateIfAbsent(_ context.Context, evaluations []model.Evaluation) (int64, error) {
	if m.s.failWith != nil {
		return 0, m.s.failWith
	}
	var created int64
	for _, e := range evaluations {
		if _, ok := m.s.evaluations[e.Key()]; ok {
			continue
		}
		m.s.evaluations[e.Key()] = e
		created++
	}
	return created, nil
}

func (m *mockEvaluationRepo) Upsert(_ context.Context, evaluation *model.Evaluation) error {
	if m.s.failWith != nil {
		return m.s.failWith
	}
	m.s.upserts++
	m.s.evaluations[evaluation.Key()] = *evaluation
	return nil
}

func (m *mockEvaluationRepo) Get(_ context.Context, key model.EvaluationKey) (*model.Evaluation, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	if e, ok := m.s.evaluations[key]; ok {
		return &e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEvaluationRepo) list(keep func(model.EvaluationKey) bool) ([]model.Evaluation, error) {
	if m.s.failWith != nil {
		return nil, m.s.failWith
	}
	var result []model.Evaluation
	for k, e := range m.s.evaluations {
		if keep(k) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key().String() < result[j].Key().String() })
	return result, nil
}

func (m *mockEvaluationRepo) ListBySection(_ context.Context, key model.SectionKey) ([]model.Evaluation, error) {
	return m.list(func(k model.EvaluationKey) bool { return k.SectionKey == key })
}

func (m *mockEvaluationRepo) ListBySemester(_ context.Context, semester model.SemesterKey) ([]model.Evaluation, error) {
	return m.list(func(k model.EvaluationKey) bool { return k.Semester() == semester })
}
