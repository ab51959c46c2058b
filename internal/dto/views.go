package dto

// StudentRow is one roster entry joined with its class name.
type StudentRow struct {
	ID        uint
	Name      string
	Gender    string
	Age       int
	ClassName string
}

// StudentOption is a minimal student reference for select inputs.
type StudentOption struct {
	ID        uint
	Name      string
	Gender    string
	ClassName string
}

// BMIRow is one BMI record joined with student and class names.
type BMIRow struct {
	ID          uint
	StudentName string
	ClassName   string
	HeightM     float64
	WeightKg    float64
	BMIValue    float64
	BMIStatus   string
	RecordDate  string
}

// SegakRow is one SEGAK record joined with student and class names.
type SegakRow struct {
	ID           uint
	StudentName  string
	ClassName    string
	StepTest     int
	PushUp       int
	SitUp        int
	SitReach     float64
	FitnessLevel string
	TestDate     string
}

// BMIHistoryRow is one BMI measurement in a single student's history.
type BMIHistoryRow struct {
	RecordDate string
	HeightM    float64
	WeightKg   float64
	BMIValue   float64
	BMIStatus  string
}

// SegakHistoryRow is one SEGAK result in a single student's history.
type SegakHistoryRow struct {
	TestDate     string
	StepTest     int
	PushUp       int
	SitUp        int
	SitReach     float64
	FitnessLevel string
}

// StudentProfile is a student's identity block for self-service views.
type StudentProfile struct {
	ID        uint
	Name      string
	Gender    string
	Age       int
	ClassName string
}

// TeacherDashboard aggregates the counts shown on the teacher landing page.
type TeacherDashboard struct {
	TeacherName   string
	TotalStudents int64
	TotalBMI      int64
	TotalSegak    int64
	TotalClasses  int64
}

// StudentDashboard is a student's own profile plus full histories.
type StudentDashboard struct {
	Profile      StudentProfile
	BMIHistory   []BMIHistoryRow
	SegakHistory []SegakHistoryRow
}

// StudentPrint is the printable summary: profile plus the single most
// recent record of each kind. A nil record means no history yet.
type StudentPrint struct {
	Profile     StudentProfile
	LatestBMI   *BMIHistoryRow
	LatestSegak *SegakHistoryRow
}

// ResultsView is the teacher drill-down: each stage is optional and absent
// selections simply leave their slice or pointer empty.
type ResultsView struct {
	Students     []StudentOption
	StudentInfo  *StudentProfile
	BMIHistory   []BMIHistoryRow
	SegakHistory []SegakHistoryRow
}
