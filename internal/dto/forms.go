package dto

// LoginForm carries the credentials posted to the login page.
type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// StudentForm carries the roster fields for both create and edit.
type StudentForm struct {
	Name    string `form:"name" validate:"required,max=255"`
	Gender  string `form:"gender" validate:"required,max=20"`
	Age     int    `form:"age" validate:"required,gte=4,lte=25"`
	ClassID uint   `form:"class_id" validate:"required"`
}

// BMICreateForm carries a new BMI measurement. Height arrives in
// centimeters and is converted to meters before storage.
type BMICreateForm struct {
	StudentID  uint    `form:"student_id" validate:"required"`
	HeightCm   float64 `form:"height" validate:"required,gt=0"`
	WeightKg   float64 `form:"weight" validate:"required,gt=0"`
	RecordDate string  `form:"record_date" validate:"required,datetime=2006-01-02"`
}

// BMIEditForm carries an edited BMI measurement. Unlike the create path,
// height here is already in meters (see BMIService.Update).
type BMIEditForm struct {
	HeightM    float64 `form:"height" validate:"required,gt=0"`
	WeightKg   float64 `form:"weight" validate:"required,gt=0"`
	RecordDate string  `form:"record_date" validate:"required,datetime=2006-01-02"`
}

// SegakCreateForm carries a new SEGAK test result.
type SegakCreateForm struct {
	StudentID uint    `form:"student_id" validate:"required"`
	TestDate  string  `form:"test_date" validate:"required,datetime=2006-01-02"`
	StepTest  int     `form:"step_test" validate:"gte=0"`
	PushUp    int     `form:"push_up" validate:"gte=0"`
	SitUp     int     `form:"sit_up" validate:"gte=0"`
	SitReach  float64 `form:"sit_reach" validate:"gte=0"`
}

// SegakEditForm carries an edited SEGAK test result.
type SegakEditForm struct {
	TestDate string  `form:"test_date" validate:"required,datetime=2006-01-02"`
	StepTest int     `form:"step_test" validate:"gte=0"`
	PushUp   int     `form:"push_up" validate:"gte=0"`
	SitUp    int     `form:"sit_up" validate:"gte=0"`
	SitReach float64 `form:"sit_reach" validate:"gte=0"`
}
