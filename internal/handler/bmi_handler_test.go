package handler_test

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/sekolahfit/segak-api/internal/models"
)

func bmiForm(studentID uint, height, weight, date string) url.Values {
	return url.Values{
		"student_id":  {fmt.Sprint(studentID)},
		"height":      {height},
		"weight":      {weight},
		"record_date": {date},
	}
}

func TestAddBMIConvertsCentimeters(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	class := ta.seedClass(t, "1 Amanah")
	student := ta.seedStudent(t, "Amir", class.ID)
	cookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)

	// The add form takes height in centimeters.
	resp := ta.postForm(t, "/add_bmi", bmiForm(student.ID, "160", "60", "2026-03-01"), cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/bmi_records", resp.Header.Get("Location"))

	var saved models.BMIRecord
	require.NoError(t, ta.db.First(&saved, "student_id = ?", student.ID).Error)
	require.InDelta(t, 1.60, saved.HeightM, 0.0001)
	require.InDelta(t, 23.44, saved.BMIValue, 0.0001)
	require.Equal(t, "Normal", saved.BMIStatus)
}

func TestEditBMITakesMeters(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	class := ta.seedClass(t, "1 Amanah")
	student := ta.seedStudent(t, "Amir", class.ID)
	record := ta.seedBMI(t, student.ID, "2026-03-01")
	cookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)

	// The edit form takes height already in meters.
	resp := ta.postForm(t, fmt.Sprintf("/edit_bmi/%d", record.ID), url.Values{
		"height":      {"1.70"},
		"weight":      {"90"},
		"record_date": {"2026-03-02"},
	}, cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	var saved models.BMIRecord
	require.NoError(t, ta.db.First(&saved, record.ID).Error)
	require.InDelta(t, 1.70, saved.HeightM, 0.0001)
	require.InDelta(t, 31.14, saved.BMIValue, 0.0001)
	require.Equal(t, "Obese", saved.BMIStatus)
}

func TestMissingBMIEditAndDeleteDiffer(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	cookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)

	// Editing a missing record is an error the caller sees.
	resp := ta.get(t, "/edit_bmi/999", cookie)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = ta.postForm(t, "/edit_bmi/999", url.Values{
		"height":      {"1.50"},
		"weight":      {"45"},
		"record_date": {"2026-03-01"},
	}, cookie)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Deleting a missing record is silently a no-op.
	resp = ta.get(t, "/delete_bmi/999", cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/bmi_records", resp.Header.Get("Location"))
}

func TestAddBMIRejectsBadDate(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	class := ta.seedClass(t, "1 Amanah")
	student := ta.seedStudent(t, "Amir", class.ID)
	cookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)

	resp := ta.postForm(t, "/add_bmi", bmiForm(student.ID, "160", "60", "01/03/2026"), cookie)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, ta.db.Model(&models.BMIRecord{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestBMIRecordsListFiltersByClass(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	amanah := ta.seedClass(t, "1 Amanah")
	bestari := ta.seedClass(t, "1 Bestari")
	amir := ta.seedStudent(t, "Amir", amanah.ID)
	lina := ta.seedStudent(t, "Lina", bestari.ID)
	ta.seedBMI(t, amir.ID, "2026-03-01")
	ta.seedBMI(t, lina.ID, "2026-03-01")
	cookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)

	resp := ta.get(t, "/bmi_records?class=1+Bestari", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	require.Contains(t, body, "Lina")
	require.NotContains(t, body, "Amir")
}
