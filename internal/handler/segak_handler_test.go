package handler_test

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/sekolahfit/segak-api/internal/models"
)

func segakForm(studentID uint, date, stepTest, pushUp, sitUp, sitReach string) url.Values {
	return url.Values{
		"student_id": {fmt.Sprint(studentID)},
		"test_date":  {date},
		"step_test":  {stepTest},
		"push_up":    {pushUp},
		"sit_up":     {sitUp},
		"sit_reach":  {sitReach},
	}
}

func TestAddSegakClassifies(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	class := ta.seedClass(t, "1 Amanah")
	student := ta.seedStudent(t, "Amir", class.ID)
	cookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)

	// A weak sit-and-reach forces Poor regardless of the other scores.
	resp := ta.postForm(t, "/add_segak", segakForm(student.ID, "2026-03-01", "30", "30", "30", "1"), cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/segak_records", resp.Header.Get("Location"))

	var saved models.SegakRecord
	require.NoError(t, ta.db.First(&saved, "student_id = ?", student.ID).Error)
	require.Equal(t, "Poor", saved.FitnessLevel)
}

func TestEditSegakRecomputesLevel(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	class := ta.seedClass(t, "1 Amanah")
	student := ta.seedStudent(t, "Amir", class.ID)
	record := ta.seedSegak(t, student.ID, "2026-03-01")
	cookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)

	resp := ta.postForm(t, fmt.Sprintf("/edit_segak/%d", record.ID), url.Values{
		"test_date": {"2026-03-02"},
		"step_test": {"30"},
		"push_up":   {"25"},
		"sit_up":    {"25"},
		"sit_reach": {"25"},
	}, cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)

	var saved models.SegakRecord
	require.NoError(t, ta.db.First(&saved, record.ID).Error)
	require.Equal(t, "Excellent", saved.FitnessLevel)
}

func TestMissingSegakEditAndDeleteDiffer(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	cookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)

	resp := ta.get(t, "/edit_segak/999", cookie)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = ta.get(t, "/delete_segak/999", cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/segak_records", resp.Header.Get("Location"))
}
