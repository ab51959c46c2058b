package handler_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/sekolahfit/segak-api/internal/models"
	"github.com/sekolahfit/segak-api/internal/session"
)

func loginForm(email, password string) url.Values {
	return url.Values{
		"email":    {email},
		"password": {password},
	}
}

func sessionCookieFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestLoginTeacher(t *testing.T) {
	ta := newTestApp(t)
	ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")

	resp := ta.postForm(t, "/", loginForm("cikgu@sekolah.my", "rahsia123"), nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/dashboard", resp.Header.Get("Location"))

	cookie := sessionCookieFrom(t, resp)
	require.True(t, cookie.HttpOnly)

	sess, err := ta.sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	require.Equal(t, models.RoleTeacher, sess.Role)
	require.Equal(t, "Cikgu Aminah", sess.Name)
}

func TestLoginStudent(t *testing.T) {
	ta := newTestApp(t)
	class := ta.seedClass(t, "1 Amanah")
	student := ta.seedStudent(t, "Amir", class.ID)
	ta.seedStudentUser(t, student.ID, "amir@sekolah.my", "rahsia123")

	resp := ta.postForm(t, "/", loginForm("amir@sekolah.my", "rahsia123"), nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/student_dashboard", resp.Header.Get("Location"))

	cookie := sessionCookieFrom(t, resp)
	sess, err := ta.sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, sess.Role)
	require.Equal(t, student.ID, sess.UserID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ta := newTestApp(t)
	ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")

	// Wrong password and unknown email produce the same page with the
	// same message.
	wrongPassword := ta.postForm(t, "/", loginForm("cikgu@sekolah.my", "salah"), nil)
	require.Equal(t, fiber.StatusOK, wrongPassword.StatusCode)
	require.Contains(t, readBody(t, wrongPassword), "Invalid email or password")
	require.Empty(t, wrongPassword.Cookies())

	unknownEmail := ta.postForm(t, "/", loginForm("takwujud@sekolah.my", "rahsia123"), nil)
	require.Equal(t, fiber.StatusOK, unknownEmail.StatusCode)
	require.Contains(t, readBody(t, unknownEmail), "Invalid email or password")
	require.Empty(t, unknownEmail.Cookies())
}

func TestLogoutDestroysSession(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	cookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)

	resp := ta.get(t, "/logout", cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	_, err := ta.sessions.Get(context.Background(), cookie.Value)
	require.ErrorIs(t, err, session.ErrNotFound)

	// The stale cookie no longer grants access.
	resp = ta.get(t, "/dashboard", cookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func TestRoleGates(t *testing.T) {
	ta := newTestApp(t)
	teacher := ta.seedTeacher(t, "cikgu@sekolah.my", "rahsia123")
	class := ta.seedClass(t, "1 Amanah")
	student := ta.seedStudent(t, "Amir", class.ID)

	teacherCookie := ta.sessionCookie(t, teacher.ID, models.RoleTeacher, teacher.Name)
	studentCookie := ta.sessionCookie(t, student.ID, models.RoleStudent, student.Name)

	// No session redirects to login.
	resp := ta.get(t, "/students", nil)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	// A student session does not open teacher pages.
	resp = ta.get(t, "/students", studentCookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	// A teacher session does not open student pages.
	resp = ta.get(t, "/student_dashboard", teacherCookie)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	// Matching roles pass through.
	resp = ta.get(t, "/students", teacherCookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = ta.get(t, "/student_dashboard", studentCookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
