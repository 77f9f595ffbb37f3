package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"eduhub/models"
	"eduhub/utils"
)

func runRoleGate(t *testing.T, handler gin.HandlerFunc, user *models.User) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	if user != nil {
		utils.SetUserInContext(c, user)
	}

	handler(c)
	return w
}

func TestRequireContentManager(t *testing.T) {
	w := runRoleGate(t, RequireContentManager(), &models.User{Role: models.RoleAdmin})
	assert.Equal(t, http.StatusOK, w.Code)

	w = runRoleGate(t, RequireContentManager(), &models.User{Role: models.RoleModerator})
	assert.Equal(t, http.StatusOK, w.Code)

	w = runRoleGate(t, RequireContentManager(), &models.User{Role: models.RoleStudent})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = runRoleGate(t, RequireContentManager(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	w := runRoleGate(t, RequireAdmin(), &models.User{Role: models.RoleAdmin})
	assert.Equal(t, http.StatusOK, w.Code)

	w = runRoleGate(t, RequireAdmin(), &models.User{Role: models.RoleModerator})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
