package controllers

import (
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/exceptions"
	"net/http"
)

// callerIdentity reads what Authenticate stored in the request context.
func callerIdentity(r *http.Request) (string, models.UserRole, error) {
	userID, _ := r.Context().Value(constvars.CONTEXT_USER_ID_KEY).(string)
	role, _ := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(models.UserRole)
	if userID == "" || role == "" {
		return "", "", exceptions.ErrMissingIdentity(nil)
	}
	return userID, role, nil
}
