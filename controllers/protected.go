package controllers

import (
	"cgpa-calculator/calculator"
	"cgpa-calculator/models"
	"cgpa-calculator/utils"
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// WorkspaceStore is the part of store.Workspaces the handlers need.
type WorkspaceStore interface {
	Create(ctx context.Context, ws models.Workspace) (models.Workspace, error)
	Load(ctx context.Context, id string) (models.Workspace, error)
	Update(ctx context.Context, id string, fn func(models.Workspace) (models.Workspace, error)) (models.Workspace, error)
	Delete(ctx context.Context, id string) error
}

type Controller struct {
	Store    WorkspaceStore
	Hub      *Hub
	Scale    models.GradeTable
	Formula  *calculator.PercentageFormula
	Secret   string
	TokenTTL time.Duration
	Log      *logrus.Logger
}

type contextKey string

const workspaceKey contextKey = "workspace_id"

func workspaceID(r *http.Request) string {
	id, _ := r.Context().Value(workspaceKey).(string)
	return id
}

// TokenVerifyMiddleware admits requests carrying a valid session token and
// stores the workspace it addresses in the request context.
func (c Controller) TokenVerifyMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var errorObject models.Error

		token, err := utils.TokenFromRequest(r)
		if err != nil {
			errorObject.Message = err.Error()
			utils.RespondWithError(w, http.StatusUnauthorized, errorObject)
			return
		}

		id, err := utils.ParseToken(token, c.Secret)
		if err != nil {
			errorObject.Message = err.Error()
			utils.RespondWithError(w, http.StatusUnauthorized, errorObject)
			return
		}

		ctx := context.WithValue(r.Context(), workspaceKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
