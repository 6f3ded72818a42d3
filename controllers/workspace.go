package controllers

import (
	"cgpa-calculator/models"
	"cgpa-calculator/report"
	"cgpa-calculator/store"
	"cgpa-calculator/utils"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, models.ErrSemesterNotFound),
		errors.Is(err, models.ErrSubjectNotFound),
		errors.Is(err, models.ErrGradeNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrLastSemester),
		errors.Is(err, models.ErrLastSubject),
		errors.Is(err, models.ErrLastGrade):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status it maps to. Internal errors are
// logged and replaced by fallback.
func (c Controller) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.Log.WithError(err).WithFields(logrus.Fields{
			"workspace_id": workspaceID(r),
			"path":         r.URL.Path,
		}).Error(fallback)
		utils.RespondWithError(w, status, models.Error{Message: fallback})
		return
	}
	utils.RespondWithError(w, status, models.Error{Message: err.Error()})
}

func (c Controller) respondReport(w http.ResponseWriter, r *http.Request, status int, ws models.Workspace) (models.Report, bool) {
	rep, err := report.Build(ws, c.Formula)
	if err != nil {
		c.respondError(w, r, err, "Failed to compute report")
		return models.Report{}, false
	}
	utils.ResponseJSONStatus(w, status, rep)
	return rep, true
}

// mutate applies fn to the caller's workspace, answers with the new report
// and pushes it to live subscribers.
func (c Controller) mutate(w http.ResponseWriter, r *http.Request, status int, fn func(models.Workspace) (models.Workspace, error)) {
	id := workspaceID(r)
	ws, err := c.Store.Update(r.Context(), id, fn)
	if err != nil {
		c.respondError(w, r, err, "Failed to update workspace")
		return
	}
	if rep, ok := c.respondReport(w, r, status, ws); ok {
		c.Hub.Publish(id, rep)
	}
}

func (c Controller) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := c.Store.Create(r.Context(), models.NewWorkspace(c.Scale))
		if err != nil {
			c.respondError(w, r, err, "Failed to create workspace")
			return
		}

		token, err := utils.GenerateToken(ws.ID, c.Secret, c.TokenTTL)
		if err != nil {
			c.respondError(w, r, err, "Failed to generate token")
			return
		}

		rep, err := report.Build(ws, c.Formula)
		if err != nil {
			c.respondError(w, r, err, "Failed to compute report")
			return
		}

		c.Log.WithField("workspace_id", ws.ID).Info("session created")
		utils.ResponseJSONStatus(w, http.StatusCreated, models.Session{JWT: token, Report: rep})
	}
}

func (c Controller) GetWorkspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := c.Store.Load(r.Context(), workspaceID(r))
		if err != nil {
			c.respondError(w, r, err, "Failed to load workspace")
			return
		}
		c.respondReport(w, r, http.StatusOK, ws)
	}
}

// DeleteWorkspace discards the caller's state and disconnects its live
// subscribers.
func (c Controller) DeleteWorkspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := workspaceID(r)
		if err := c.Store.Delete(r.Context(), id); err != nil {
			c.respondError(w, r, err, "Failed to delete workspace")
			return
		}
		c.Hub.Close(id)
		c.Log.WithField("workspace_id", id).Info("session closed")
		utils.ResponseJSON(w, models.Message{Message: "Workspace deleted"})
	}
}

func (c Controller) SetPercentage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PercentageRequest
		if err := utils.DecodeAndValidate(r.Body, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}
		c.mutate(w, r, http.StatusOK, func(ws models.Workspace) (models.Workspace, error) {
			return ws.WithPercentage(*req.Enabled), nil
		})
	}
}
