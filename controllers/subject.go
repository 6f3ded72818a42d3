package controllers

import (
	"cgpa-calculator/models"
	"cgpa-calculator/utils"
	"net/http"

	"github.com/gorilla/mux"
)

// Controller for subject rows
func (c Controller) AddSubject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		semesterID := mux.Vars(r)["semesterID"]
		c.mutate(w, r, http.StatusCreated, func(ws models.Workspace) (models.Workspace, error) {
			return ws.AddSubject(semesterID)
		})
	}
}

func (c Controller) UpdateSubject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		var req models.SubjectUpdateRequest
		if err := utils.DecodeAndValidate(r.Body, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}

		c.mutate(w, r, http.StatusOK, func(ws models.Workspace) (models.Workspace, error) {
			return ws.UpdateSubject(vars["semesterID"], vars["subjectID"], req.SubjectPatch)
		})
	}
}

func (c Controller) DeleteSubject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		c.mutate(w, r, http.StatusOK, func(ws models.Workspace) (models.Workspace, error) {
			return ws.RemoveSubject(vars["semesterID"], vars["subjectID"])
		})
	}
}
