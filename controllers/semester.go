package controllers

import (
	"cgpa-calculator/models"
	"cgpa-calculator/utils"
	"net/http"

	"github.com/gorilla/mux"
)

func (c Controller) AddSemester() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.mutate(w, r, http.StatusCreated, func(ws models.Workspace) (models.Workspace, error) {
			return ws.AddSemester(), nil
		})
	}
}

func (c Controller) UpdateSemester() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		semesterID := mux.Vars(r)["semesterID"]

		var req models.SemesterUpdateRequest
		if err := utils.DecodeAndValidate(r.Body, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}

		c.mutate(w, r, http.StatusOK, func(ws models.Workspace) (models.Workspace, error) {
			return ws.RenameSemester(semesterID, *req.Title)
		})
	}
}

func (c Controller) DeleteSemester() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		semesterID := mux.Vars(r)["semesterID"]
		c.mutate(w, r, http.StatusOK, func(ws models.Workspace) (models.Workspace, error) {
			return ws.RemoveSemester(semesterID)
		})
	}
}
