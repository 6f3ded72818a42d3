package controllers

import (
	"cgpa-calculator/models"
	"cgpa-calculator/utils"
	"net/http"

	"github.com/gorilla/mux"
)

func (c Controller) AddGrade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.mutate(w, r, http.StatusCreated, func(ws models.Workspace) (models.Workspace, error) {
			return ws.WithGradeTable(ws.GradeTable.Add()), nil
		})
	}
}

// UpdateGrade sets the points of a mapping before renaming it, so both may
// change in one request.
func (c Controller) UpdateGrade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := mux.Vars(r)["grade"]

		var req models.GradeUpdateRequest
		if err := utils.DecodeAndValidate(r.Body, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}

		c.mutate(w, r, http.StatusOK, func(ws models.Workspace) (models.Workspace, error) {
			table := ws.GradeTable
			var err error
			if req.Points != nil {
				if table, err = table.SetPoints(grade, *req.Points); err != nil {
					return ws, err
				}
			}
			if req.Label != nil {
				if table, err = table.Rename(grade, *req.Label); err != nil {
					return ws, err
				}
			}
			return ws.WithGradeTable(table), nil
		})
	}
}

func (c Controller) DeleteGrade() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade := mux.Vars(r)["grade"]
		c.mutate(w, r, http.StatusOK, func(ws models.Workspace) (models.Workspace, error) {
			table, err := ws.GradeTable.Delete(grade)
			if err != nil {
				return ws, err
			}
			return ws.WithGradeTable(table), nil
		})
	}
}
