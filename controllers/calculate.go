package controllers

import (
	"cgpa-calculator/models"
	"cgpa-calculator/report"
	"cgpa-calculator/utils"
	"net/http"
)

func (c Controller) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, models.Message{Message: "ok"})
	}
}

func (c Controller) GradeScale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, c.Scale)
	}
}

// Calculate computes a report for the posted semesters without touching any
// session. The configured scale is used when the body carries no table.
func (c Controller) Calculate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CalculateRequest
		if err := utils.DecodeAndValidate(r.Body, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			return
		}

		table := models.NewGradeTable(req.GradeTable)
		if table.Len() == 0 {
			table = c.Scale
		}
		ws := models.Workspace{
			GradeTable:        table,
			Semesters:         req.Semesters,
			IncludePercentage: req.IncludePercentage,
		}

		rep, err := report.Build(ws, c.Formula)
		if err != nil {
			c.respondError(w, r, err, "Failed to compute report")
			return
		}
		utils.ResponseJSON(w, rep)
	}
}
