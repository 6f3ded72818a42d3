package controllers

import (
	"bytes"
	"cgpa-calculator/models"
	"cgpa-calculator/report"
	"cgpa-calculator/sheets"
	"cgpa-calculator/utils"
	"net/http"
)

const (
	maxUploadSize = 10 << 20
	xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ImportSheet replaces the semesters of the workspace with the sheets of
// the uploaded workbook. The grade table is kept.
func (c Controller) ImportSheet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid multipart form"})
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "file is required"})
			return
		}
		defer file.Close()

		semesters, err := sheets.ReadSemesters(file)
		if err != nil {
			c.Log.WithError(err).WithField("workspace_id", workspaceID(r)).Warn("rejected workbook")
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Failed to read workbook"})
			return
		}

		c.mutate(w, r, http.StatusOK, func(ws models.Workspace) (models.Workspace, error) {
			return ws.WithSemesters(semesters), nil
		})
	}
}

func (c Controller) ExportSheet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := c.Store.Load(r.Context(), workspaceID(r))
		if err != nil {
			c.respondError(w, r, err, "Failed to load workspace")
			return
		}

		rep, err := report.Build(ws, c.Formula)
		if err != nil {
			c.respondError(w, r, err, "Failed to compute report")
			return
		}

		var buf bytes.Buffer
		if err := sheets.WriteReport(&buf, rep); err != nil {
			c.respondError(w, r, err, "Failed to write workbook")
			return
		}

		w.Header().Set("Content-Type", xlsxMediaType)
		w.Header().Set("Content-Disposition", `attachment; filename="cgpa-report.xlsx"`)
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}
