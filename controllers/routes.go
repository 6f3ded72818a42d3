package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (c Controller) Routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger(c.Log))

	router.HandleFunc("/health", c.Health()).Methods("GET")
	router.HandleFunc("/grade-scale", c.GradeScale()).Methods("GET")
	router.HandleFunc("/calculate", c.Calculate()).Methods("POST")
	router.HandleFunc("/sessions", c.CreateSession()).Methods("POST")

	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return c.TokenVerifyMiddleware(h)
	}

	router.HandleFunc("/workspace", protected(c.GetWorkspace())).Methods("GET")
	router.HandleFunc("/workspace", protected(c.DeleteWorkspace())).Methods("DELETE")
	router.HandleFunc("/workspace/percentage", protected(c.SetPercentage())).Methods("PUT")
	router.HandleFunc("/workspace/live", protected(c.Live())).Methods("GET")
	router.HandleFunc("/workspace/import", protected(c.ImportSheet())).Methods("POST")
	router.HandleFunc("/workspace/export", protected(c.ExportSheet())).Methods("GET")

	router.HandleFunc("/workspace/grades", protected(c.AddGrade())).Methods("POST")
	router.HandleFunc("/workspace/grades/{grade}", protected(c.UpdateGrade())).Methods("PUT")
	router.HandleFunc("/workspace/grades/{grade}", protected(c.DeleteGrade())).Methods("DELETE")

	router.HandleFunc("/workspace/semesters", protected(c.AddSemester())).Methods("POST")
	router.HandleFunc("/workspace/semesters/{semesterID}", protected(c.UpdateSemester())).Methods("PUT")
	router.HandleFunc("/workspace/semesters/{semesterID}", protected(c.DeleteSemester())).Methods("DELETE")

	router.HandleFunc("/workspace/semesters/{semesterID}/subjects", protected(c.AddSubject())).Methods("POST")
	router.HandleFunc("/workspace/semesters/{semesterID}/subjects/{subjectID}", protected(c.UpdateSubject())).Methods("PUT")
	router.HandleFunc("/workspace/semesters/{semesterID}/subjects/{subjectID}", protected(c.DeleteSubject())).Methods("DELETE")

	return router
}
