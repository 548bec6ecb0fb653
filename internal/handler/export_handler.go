package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"
)

type ExportHandler struct {
	students StudentStore
}

func NewExportHandler(students StudentStore) *ExportHandler {
	return &ExportHandler{students: students}
}

const exportSheet = "Students"

// Students writes the full roster as a spreadsheet download.
func (h *ExportHandler) Students(w http.ResponseWriter, r *http.Request) {
	students, err := h.students.List()
	if err != nil {
		serverError(w, "export students", err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), exportSheet)

	header := []interface{}{"First name", "Last name", "Email", "Age", "Classroom"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		serverError(w, "export students", err)
		return
	}

	for i, s := range students {
		row := []interface{}{s.FirstName, s.LastName, s.Email, nil, s.ClassroomName}
		if s.Age != nil {
			row[3] = *s.Age
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			serverError(w, "export students", err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="students.xlsx"`)

	if err := f.Write(w); err != nil {
		// Headers are already out, nothing left to do but log.
		slog.Error("write spreadsheet", "error", err)
	}
}
