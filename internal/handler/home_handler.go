package handler

import (
	"html/template"
	"net/http"
)

type HomeHandler struct {
	tmpl *template.Template
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{tmpl: parseTemplate("index.html")}
}

func (h *HomeHandler) Landing(w http.ResponseWriter, r *http.Request) {
	render(w, h.tmpl, nil)
}
