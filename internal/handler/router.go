package handler

import (
	"embed"
	"html/template"
	"strings"

	"querydesk/internal/render"
	"querydesk/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the console page. Everything from the backend goes
// through html/template escaping. pngSrc lets png data URIs past the URL
// filter; the attribute value itself is still escaped.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"pngSrc": pngSrc,
	}).ParseFS(templateFS, "templates/*.tmpl"))
}

func pngSrc(src string) template.URL {
	if !strings.HasPrefix(src, render.PNGDataURIPrefix) {
		return template.URL("#")
	}
	return template.URL(src)
}

func NewRouter(client service.QueryClient) *gin.Engine {
	UseClient(client)

	r := gin.Default()
	r.Use(RequestID())
	r.SetHTMLTemplate(Templates())

	r.GET("/ping", Ping)

	r.GET("/", IndexHandler)
	r.POST("/", SubmitHandler)
	r.POST("/api/render", RenderHandler)

	return r
}
