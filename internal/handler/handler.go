package handler

import (
	"log"
	"net/http"

	"querydesk/internal/model"
	"querydesk/internal/render"
	"querydesk/internal/service"

	"github.com/gin-gonic/gin"
)

var queryClient service.QueryClient

// UseClient sets the backend every submission is sent to.
func UseClient(client service.QueryClient) {
	queryClient = client
}

type pageData struct {
	Query     string
	Endpoint  string
	Submitted bool
	Display   *render.Display
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", pageData{
		Endpoint: endpoint(),
		Display:  render.NewDisplay(),
	})
}

// SubmitHandler handles the console form and answers with the rendered page.
func SubmitHandler(c *gin.Context) {
	if queryClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No query endpoint configured"})
		return
	}

	query := c.PostForm("query")
	display := render.NewDisplay()
	submit(c, display, query)

	c.HTML(http.StatusOK, "index.tmpl", pageData{
		Query:     query,
		Endpoint:  endpoint(),
		Submitted: true,
		Display:   display,
	})
}

// RenderHandler is the JSON flavour of SubmitHandler. Backend failures are
// part of the rendered display, so it answers 200 once the request is valid.
func RenderHandler(c *gin.Context) {
	var req model.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if queryClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No query endpoint configured"})
		return
	}

	display := render.NewDisplay()
	submit(c, display, req.Query)

	c.JSON(http.StatusOK, display)
}

func submit(c *gin.Context, display *render.Display, query string) {
	requestID := c.GetString(requestIDKey)
	log.Printf("[%s] submitting query to %s: %q\n", requestID, queryClient.Endpoint(), query)

	if err := render.Submit(c.Request.Context(), queryClient, display, query); err != nil {
		log.Printf("[%s] query failed: %v\n", requestID, err)
	}
}

func endpoint() string {
	if queryClient == nil {
		return ""
	}
	return queryClient.Endpoint()
}
