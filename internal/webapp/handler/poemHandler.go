package handler

import (
	"errors"
	"net/http"
	"strconv"

	"poemhub/internal/webapp/dto"
	"poemhub/internal/webapp/middleware"
	"poemhub/internal/webapp/service"

	"github.com/gin-gonic/gin"
)

type PoemHandler struct {
	poemService service.PoemService
}

func NewPoemHandler(poemService service.PoemService) *PoemHandler {
	return &PoemHandler{
		poemService: poemService,
	}
}

// RegisterRoutes registers poem-related routes
func (h *PoemHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Index)
	router.GET("/poems/:id", h.Detail)
	router.GET("/poems/:id/edit", h.EditForm)

	admin := router.Group("/poems", middleware.RequireAdmin())
	{
		admin.POST("", h.Create)
		admin.POST("/:id/edit", h.Edit)
		admin.POST("/:id/delete", h.Delete)
	}
}

// Index renders the home page: every poem with its counts and the caller's vote
// GET /
func (h *PoemHandler) Index(c *gin.Context) {
	sess := middleware.GetSession(c)

	poems, err := h.poemService.ListPoems(c.Request.Context(), sess.SID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Poems":   poems,
		"IsAdmin": sess.IsAdmin,
	})
}

// Detail renders one poem with counts, the caller's vote, and its comments
// GET /poems/:id
func (h *PoemHandler) Detail(c *gin.Context) {
	poemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Poem not found")
		return
	}

	sess := middleware.GetSession(c)

	detail, err := h.poemService.GetPoemDetail(c.Request.Context(), poemID, sess.SID)
	if err != nil {
		if errors.Is(err, service.ErrPoemNotFound) {
			c.String(http.StatusNotFound, "Poem not found")
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.HTML(http.StatusOK, "poem_detail.html", gin.H{
		"Poem":    detail,
		"IsAdmin": sess.IsAdmin,
	})
}

// Create adds a poem from the home page form
// POST /poems
func (h *PoemHandler) Create(c *gin.Context) {
	var form dto.CreatePoemForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Title and content are required")
		return
	}

	if _, err := h.poemService.CreatePoem(c.Request.Context(), form.Title, form.Content); err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// EditForm renders the edit form. Anonymous visitors are sent to the login
// page instead of getting a bare rejection, matching the admin workflow.
// GET /poems/:id/edit
func (h *PoemHandler) EditForm(c *gin.Context) {
	sess := middleware.GetSession(c)
	if !sess.IsAdmin {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	poemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Poem not found")
		return
	}

	poem, err := h.poemService.GetPoem(c.Request.Context(), poemID)
	if err != nil {
		if errors.Is(err, service.ErrPoemNotFound) {
			c.String(http.StatusNotFound, "Poem not found")
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.HTML(http.StatusOK, "edit_poem.html", gin.H{
		"Poem":    poem,
		"IsAdmin": true,
	})
}

// Edit updates a poem's title and content
// POST /poems/:id/edit
func (h *PoemHandler) Edit(c *gin.Context) {
	poemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Poem not found")
		return
	}

	var form dto.CreatePoemForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Title and content are required")
		return
	}

	if _, err := h.poemService.UpdatePoem(c.Request.Context(), poemID, form.Title, form.Content); err != nil {
		if errors.Is(err, service.ErrPoemNotFound) {
			c.String(http.StatusNotFound, "Poem not found")
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Delete removes a poem and everything it owns
// POST /poems/:id/delete
func (h *PoemHandler) Delete(c *gin.Context) {
	poemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Poem not found")
		return
	}

	if err := h.poemService.DeletePoem(c.Request.Context(), poemID); err != nil {
		if errors.Is(err, service.ErrPoemNotFound) {
			c.String(http.StatusNotFound, "Poem not found")
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
