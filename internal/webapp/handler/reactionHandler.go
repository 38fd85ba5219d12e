package handler

import (
	"errors"
	"net/http"
	"strconv"

	"poemhub/internal/webapp/dto"
	"poemhub/internal/webapp/middleware"
	"poemhub/internal/webapp/service"
	"poemhub/internal/webapp/session"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	reactionService service.ReactionService
	store           session.Store
}

func NewReactionHandler(reactionService service.ReactionService, store session.Store) *ReactionHandler {
	return &ReactionHandler{
		reactionService: reactionService,
		store:           store,
	}
}

// RegisterRoutes registers reaction-related routes
func (h *ReactionHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/poems/:id/like", h.React)
}

// React records a like or dislike for the caller's session. The session
// gets an anonymous id here if it doesn't have one yet.
// POST /poems/:id/like
func (h *ReactionHandler) React(c *gin.Context) {
	poemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Poem not found")
		return
	}

	var form dto.ReactionForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid reaction value")
		return
	}

	sess := middleware.GetSession(c)
	sid, assigned := sess.EnsureSID()
	if assigned {
		// round-trip the new id before anything can fail, like the
		// ambient session middleware the flow replaced
		if err := h.store.Save(c.Writer, c.Request, sess); err != nil {
			c.String(http.StatusInternalServerError, "Something went wrong")
			return
		}
	}

	if _, err := h.reactionService.Apply(c.Request.Context(), poemID, sid, form.Value); err != nil {
		switch {
		case errors.Is(err, service.ErrPoemNotFound):
			c.String(http.StatusNotFound, "Poem not found")
		case errors.Is(err, service.ErrInvalidReaction):
			c.String(http.StatusBadRequest, "Invalid reaction value")
		default:
			c.String(http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	c.Redirect(http.StatusFound, "/")
}
