package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"poster-board/pkg/auth"
	"poster-board/pkg/logger"
	"poster-board/pkg/response"
	"poster-board/services/poster/internal/entity"
	"poster-board/services/poster/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PosterHandler struct {
	posterUseCase usecase.PosterUseCase
	logger        *logger.Logger
}

func NewPosterHandler(posterUseCase usecase.PosterUseCase, logger *logger.Logger) *PosterHandler {
	return &PosterHandler{
		posterUseCase: posterUseCase,
		logger:        logger,
	}
}

// PosterRequest mirrors the poster edit form.
type PosterRequest struct {
	Author       string `form:"poster-author"`
	CreationDate string `form:"poster-date"`
	Headline     string `form:"headline"`
	MetaData     string `form:"poster-footer"`
}

// ListPosters godoc
// @Summary      List posters
// @Description  List all posters, each with the media of its first illustrated section as preview
// @Tags         posters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /posters [get]
func (h *PosterHandler) ListPosters(c *gin.Context) {
	posters, err := h.posterUseCase.ListPosters(c.Request.Context())
	if err != nil {
		h.abortUnauthorized(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posters": posters,
		"count":   len(posters),
	})
}

// GetPoster godoc
// @Summary      Get poster by ID
// @Description  Get a poster with its sections ordered by index
// @Tags         posters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Poster ID"
// @Success      200  {object}  entity.Poster
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posters/{id} [get]
func (h *PosterHandler) GetPoster(c *gin.Context) {
	// Non-numeric ids fall through as 0, which the use case treats as not found.
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	poster, err := h.posterUseCase.GetPoster(c.Request.Context(), id)
	if err != nil {
		h.abortUnauthorized(c, err)
		return
	}
	if poster == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Poster not found"})
		return
	}

	c.JSON(http.StatusOK, poster)
}

// CreatePoster godoc
// @Summary      Create a poster
// @Description  Create a poster with up to three sections. A section is stored only when its headline is set.
// @Tags         posters
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        poster-author  formData  string  true   "Author"
// @Param        poster-date    formData  string  true   "Creation date"
// @Param        headline       formData  string  true   "Headline"
// @Param        poster-footer  formData  string  false  "Footer"
// @Param        s1headline     formData  string  false  "Section 1 headline"
// @Param        s1text         formData  string  false  "Section 1 text"
// @Param        s1alt          formData  string  false  "Section 1 image alt text"
// @Param        s1img          formData  file    false  "Section 1 image"
// @Param        s2headline     formData  string  false  "Section 2 headline"
// @Param        s2text         formData  string  false  "Section 2 text"
// @Param        s2alt          formData  string  false  "Section 2 image alt text"
// @Param        s2img          formData  file    false  "Section 2 image"
// @Param        s3headline     formData  string  false  "Section 3 headline"
// @Param        s3text         formData  string  false  "Section 3 text"
// @Param        s3alt          formData  string  false  "Section 3 image alt text"
// @Param        s3img          formData  file    false  "Section 3 image"
// @Success      201  {object}  response.Result
// @Failure      400  {object}  response.Result
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  response.Result
// @Router       /posters [post]
func (h *PosterHandler) CreatePoster(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	res, err := h.posterUseCase.CreatePoster(c.Request.Context(), form)
	if err != nil {
		h.abortUnauthorized(c, err)
		return
	}

	status := res.Status.HTTPStatus()
	if res.Status == response.Success {
		status = http.StatusCreated
	}
	c.JSON(status, res)
}

// UpdatePoster godoc
// @Summary      Update a poster
// @Description  Update a poster owned by the caller. Sections without a new image keep their current one.
// @Tags         posters
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id             path      int     true   "Poster ID"
// @Param        poster-author  formData  string  true   "Author"
// @Param        poster-date    formData  string  true   "Creation date"
// @Param        headline       formData  string  true   "Headline"
// @Param        poster-footer  formData  string  false  "Footer"
// @Param        s1headline     formData  string  false  "Section 1 headline"
// @Param        s1text         formData  string  false  "Section 1 text"
// @Param        s1alt          formData  string  false  "Section 1 image alt text"
// @Param        s1img          formData  file    false  "Section 1 image"
// @Param        s2headline     formData  string  false  "Section 2 headline"
// @Param        s2text         formData  string  false  "Section 2 text"
// @Param        s2alt          formData  string  false  "Section 2 image alt text"
// @Param        s2img          formData  file    false  "Section 2 image"
// @Param        s3headline     formData  string  false  "Section 3 headline"
// @Param        s3text         formData  string  false  "Section 3 text"
// @Param        s3alt          formData  string  false  "Section 3 image alt text"
// @Param        s3img          formData  file    false  "Section 3 image"
// @Success      200  {object}  response.Result
// @Failure      400  {object}  response.Result
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  response.Result
// @Router       /posters/{id} [put]
func (h *PosterHandler) UpdatePoster(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	form.PosterID = c.Param("id")

	res, err := h.posterUseCase.UpdatePoster(c.Request.Context(), form)
	if err != nil {
		h.abortUnauthorized(c, err)
		return
	}

	c.JSON(res.Status.HTTPStatus(), res)
}

// DeletePoster godoc
// @Summary      Delete a poster
// @Description  Delete a poster and its sections
// @Tags         posters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Poster ID"
// @Success      200  {object}  response.Result
// @Failure      400  {object}  response.Result
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  response.Result
// @Router       /posters/{id} [delete]
func (h *PosterHandler) DeletePoster(c *gin.Context) {
	res, err := h.posterUseCase.DeletePoster(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortUnauthorized(c, err)
		return
	}

	c.JSON(res.Status.HTTPStatus(), res)
}

func (h *PosterHandler) bindForm(c *gin.Context) (usecase.PosterForm, bool) {
	var req PosterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form"})
		return usecase.PosterForm{}, false
	}

	form := usecase.PosterForm{
		Author:       req.Author,
		CreationDate: req.CreationDate,
		Headline:     req.Headline,
		MetaData:     req.MetaData,
	}

	for i := 0; i < entity.SectionCount; i++ {
		n := i + 1
		form.Sections[i] = usecase.SectionInput{
			Headline: c.PostForm(fmt.Sprintf("s%dheadline", n)),
			Text:     c.PostForm(fmt.Sprintf("s%dtext", n)),
			Alt:      c.PostForm(fmt.Sprintf("s%dalt", n)),
		}
		if file, err := c.FormFile(fmt.Sprintf("s%dimg", n)); err == nil {
			form.Sections[i].File = file
		}
	}

	return form, true
}

func (h *PosterHandler) abortUnauthorized(c *gin.Context, err error) {
	if !errors.Is(err, auth.ErrUnauthenticated) {
		h.logger.Error("Auth gate failed: %v", err)
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}
