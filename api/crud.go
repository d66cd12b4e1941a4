package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/export"
	"github.com/Domenick1991/airportadm/internal/service/crud"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultPageSize = 10

type pagedResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// FilterParser extracts an entity's filter fields from request query parameters.
type FilterParser[F any] func(c *gin.Context) F

// CrudHandler serves the full route set for one entity: paged list, filter,
// get, create, replace, patch, delete and file export.
type CrudHandler[T any, F any] struct {
	service     crud.UseCase[T, F]
	name        string
	parseFilter FilterParser[F]
	emptyFilter func(F) bool
	setID       func(*T, int64)
	layout      export.Layout[T]
}

func NewCrudHandler[T any, F any](
	name string,
	service crud.UseCase[T, F],
	parseFilter FilterParser[F],
	emptyFilter func(F) bool,
	setID func(*T, int64),
	layout export.Layout[T],
) *CrudHandler[T, F] {
	return &CrudHandler[T, F]{
		service:     service,
		name:        name,
		parseFilter: parseFilter,
		emptyFilter: emptyFilter,
		setID:       setID,
		layout:      layout,
	}
}

// Register mounts read routes on the public group and mutating routes on the
// protected one.
func (h *CrudHandler[T, F]) Register(public, protected *gin.RouterGroup) {
	public.GET("/"+h.name, h.list)
	public.GET("/"+h.name+"/filter", h.filter)
	public.GET("/"+h.name+"/export", h.export)
	public.GET("/"+h.name+"/:id", h.get)
	protected.POST("/"+h.name, h.create)
	protected.PUT("/"+h.name+"/:id", h.replace)
	protected.PATCH("/"+h.name+"/:id", h.patch)
	protected.DELETE("/"+h.name+"/:id", h.delete)
}

func (h *CrudHandler[T, F]) list(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	var none F
	count, err := h.service.Count(c.Request.Context(), none)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPagedResponse(items, page, pageSize, count))
}

func (h *CrudHandler[T, F]) filter(c *gin.Context) {
	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}
	f := h.parseFilter(c)
	if h.emptyFilter(f) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one filter field is required"})
		return
	}

	items, err := h.service.ListByFilter(c.Request.Context(), page, pageSize, f)
	if err != nil {
		respondError(c, err)
		return
	}
	count, err := h.service.Count(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPagedResponse(items, page, pageSize, count))
}

func (h *CrudHandler[T, F]) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *CrudHandler[T, F]) create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &entity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entity)
}

func (h *CrudHandler[T, F]) replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.setID(&entity, id)
	if err := h.service.Replace(c.Request.Context(), &entity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *CrudHandler[T, F]) patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	patchDoc, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entity, err := h.service.Patch(c.Request.Context(), id, patchDoc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *CrudHandler[T, F]) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CrudHandler[T, F]) export(c *gin.Context) {
	format := c.DefaultQuery("format", "pdf")
	if format != "pdf" && format != "excel" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be pdf or excel"})
		return
	}

	f := h.parseFilter(c)
	var items []T
	if c.Query("all") == "true" {
		count, err := h.service.Count(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		if count > 0 {
			items, err = h.service.ListByFilter(c.Request.Context(), 1, int(count), f)
			if err != nil {
				respondError(c, err)
				return
			}
		}
	} else {
		page, pageSize, ok := parsePaging(c)
		if !ok {
			return
		}
		var err error
		items, err = h.service.ListByFilter(c.Request.Context(), page, pageSize, f)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	var (
		data        []byte
		err         error
		contentType string
		ext         string
	)
	switch format {
	case "pdf":
		data, err = export.PDF(h.layout, items)
		contentType = "application/pdf"
		ext = "pdf"
	case "excel":
		data, err = export.Excel(h.layout, items)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		ext = "xlsx"
	}
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("%s_%s.%s", h.name, time.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}

func newPagedResponse[T any](items []T, page, pageSize int, count int64) pagedResponse[T] {
	totalPages := int((count + int64(pageSize) - 1) / int64(pageSize))
	return pagedResponse[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: count,
		TotalPages: totalPages,
	}
}

func parsePaging(c *gin.Context) (page, pageSize int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive number"})
		return 0, 0, false
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be a positive number"})
		return 0, 0, false
	}
	return page, pageSize, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrHasDependents):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidReference), errors.Is(err, crud.ErrBadPatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
