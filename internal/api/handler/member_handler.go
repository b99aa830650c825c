package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cezeus/club-api/internal/api/metrics"
	"github.com/cezeus/club-api/internal/core/ports"
)

// maxPhotoBytes caps profile photo uploads at 5 MiB.
const maxPhotoBytes = 5 << 20

// MemberHandler handles HTTP requests for roster operations.
type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{service: service}
}

// List handles GET /v1/members.
//
// @Summary      List or search the member roster
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        q         query     string  false  "Name or document number fragment"
// @Param        category  query     string  false  "Category filter (ALL disables)"
// @Param        status    query     string  false  "Status filter (ACTIVE or INACTIVE)"
// @Success      200       {object}  rosterResponse
// @Failure      403       {object}  errorResponse
// @Router       /v1/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	result, err := h.service.Search(c.Request().Context(), caller, ports.SearchQuery{
		Term:           c.QueryParam("q"),
		CategoryFilter: c.QueryParam("category"),
		StatusFilter:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRosterResponse(result))
}

// Get handles GET /v1/members/:id.
//
// @Summary      Get one member record
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Member ID"
// @Success      200  {object}  memberResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	m, err := h.service.Get(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMemberResponse(m))
}

// Create handles POST /v1/members.
//
// Accepts either a JSON body or multipart/form-data with a "data" field
// holding the same JSON plus an optional "photo" file.
//
// @Summary      Register a new member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMemberRequest  true  "Member details"
// @Success      201   {object}  memberResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	req, photo, err := bindCreateRequest(c)
	if err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := toCreateInput(req)
	input.Photo = photo

	m, err := h.service.Create(c.Request().Context(), caller, input)
	if err != nil {
		return err
	}

	metrics.MembersCreatedTotal.WithLabelValues(string(m.Category)).Inc()
	return c.JSON(http.StatusCreated, toMemberResponse(m))
}

// Update handles PATCH /v1/members/:id.
//
// @Summary      Update a member record
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Member ID"
// @Param        body  body      updateMemberRequest  true  "Fields to change"
// @Success      200   {object}  memberResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/members/{id} [patch]
func (h *MemberHandler) Update(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m, err := h.service.Update(c.Request().Context(), caller, c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMemberResponse(m))
}

// Delete handles DELETE /v1/members/:id.
//
// @Summary      Delete a member record
// @Tags         members
// @Security     BearerAuth
// @Param        id  path  string  true  "Member ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// AttachPhoto handles PUT /v1/members/:id/photo.
//
// @Summary      Upload or replace a member's profile photo
// @Tags         members
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "Member ID"
// @Param        photo  formData  file    true  "Image file"
// @Success      200    {object}  memberResponse
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/members/{id}/photo [put]
func (h *MemberHandler) AttachPhoto(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	photo, err := readPhotoFile(c)
	if err != nil {
		metrics.PhotoUploadsTotal.WithLabelValues("error").Inc()
		return err
	}

	m, err := h.service.AttachPhoto(c.Request().Context(), caller, c.Param("id"), *photo)
	if err != nil {
		metrics.PhotoUploadsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.PhotoUploadsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toMemberResponse(m))
}

func bindCreateRequest(c echo.Context) (createMemberRequest, *ports.PhotoUpload, error) {
	var req createMemberRequest

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		if err := c.Bind(&req); err != nil {
			return req, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		return req, nil, nil
	}

	data := c.FormValue("data")
	if data == "" {
		return req, nil, echo.NewHTTPError(http.StatusBadRequest, "missing data field")
	}
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return req, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if _, err := c.FormFile("photo"); err != nil {
		// Photo is optional on create.
		return req, nil, nil
	}
	photo, err := readPhotoFile(c)
	if err != nil {
		return req, nil, err
	}
	return req, photo, nil
}

func readPhotoFile(c echo.Context) (*ports.PhotoUpload, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "missing photo file")
	}
	if fileHeader.Size > maxPhotoBytes {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "photo exceeds size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable photo file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable photo file")
	}
	if len(data) > maxPhotoBytes {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "photo exceeds size limit")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &ports.PhotoUpload{
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
