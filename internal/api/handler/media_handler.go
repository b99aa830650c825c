package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

// MediaHandler streams stored objects (profile photos) back to clients.
type MediaHandler struct {
	storage ports.ObjectStorage
}

func NewMediaHandler(storage ports.ObjectStorage) *MediaHandler {
	return &MediaHandler{storage: storage}
}

// Serve handles GET /media/*.
//
// @Summary      Fetch a stored media object
// @Tags         media
// @Param        path  path  string  true  "Object path"
// @Success      200  {file}    binary
// @Failure      404  {object}  errorResponse
// @Router       /media/{path} [get]
func (h *MediaHandler) Serve(c echo.Context) error {
	path := c.Param("*")
	if path == "" {
		return echo.NewHTTPError(http.StatusNotFound, "object not found")
	}

	reader, err := h.storage.Open(c.Request().Context(), path)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "object not found")
		}
		return err
	}
	defer reader.Close()

	// Sniff the content type from the first chunk, then replay it.
	head := make([]byte, 512)
	n, err := io.ReadFull(reader, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	return c.Stream(http.StatusOK, contentType, io.MultiReader(bytes.NewReader(head), reader))
}
