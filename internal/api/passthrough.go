package api

import (
	"log/slog"
	"net/http"
	"strconv"
)

// Passthrough endpoints relay object-transform data from the authoring-tool
// plugin. They persist nothing; the server logs the payload and echoes it
// back with a confirmation message.

type transformRequest struct {
	Position []float64 `json:"position" validate:"required"`
	Rotation []float64 `json:"rotation" validate:"required"`
	Scale    []float64 `json:"scale" validate:"required"`
}

type translationRequest struct {
	Position []float64 `json:"position" validate:"required"`
}

type rotationRequest struct {
	Rotation []float64 `json:"rotation" validate:"required"`
}

type scaleRequest struct {
	Scale []float64 `json:"scale" validate:"required"`
}

// Transform handles POST /transform.
func Transform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := decodeValid(r, &req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.Info("received transform data",
		"position", req.Position, "rotation", req.Rotation, "scale", req.Scale)
	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Transform data received",
		"data":    req,
	})
}

// Translation handles POST /translation.
func Translation(w http.ResponseWriter, r *http.Request) {
	var req translationRequest
	if err := decodeValid(r, &req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.Info("received translation data", "position", req.Position)
	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Translation data received",
		"data":    req,
	})
}

// Rotation handles POST /rotation.
func Rotation(w http.ResponseWriter, r *http.Request) {
	var req rotationRequest
	if err := decodeValid(r, &req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.Info("received rotation data", "rotation", req.Rotation)
	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Rotation data received",
		"data":    req,
	})
}

// Scale handles POST /scale.
func Scale(w http.ResponseWriter, r *http.Request) {
	var req scaleRequest
	if err := decodeValid(r, &req); err != nil {
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.Info("received scale data", "scale", req.Scale)
	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Scale data received",
		"data":    req,
	})
}

// FilePath handles GET /file-path. The two paths are fixed strings; the
// plugin only cares which of the two it gets.
func FilePath(w http.ResponseWriter, r *http.Request) {
	projectPath, _ := strconv.ParseBool(r.URL.Query().Get("projectpath"))
	slog.Info("file path requested", "projectpath", projectPath)

	if projectPath {
		jsonResponse(w, http.StatusOK, map[string]string{
			"message": "Project folder path",
			"path":    "/path/to/project/folder",
		})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{
		"message": "DCC file path",
		"path":    "/path/to/dcc/file",
	})
}

// Root handles GET /.
func Root(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Welcome to the inventory server!",
	})
}
