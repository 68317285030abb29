package v1

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"

	"github.com/fieldsense/fieldsense/store"
)

// FieldDefinition is the API representation of a field definition.
type FieldDefinition struct {
	UID          string          `json:"uid"`
	CollectionID string          `json:"collectionId"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Config       json.RawMessage `json:"config"`
	CreatedTs    int64           `json:"createdTs"`
}

// CreateFieldDefinitionRequest is the body of the create call.
type CreateFieldDefinitionRequest struct {
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Config json.RawMessage `json:"config"`
}

// ListFieldDefinitions returns all field definitions in a collection.
func (s *APIV1Service) ListFieldDefinitions(c echo.Context) error {
	ctx := c.Request().Context()
	collectionID := c.Param("collection")

	fields, err := s.Store.ListFieldDefinitions(ctx, &store.FindFieldDefinition{
		CollectionID: &collectionID,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list fields").SetInternal(err)
	}

	result := make([]*FieldDefinition, 0, len(fields))
	for _, f := range fields {
		result = append(result, convertFieldDefinition(f))
	}
	return c.JSON(http.StatusOK, result)
}

// CreateFieldDefinition creates a field definition in a collection.
func (s *APIV1Service) CreateFieldDefinition(c echo.Context) error {
	ctx := c.Request().Context()
	collectionID := c.Param("collection")

	req := &CreateFieldDefinitionRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "field name is required")
	}
	if !store.IsValidFieldType(req.Type) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid field type")
	}

	config := "{}"
	if len(req.Config) > 0 {
		if !json.Valid(req.Config) {
			return echo.NewHTTPError(http.StatusBadRequest, "config must be valid JSON")
		}
		config = string(req.Config)
	}

	field, err := s.Store.CreateFieldDefinition(ctx, &store.FieldDefinition{
		UID:          shortuuid.New(),
		CollectionID: collectionID,
		Name:         req.Name,
		Type:         req.Type,
		Config:       config,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create field").SetInternal(err)
	}

	return c.JSON(http.StatusOK, convertFieldDefinition(field))
}

// DeleteFieldDefinition deletes a field definition by UID.
func (s *APIV1Service) DeleteFieldDefinition(c echo.Context) error {
	ctx := c.Request().Context()
	collectionID := c.Param("collection")
	uid := c.Param("uid")

	field, err := s.Store.GetFieldDefinition(ctx, &store.FindFieldDefinition{
		UID:          &uid,
		CollectionID: &collectionID,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get field").SetInternal(err)
	}
	if field == nil {
		return echo.NewHTTPError(http.StatusNotFound, "field not found")
	}

	if err := s.Store.DeleteFieldDefinition(ctx, &store.DeleteFieldDefinition{ID: field.ID}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete field").SetInternal(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func convertFieldDefinition(f *store.FieldDefinition) *FieldDefinition {
	config := f.Config
	if config == "" {
		config = "{}"
	}
	return &FieldDefinition{
		UID:          f.UID,
		CollectionID: f.CollectionID,
		Name:         f.Name,
		Type:         f.Type,
		Config:       json.RawMessage(config),
		CreatedTs:    f.CreatedTs,
	}
}
