package v1

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fieldsense/fieldsense/server/service/duplicate"
	"github.com/fieldsense/fieldsense/store"
)

const maxCandidateLength = 200

// CheckDuplicateFieldsRequest is the body of the check call.
type CheckDuplicateFieldsRequest struct {
	// Name is the candidate field name the user is typing.
	Name string `json:"name"`
	// Mode is "basic" (exact only) or "smart" (all matchers). Defaults
	// to "smart".
	Mode string `json:"mode"`
}

// SimilarField is one ranked duplicate candidate.
type SimilarField struct {
	Field       *FieldDefinition `json:"field"`
	Kind        string           `json:"kind"`
	Score       float64          `json:"score"`
	Explanation string           `json:"explanation"`
}

// CheckDuplicateFieldsResponse is the response of the check call.
type CheckDuplicateFieldsResponse struct {
	RequestID string          `json:"requestId"`
	Matches   []*SimilarField `json:"matches"`
	LatencyMs int64           `json:"latencyMs"`
}

// CheckDuplicateFields ranks existing fields in the collection that are
// likely duplicates of the candidate name.
func (s *APIV1Service) CheckDuplicateFields(c echo.Context) error {
	ctx := c.Request().Context()
	collectionID := c.Param("collection")
	start := time.Now()

	req := &CheckDuplicateFieldsRequest{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if len([]rune(req.Name)) > maxCandidateLength {
		return echo.NewHTTPError(http.StatusBadRequest, "candidate name too long")
	}

	mode := duplicate.ModeSmart
	switch req.Mode {
	case "", "smart":
	case "basic":
		mode = duplicate.ModeBasic
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "mode must be 'basic' or 'smart'")
	}

	fields, err := s.Store.ListFieldDefinitions(ctx, &store.FindFieldDefinition{
		CollectionID: &collectionID,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list fields").SetInternal(err)
	}

	matches := s.Detector.FindSimilar(ctx, req.Name, fields, mode)

	response := &CheckDuplicateFieldsResponse{
		RequestID: uuid.New().String(),
		Matches:   make([]*SimilarField, 0, len(matches)),
		LatencyMs: time.Since(start).Milliseconds(),
	}
	for _, m := range matches {
		response.Matches = append(response.Matches, &SimilarField{
			Field:       convertFieldDefinition(m.Field),
			Kind:        string(m.Kind),
			Score:       m.Score,
			Explanation: m.Explanation,
		})
	}

	return c.JSON(http.StatusOK, response)
}
