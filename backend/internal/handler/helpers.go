package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bulletin-dev/bulletin/shared/api"
	"github.com/bulletin-dev/bulletin/shared/domain"
)

func parseInt64Param(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}

// writeIssues sends the validation issues with a non-200 status. Used when a
// save is rejected; the issue list tells the editor what to fix.
func writeIssues(w http.ResponseWriter, statusCode int, issues []domain.ValidationIssue) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := api.ValidationResponse{Issues: issues, HasErrors: domain.HasErrors(issues)}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("encoding validation response", "err", err)
	}
}
