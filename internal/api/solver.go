package api

import (
	"encoding/json"
	"net/http"
)

// processarRequest carries the raw expression under "valor"; the numeric
// result comes back under the same key.
type processarRequest struct {
	Valor string `json:"valor"`
}

type processarResponse struct {
	Valor string `json:"valor"`
}

// Processar solves a free-text arithmetic expression.
func (h *Handler) Processar(w http.ResponseWriter, r *http.Request) {
	if h.solver == nil {
		Error(w, http.StatusServiceUnavailable, "resolvedor de expressões não configurado")
		return
	}

	var req processarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Valor == "" {
		Error(w, http.StatusBadRequest, "corpo da requisição inválido: envie {\"valor\": \"expressão\"}")
		return
	}

	value, err := h.solver.Solve(r.Context(), req.Valor)
	if err != nil {
		h.logger.Error("expression solve failed", "error", err)
		Error(w, http.StatusBadGateway, "não foi possível resolver a expressão")
		return
	}

	JSON(w, http.StatusOK, processarResponse{Valor: value})
}
