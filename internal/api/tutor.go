package api

import (
	"encoding/json"
	"net/http"

	"github.com/abhisek/continha/internal/session"
)

// tutorRequest is the wire shape of one state-machine action.
type tutorRequest struct {
	Action      string `json:"action"`
	SessionID   string `json:"session_id"`
	Operacao    string `json:"operacao"`
	FaixaEtaria string `json:"faixa_etaria"`
	Resposta    string `json:"resposta"`
	Entendeu    *bool  `json:"entendeu"`
}

// tutorResponse is the structured reply for every action.
type tutorResponse struct {
	SessionID     string  `json:"session_id"`
	Fase          string  `json:"fase"`
	Questao       string  `json:"questao,omitempty"`
	Exemplo       string  `json:"exemplo,omitempty"`
	Mensagem      string  `json:"mensagem,omitempty"`
	Acertou       *bool   `json:"acertou,omitempty"`
	RespostaCerta *int    `json:"resposta_correta,omitempty"`
	Fator         float64 `json:"fator_dificuldade,omitempty"`
}

// Tutor dispatches one state-machine action. Validation failures come
// back as 400 with the engine's message; the session state is unchanged
// for those.
func (h *Handler) Tutor(w http.ResponseWriter, r *http.Request) {
	var req tutorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	sess, release := h.registry.Acquire(req.SessionID)
	defer release()

	resp := tutorResponse{SessionID: sess.ID}

	switch req.Action {
	case "start":
		result, err := h.engine.Start(r.Context(), sess, req.Operacao, req.FaixaEtaria)
		if err != nil {
			h.writeEngineError(w, err)
			return
		}
		resp.Questao = result.Question
		resp.Fator = result.Multiplier

	case "submit_answer":
		result, err := h.engine.SubmitAnswer(r.Context(), sess, req.Resposta)
		if err != nil {
			h.writeEngineError(w, err)
			return
		}
		resp.Acertou = &result.Correct
		resp.RespostaCerta = &result.CorrectAnswer
		resp.Exemplo = result.Example
		if result.Correct {
			resp.Mensagem = "Muito bem, você acertou!"
		} else {
			resp.Mensagem = "Quase! Veja um exemplo para entender melhor."
		}

	case "submit_feedback":
		if req.Entendeu == nil {
			Error(w, http.StatusBadRequest, "o campo entendeu é obrigatório para submit_feedback")
			return
		}
		result, err := h.engine.SubmitFeedback(r.Context(), sess, *req.Entendeu)
		if err != nil {
			h.writeEngineError(w, err)
			return
		}
		if result.Advanced {
			if result.Exhausted {
				resp.Mensagem = "Tudo bem, vamos seguir para outra continha!"
			} else {
				resp.Mensagem = "Ótimo! Pronto para a próxima continha."
			}
		} else {
			resp.Exemplo = result.Example
		}

	default:
		Error(w, http.StatusBadRequest, "ação desconhecida: use start, submit_answer ou submit_feedback")
		return
	}

	resp.Fase = sess.Phase.String()
	JSON(w, http.StatusOK, resp)
}

// writeEngineError maps engine errors: validation mistakes are the
// caller's (400), anything else is ours (500).
func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	if session.IsValidation(err) {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("engine action failed", "error", err)
	Error(w, http.StatusInternalServerError, "erro interno do tutor")
}
